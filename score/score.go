// SPDX-License-Identifier: MIT

// Package score - comparison surface and helpers shared by all score variants.
package score

import "errors"

// ErrParse is returned by Parse when the text does not match any score variant.
var ErrParse = errors.New("score: cannot parse score")

// panicKindMismatch is raised when two different score variants are combined.
const panicKindMismatch = "score: cannot combine scores of different kinds"

// Score is an ordered, summable measure of solution quality.
//
// Contracts:
//   - CompareTo returns -1, 0 or +1; higher is better.
//   - The order is total and transitive for a fixed variant.
//   - Values are immutable; Add/Subtract/Negate return new values.
type Score interface {
	// CompareTo orders the receiver against other (same variant only).
	CompareTo(other Score) int

	// IsFeasible reports whether every hard level is non-negative.
	IsFeasible() bool

	// Add returns the level-wise sum.
	Add(other Score) Score

	// Subtract returns the level-wise difference.
	Subtract(other Score) Score

	// Negate returns the level-wise negation.
	Negate() Score

	// String renders the score in the format accepted by Parse.
	String() string
}

// Comparator orders two scores; it returns a positive number when a is better than b.
type Comparator func(a, b Score) int

// Natural compares scores by their own CompareTo.
func Natural(a, b Score) int {
	return a.CompareTo(b)
}

// Better reports whether a is strictly better than b under the natural order.
func Better(a, b Score) bool { return a.CompareTo(b) > 0 }

// Worse reports whether a is strictly worse than b under the natural order.
func Worse(a, b Score) bool { return a.CompareTo(b) < 0 }

// Equal reports whether a and b rank equally under the natural order.
func Equal(a, b Score) bool { return a.CompareTo(b) == 0 }

// OrNatural returns cmp, or Natural when cmp is nil.
func OrNatural(cmp Comparator) Comparator {
	if cmp == nil {
		return Natural
	}

	return cmp
}

// compareLevels compares two equally sized level vectors lexicographically.
func compareLevels(a, b []int64) int {
	var i int
	for i = 0; i < len(a); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}
