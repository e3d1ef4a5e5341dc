// SPDX-License-Identifier: MIT

// Package score defines the solution-quality values compared by the search engine.
//
// A Score is an immutable, totally ordered value. The package ships a closed set
// of variants, all sharing the same comparison surface:
//
//   - SimpleScore         - one int64 level; always feasible.
//   - HardSoftScore       - hard level (feasibility) then soft level (objective).
//   - HardMediumSoftScore - hard, medium, soft levels compared lexicographically.
//
// Higher is better on every level. Comparing two different variants is a
// programmer error and panics with a stable message.
//
// Example:
//
//	a := score.OfHardSoft(0, -120)
//	b := score.OfHardSoft(-1, 0)
//	score.Better(a, b) // true: feasibility dominates the soft level
//
//	s, err := score.Parse("-2hard/-30soft")
//
// Comparators:
//
//	The forager and acceptors never call CompareTo directly; they go through a
//	Comparator (Natural by default) so that callers can plug a different decider
//	ordering without touching the score types.
package score
