// SPDX-License-Identifier: MIT

package score

import "strconv"

// SimpleScore has a single objective level and no feasibility dimension.
type SimpleScore struct {
	Score int64
}

// OfSimple returns a SimpleScore.
func OfSimple(s int64) SimpleScore { return SimpleScore{Score: s} }

// CompareTo implements Score.
func (s SimpleScore) CompareTo(other Score) int {
	o := mustSimple(other)

	return compareLevels([]int64{s.Score}, []int64{o.Score})
}

// IsFeasible implements Score; a SimpleScore is always feasible.
func (s SimpleScore) IsFeasible() bool { return true }

// Add implements Score.
func (s SimpleScore) Add(other Score) Score {
	return SimpleScore{Score: s.Score + mustSimple(other).Score}
}

// Subtract implements Score.
func (s SimpleScore) Subtract(other Score) Score {
	return SimpleScore{Score: s.Score - mustSimple(other).Score}
}

// Negate implements Score.
func (s SimpleScore) Negate() Score { return SimpleScore{Score: -s.Score} }

func (s SimpleScore) String() string { return strconv.FormatInt(s.Score, 10) }

func mustSimple(other Score) SimpleScore {
	o, ok := other.(SimpleScore)
	if !ok {
		panic(panicKindMismatch)
	}

	return o
}

// HardSoftScore ranks the hard level (feasibility) before the soft level.
type HardSoftScore struct {
	Hard int64
	Soft int64
}

// OfHardSoft returns a HardSoftScore.
func OfHardSoft(hard, soft int64) HardSoftScore { return HardSoftScore{Hard: hard, Soft: soft} }

// CompareTo implements Score.
func (s HardSoftScore) CompareTo(other Score) int {
	o := mustHardSoft(other)

	return compareLevels([]int64{s.Hard, s.Soft}, []int64{o.Hard, o.Soft})
}

// IsFeasible implements Score.
func (s HardSoftScore) IsFeasible() bool { return s.Hard >= 0 }

// Add implements Score.
func (s HardSoftScore) Add(other Score) Score {
	o := mustHardSoft(other)

	return HardSoftScore{Hard: s.Hard + o.Hard, Soft: s.Soft + o.Soft}
}

// Subtract implements Score.
func (s HardSoftScore) Subtract(other Score) Score {
	o := mustHardSoft(other)

	return HardSoftScore{Hard: s.Hard - o.Hard, Soft: s.Soft - o.Soft}
}

// Negate implements Score.
func (s HardSoftScore) Negate() Score { return HardSoftScore{Hard: -s.Hard, Soft: -s.Soft} }

func (s HardSoftScore) String() string {
	return strconv.FormatInt(s.Hard, 10) + "hard/" + strconv.FormatInt(s.Soft, 10) + "soft"
}

func mustHardSoft(other Score) HardSoftScore {
	o, ok := other.(HardSoftScore)
	if !ok {
		panic(panicKindMismatch)
	}

	return o
}

// HardMediumSoftScore ranks hard, then medium, then soft.
type HardMediumSoftScore struct {
	Hard   int64
	Medium int64
	Soft   int64
}

// OfHardMediumSoft returns a HardMediumSoftScore.
func OfHardMediumSoft(hard, medium, soft int64) HardMediumSoftScore {
	return HardMediumSoftScore{Hard: hard, Medium: medium, Soft: soft}
}

// CompareTo implements Score.
func (s HardMediumSoftScore) CompareTo(other Score) int {
	o := mustHardMediumSoft(other)

	return compareLevels([]int64{s.Hard, s.Medium, s.Soft}, []int64{o.Hard, o.Medium, o.Soft})
}

// IsFeasible implements Score.
func (s HardMediumSoftScore) IsFeasible() bool { return s.Hard >= 0 }

// Add implements Score.
func (s HardMediumSoftScore) Add(other Score) Score {
	o := mustHardMediumSoft(other)

	return HardMediumSoftScore{Hard: s.Hard + o.Hard, Medium: s.Medium + o.Medium, Soft: s.Soft + o.Soft}
}

// Subtract implements Score.
func (s HardMediumSoftScore) Subtract(other Score) Score {
	o := mustHardMediumSoft(other)

	return HardMediumSoftScore{Hard: s.Hard - o.Hard, Medium: s.Medium - o.Medium, Soft: s.Soft - o.Soft}
}

// Negate implements Score.
func (s HardMediumSoftScore) Negate() Score {
	return HardMediumSoftScore{Hard: -s.Hard, Medium: -s.Medium, Soft: -s.Soft}
}

func (s HardMediumSoftScore) String() string {
	return strconv.FormatInt(s.Hard, 10) + "hard/" +
		strconv.FormatInt(s.Medium, 10) + "medium/" +
		strconv.FormatInt(s.Soft, 10) + "soft"
}

func mustHardMediumSoft(other Score) HardMediumSoftScore {
	o, ok := other.(HardMediumSoftScore)
	if !ok {
		panic(panicKindMismatch)
	}

	return o
}
