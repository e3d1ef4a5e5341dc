// Package score_test covers ordering, arithmetic and parsing of score variants.
package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvplan/score"
)

// -----------------------------------------------------------------------------
// 1) Ordering
// -----------------------------------------------------------------------------

func TestSimpleScore_Ordering(t *testing.T) {
	a := score.OfSimple(-1)
	b := score.OfSimple(-20)

	assert.True(t, score.Better(a, b))
	assert.True(t, score.Worse(b, a))
	assert.True(t, score.Equal(a, score.OfSimple(-1)))
	assert.Equal(t, 1, score.Natural(a, b))
	assert.True(t, a.IsFeasible(), "simple scores carry no hard level")
}

func TestHardSoftScore_HardDominates(t *testing.T) {
	feasible := score.OfHardSoft(0, -1000)
	infeasible := score.OfHardSoft(-1, 0)

	assert.True(t, score.Better(feasible, infeasible))
	assert.True(t, feasible.IsFeasible())
	assert.False(t, infeasible.IsFeasible())
	assert.Equal(t, -1, score.OfHardSoft(0, -2).CompareTo(score.OfHardSoft(0, -1)))
}

func TestHardMediumSoftScore_Lexicographic(t *testing.T) {
	a := score.OfHardMediumSoft(0, -1, 0)
	b := score.OfHardMediumSoft(0, 0, -500)

	assert.True(t, score.Worse(a, b), "medium level outranks soft")
	assert.True(t, score.Better(score.OfHardMediumSoft(0, -1, 5), a))
}

func TestScore_Transitivity(t *testing.T) {
	xs := []score.Score{
		score.OfHardSoft(-2, 10),
		score.OfHardSoft(-1, -5),
		score.OfHardSoft(0, -100),
		score.OfHardSoft(0, -1),
	}
	var i, j int
	for i = 0; i < len(xs); i++ {
		for j = i + 1; j < len(xs); j++ {
			require.True(t, score.Worse(xs[i], xs[j]), "xs[%d] should be worse than xs[%d]", i, j)
		}
	}
}

func TestScore_MixedKindsPanics(t *testing.T) {
	assert.Panics(t, func() {
		score.OfSimple(1).CompareTo(score.OfHardSoft(0, 1))
	})
	assert.Panics(t, func() {
		score.OfHardSoft(0, 1).Add(score.OfSimple(1))
	})
}

// -----------------------------------------------------------------------------
// 2) Arithmetic
// -----------------------------------------------------------------------------

func TestScore_Arithmetic(t *testing.T) {
	a := score.OfHardSoft(-1, -20)
	b := score.OfHardSoft(1, 5)

	assert.Equal(t, score.OfHardSoft(0, -15), a.Add(b))
	assert.Equal(t, score.OfHardSoft(-2, -25), a.Subtract(b))
	assert.Equal(t, score.OfHardSoft(1, 20), a.Negate())
	assert.Equal(t, score.OfSimple(7), score.OfSimple(3).Add(score.OfSimple(4)))
	assert.Equal(t, score.OfHardMediumSoft(1, 2, 3), score.OfHardMediumSoft(-1, -2, -3).Negate())
}

func TestOrNatural(t *testing.T) {
	cmp := score.OrNatural(nil)
	assert.Equal(t, 1, cmp(score.OfSimple(2), score.OfSimple(1)))

	reversed := func(a, b score.Score) int { return b.CompareTo(a) }
	assert.Equal(t, -1, score.OrNatural(reversed)(score.OfSimple(2), score.OfSimple(1)))
}

// -----------------------------------------------------------------------------
// 3) Parsing
// -----------------------------------------------------------------------------

func TestParse_RoundTrip(t *testing.T) {
	cases := []score.Score{
		score.OfSimple(-42),
		score.OfHardSoft(-1, -20),
		score.OfHardMediumSoft(0, -3, 7),
	}
	for _, want := range cases {
		got, err := score.Parse(want.String())
		require.NoError(t, err, "parse %q", want.String())
		assert.Equal(t, want, got)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, text := range []string{"", "abc", "-1hard", "1soft/2hard", "1hard/2medium/3soft/4soft", "xhard/1soft"} {
		_, err := score.Parse(text)
		assert.ErrorIs(t, err, score.ErrParse, "text %q", text)
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	got, err := score.Parse("  0hard/-5soft \n")
	require.NoError(t, err)
	assert.Equal(t, score.OfHardSoft(0, -5), got)
}
