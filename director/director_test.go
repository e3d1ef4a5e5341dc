package director_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvplan/director"
	"github.com/katalvlaran/lvplan/domain"
	"github.com/katalvlaran/lvplan/move"
	"github.com/katalvlaran/lvplan/score"
)

type queen struct{ row int }

var rowVar = domain.Variable[*queen, int]{
	Name: "row",
	Get:  func(q *queen) int { return q.row },
	Set:  func(q *queen, r int) { q.row = r },
}

// conflicts counts pairs of queens sharing a row.
func conflicts(qs []*queen) director.Calculator {
	return func() score.Score {
		var n, i, j int
		for i = 0; i < len(qs); i++ {
			for j = i + 1; j < len(qs); j++ {
				if qs[i].row == qs[j].row {
					n++
				}
			}
		}

		return score.OfSimple(int64(-n))
	}
}

func TestEasy_ScoreMoveLeavesSolutionUntouched(t *testing.T) {
	qs := []*queen{{row: 0}, {row: 0}, {row: 1}}
	d, err := director.NewEasy(conflicts(qs))
	require.NoError(t, err)

	s, feasible, err := director.Evaluate(d, move.NewChangeMove(rowVar, qs[1], 2))
	require.NoError(t, err)
	assert.Equal(t, score.OfSimple(0), s)
	assert.True(t, feasible)
	assert.Equal(t, 0, qs[1].row, "ScoreMove must undo")

	s, err = d.ApplyMove(move.NewChangeMove(rowVar, qs[1], 2))
	require.NoError(t, err)
	assert.Equal(t, score.OfSimple(0), s)
	assert.Equal(t, 2, qs[1].row)
	assert.Equal(t, int64(2), d.CalculationCount())
}

func TestEasy_Errors(t *testing.T) {
	_, err := director.NewEasy(nil)
	assert.ErrorIs(t, err, director.ErrNilCalculator)

	qs := []*queen{{row: 0}}
	d, err := director.NewEasy(conflicts(qs))
	require.NoError(t, err)

	_, err = d.ScoreMove(nil)
	assert.ErrorIs(t, err, director.ErrNilMove)

	_, err = d.ApplyMove(move.NewChangeMove(rowVar, qs[0], 0))
	assert.ErrorIs(t, err, director.ErrMoveNotDoable)

	_, _, err = director.Evaluate(d, move.NewChangeMove(rowVar, qs[0], 0))
	assert.ErrorIs(t, err, director.ErrMoveNotDoable)
}
