package telemetry_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvplan/move"
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/score"
	"github.com/katalvlaran/lvplan/telemetry"
)

// namedMove is a move.Move with a fixed name.
type namedMove string

func (m namedMove) IsDoable() bool { return true }
func (m namedMove) Do() move.Move  { return m }
func (m namedMove) String() string { return string(m) }

func step(p *scope.PhaseScope, s score.Score, improved bool) *scope.StepScope {
	st := scope.NewStepScope(p)
	st.Score = s
	st.BestScoreImproved = improved
	if improved {
		p.Solver.BestScore = s
	}
	p.StepCompleted(st)

	return st
}

func TestRecorder_CollectsSteps(t *testing.T) {
	solver := scope.NewSolverScope(1)
	solver.BestScore = score.OfSimple(-5)
	phase := scope.NewPhaseScope(solver, 2)

	r := telemetry.NewRecorder()
	require.NoError(t, r.PhaseStarted(phase))
	r.StepEnded(step(phase, score.OfSimple(-3), true))
	r.StepEnded(step(phase, score.OfSimple(-4), false))
	r.PhaseEnded(phase)

	recs := r.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, 2, recs[0].Phase)
	assert.Equal(t, 0, recs[0].Step)
	assert.Equal(t, 1, recs[1].Step)
	assert.Equal(t, "-3", recs[0].Score)
	assert.Equal(t, "-3", recs[1].BestScore)
	assert.Equal(t, "-4", recs[1].Score)
	assert.Empty(t, recs[0].Move)
	assert.Equal(t, 1, r.Improvements())

	r.Reset()
	assert.Empty(t, r.Records())
}

func TestRecorder_WriteCSV(t *testing.T) {
	phase := scope.NewPhaseScope(scope.NewSolverScope(1), 0)
	r := telemetry.NewRecorder()
	st := step(phase, score.OfHardSoft(0, -12), true)
	st.Move = namedMove("a -> b")
	r.StepEnded(st)

	var buf bytes.Buffer
	require.NoError(t, r.WriteCSV(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "phase,step,score,best_score,move,best_improved,elapsed_ms", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,0,0hard/-12soft,0hard/-12soft,a -> b,true,"))

	var back []telemetry.StepRecord
	require.NoError(t, gocsv.UnmarshalBytes(buf.Bytes(), &back))
	assert.Equal(t, r.Records()[0].Move, back[0].Move)
}

func TestRecorder_WriteFile(t *testing.T) {
	r := telemetry.NewRecorder()
	assert.NoError(t, r.WriteFile(""))

	path := filepath.Join(t.TempDir(), "out", "steps.csv")
	require.NoError(t, r.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "best_improved")
}
