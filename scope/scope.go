// SPDX-License-Identifier: MIT

// Package scope carries the lifecycle context of a solve: the solver-wide best
// score and random source, the running phase, the current step, and each
// evaluated candidate move.
//
// Scopes are plain structs passed by pointer down the call stack. Components
// that need to react to lifecycle events implement PhaseLifecycleListener and
// composite components forward the calls to their children explicitly.
//
// Ownership:
//   - A StepScope belongs to its phase; a MoveScope belongs to its step and is
//     discarded at step end.
//   - Nothing here is synchronized: one search owns its scopes exclusively.
package scope

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/lvplan/move"
	"github.com/katalvlaran/lvplan/score"
)

// SolverScope is shared by all phases of one solve.
type SolverScope struct {
	// BestScore is the best score seen so far; nil before the first calculation.
	BestScore score.Score

	// WorkingRandom is the single random source of the solve.
	WorkingRandom *rand.Rand
}

// NewSolverScope returns a solver scope with a deterministic random source
// derived from seed (seed==0 ⇒ default seed, see NewRandom).
func NewSolverScope(seed int64) *SolverScope {
	return &SolverScope{WorkingRandom: NewRandom(seed)}
}

// PhaseScope is the context of one phase.
type PhaseScope struct {
	Solver     *SolverScope
	PhaseIndex int

	// StartingScore is the working score when the phase started.
	StartingScore score.Score

	// LastCompletedStep is nil until the first step of the phase completes.
	LastCompletedStep *StepScope

	StartTime time.Time

	// Random, when set, replaces the solver's random source for this phase.
	Random *rand.Rand
}

// NewPhaseScope starts a phase context now.
func NewPhaseScope(solver *SolverScope, phaseIndex int) *PhaseScope {
	return &PhaseScope{Solver: solver, PhaseIndex: phaseIndex, StartTime: time.Now()}
}

// BestScore returns the solver-wide best score.
func (p *PhaseScope) BestScore() score.Score { return p.Solver.BestScore }

// LastStepScore returns the score of the last completed step, or the
// starting score before any step completed.
func (p *PhaseScope) LastStepScore() score.Score {
	if p.LastCompletedStep != nil {
		return p.LastCompletedStep.Score
	}

	return p.StartingScore
}

// WorkingRandom returns the phase's own source when set, else the solver's.
func (p *PhaseScope) WorkingRandom() *rand.Rand {
	if p.Random != nil {
		return p.Random
	}

	return p.Solver.WorkingRandom
}

// StepCompleted records s as the last completed step.
func (p *PhaseScope) StepCompleted(s *StepScope) { p.LastCompletedStep = s }

// NextStepIndex returns the index the next step should take.
func (p *PhaseScope) NextStepIndex() int {
	if p.LastCompletedStep == nil {
		return 0
	}

	return p.LastCompletedStep.Index + 1
}

// Elapsed returns the wall-clock time since the phase started.
func (p *PhaseScope) Elapsed() time.Duration { return time.Since(p.StartTime) }

// StepScope is the context of one step: generate candidates, pick one, apply it.
type StepScope struct {
	Phase *PhaseScope
	Index int

	// Move is the winning move; nil until the decider picked one.
	Move move.Move

	// Score is the working score after the winning move was applied.
	Score score.Score

	// BestScoreImproved is set when Score beat the solver-wide best.
	BestScoreImproved bool
}

// NewStepScope opens the next step of phase.
func NewStepScope(phase *PhaseScope) *StepScope {
	return &StepScope{Phase: phase, Index: phase.NextStepIndex()}
}

// MoveScope is one evaluated candidate within a step.
type MoveScope struct {
	Step     *StepScope
	Index    int
	Move     move.Move
	Score    score.Score
	Accepted bool
}

// NewMoveScope wraps m as the index-th candidate of step.
func NewMoveScope(step *StepScope, index int, m move.Move) *MoveScope {
	return &MoveScope{Step: step, Index: index, Move: m}
}

// PhaseLifecycleListener reacts to phase and step boundaries.
//
// Composite components call the same hooks on their children; there is no
// registry. PhaseStarted may fail (cache construction, validation); the other
// hooks cannot.
type PhaseLifecycleListener interface {
	PhaseStarted(p *PhaseScope) error
	StepStarted(s *StepScope)
	StepEnded(s *StepScope)
	PhaseEnded(p *PhaseScope)
}
