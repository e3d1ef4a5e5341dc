// SPDX-License-Identifier: MIT

package forager

import (
	"math/rand"

	"github.com/katalvlaran/lvplan/move"
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/score"
)

// AcceptedForager forages the accepted candidates of each step.
type AcceptedForager struct {
	opts Options
	cmp  score.Comparator

	phase  *scope.PhaseScope
	random *rand.Rand

	// per step
	deciding      bool
	top           []*scope.MoveScope // descending, stable on ties
	highest       []*scope.MoveScope // tied maxima in insertion order
	early         *scope.MoveScope
	picked        *scope.MoveScope // random tie-break winner, drawn once
	quitEarly     bool
	selectedCount int
	acceptedCount int
}

// New validates opts and returns a forager.
func New(opts Options) (*AcceptedForager, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &AcceptedForager{opts: opts, cmp: score.OrNatural(opts.Comparator)}, nil
}

// Options returns the configuration the forager was built with.
func (f *AcceptedForager) Options() Options { return f.opts }

// PhaseStarted implements scope.PhaseLifecycleListener. It keeps a reference
// to the phase, through which the running best and last step scores are read.
func (f *AcceptedForager) PhaseStarted(p *scope.PhaseScope) error {
	f.phase = p
	f.random = p.WorkingRandom()
	f.resetStep()
	f.deciding = false

	return nil
}

// StepStarted implements scope.PhaseLifecycleListener.
func (f *AcceptedForager) StepStarted(*scope.StepScope) {}

// StepEnded implements scope.PhaseLifecycleListener. Step state is dropped so
// that no MoveScope outlives its step.
func (f *AcceptedForager) StepEnded(*scope.StepScope) {
	f.resetStep()
	f.deciding = false
}

// PhaseEnded implements scope.PhaseLifecycleListener.
func (f *AcceptedForager) PhaseEnded(*scope.PhaseScope) {
	f.resetStep()
	f.deciding = false
	f.phase, f.random = nil, nil
}

// BeforeDeciding clears the per-step state. Call it once per step before the
// first AddMove.
func (f *AcceptedForager) BeforeDeciding(*scope.StepScope) {
	if f.phase == nil {
		panic(panicNoPhase)
	}
	f.resetStep()
	f.deciding = true
}

func (f *AcceptedForager) resetStep() {
	clear(f.top)
	clear(f.highest)
	f.top = f.top[:0]
	f.highest = f.highest[:0]
	f.early = nil
	f.picked = nil
	f.quitEarly = false
	f.selectedCount = 0
	f.acceptedCount = 0
}

// AddMove records a scored candidate. Rejected candidates only count toward
// SelectedCount.
func (f *AcceptedForager) AddMove(ms *scope.MoveScope) {
	if !f.deciding {
		panic(panicNotDeciding)
	}
	f.selectedCount++
	if !ms.Accepted {
		return
	}
	f.acceptedCount++
	f.picked = nil

	f.insertTop(ms)
	f.trackHighest(ms)
	f.checkPickEarly(ms)

	if f.opts.AcceptedCountLimit > 0 && f.acceptedCount >= f.opts.AcceptedCountLimit {
		f.quitEarly = true
	}
}

// insertTop places ms after every entry scoring at least as well.
func (f *AcceptedForager) insertTop(ms *scope.MoveScope) {
	i := len(f.top)
	for i > 0 && f.cmp(f.top[i-1].Score, ms.Score) < 0 {
		i--
	}
	if f.opts.TopListSize > 0 && i >= f.opts.TopListSize {
		return
	}
	f.top = append(f.top, nil)
	copy(f.top[i+1:], f.top[i:])
	f.top[i] = ms
	if f.opts.TopListSize > 0 && len(f.top) > f.opts.TopListSize {
		f.top[len(f.top)-1] = nil
		f.top = f.top[:f.opts.TopListSize]
	}
}

func (f *AcceptedForager) trackHighest(ms *scope.MoveScope) {
	if len(f.highest) == 0 {
		f.highest = append(f.highest, ms)
		return
	}
	switch c := f.cmp(ms.Score, f.highest[0].Score); {
	case c > 0:
		clear(f.highest)
		f.highest = append(f.highest[:0], ms)
	case c == 0:
		f.highest = append(f.highest, ms)
	}
}

func (f *AcceptedForager) checkPickEarly(ms *scope.MoveScope) {
	if f.early != nil {
		return
	}
	var ref score.Score
	switch f.opts.PickEarly {
	case FirstBestScoreImproving:
		ref = f.phase.BestScore()
	case FirstLastStepScoreImproving:
		ref = f.phase.LastStepScore()
	default:
		return
	}
	if ref != nil && f.cmp(ms.Score, ref) > 0 {
		f.early = ms
		f.quitEarly = true
	}
}

// IsQuitEarly reports whether candidate generation for this step may stop.
// Once true it stays true until the next BeforeDeciding.
func (f *AcceptedForager) IsQuitEarly() bool { return f.quitEarly }

// PickMove returns the winning candidate of the step. Repeated calls return
// the same candidate until another one is accepted; a random tie-break draws
// once.
func (f *AcceptedForager) PickMove(*scope.StepScope) (*scope.MoveScope, error) {
	if f.early != nil {
		return f.early, nil
	}
	if len(f.highest) == 0 {
		return nil, ErrEmptyCandidateSet
	}
	if f.opts.AcceptedCountLimit > 0 && f.opts.TieBreak == TieRandom && len(f.highest) > 1 {
		if f.picked == nil {
			f.picked = f.highest[f.random.Intn(len(f.highest))]
		}
		return f.picked, nil
	}

	return f.highest[0], nil
}

// TopList returns up to n accepted moves of this step, best first. n <= 0
// yields an empty list.
func (f *AcceptedForager) TopList(n int) []move.Move {
	n = min(max(n, 0), len(f.top))
	out := make([]move.Move, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = f.top[i].Move
	}

	return out
}

// SelectedCount is the number of candidates added this step.
func (f *AcceptedForager) SelectedCount() int { return f.selectedCount }

// AcceptedCount is the number of accepted candidates added this step.
func (f *AcceptedForager) AcceptedCount() int { return f.acceptedCount }
