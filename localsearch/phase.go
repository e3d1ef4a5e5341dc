// SPDX-License-Identifier: MIT

package localsearch

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvplan/director"
	"github.com/katalvlaran/lvplan/forager"
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/score"
	"github.com/katalvlaran/lvplan/selector"
)

// Phase is one local search phase over a move selector.
type Phase struct {
	Index int

	moves    selector.MoveSelector
	director director.ScoreDirector
	acceptor Acceptor
	forager  *forager.AcceptedForager
	decider  *Decider
	opts     Options
	cmp      score.Comparator
}

// NewPhase validates opts and builds the acceptor, forager and decider.
func NewPhase(moves selector.MoveSelector, d director.ScoreDirector, opts Options) (*Phase, error) {
	if moves == nil || d == nil {
		return nil, fmt.Errorf("%w: move selector and score director are required", ErrConfiguration)
	}
	if err := validateOptions(moves, opts); err != nil {
		return nil, err
	}
	f, err := forager.New(opts.Forager)
	if err != nil {
		return nil, err
	}

	var acceptor Acceptor
	switch opts.Acceptor {
	case LateAcceptance:
		acceptor = NewLateAcceptanceAcceptor(opts.LateAcceptanceSize, opts.Forager.Comparator)
	default:
		acceptor = NewHillClimbingAcceptor(opts.Forager.Comparator)
	}

	return &Phase{
		moves:    moves,
		director: d,
		acceptor: acceptor,
		forager:  f,
		decider:  NewDecider(moves, d, acceptor, f, opts),
		opts:     opts,
		cmp:      score.OrNatural(opts.Forager.Comparator),
	}, nil
}

// listeners returns the lifecycle participants in start order.
func (ph *Phase) listeners() []scope.PhaseLifecycleListener {
	ls := []scope.PhaseLifecycleListener{ph.moves, ph.acceptor, ph.forager}

	return append(ls, ph.opts.Listeners...)
}

// Solve runs the phase on the solver's working solution.
//
// The returned Result is filled even when an error is returned; on
// cancellation the error is ctx.Err().
func (ph *Phase) Solve(ctx context.Context, solver *scope.SolverScope) (Result, error) {
	log := ph.opts.Logger
	starting, err := ph.director.CalculateScore()
	if err != nil {
		return Result{}, fmt.Errorf("localsearch: starting score: %w", err)
	}
	if solver.BestScore == nil || ph.cmp(starting, solver.BestScore) > 0 {
		solver.BestScore = starting
	}
	phase := scope.NewPhaseScope(solver, ph.Index)
	phase.StartingScore = starting
	if ph.opts.PhaseRandom {
		solver.WorkingRandom = scope.OrDefault(solver.WorkingRandom)
		phase.Random = scope.DeriveRandom(solver.WorkingRandom, uint64(ph.Index))
	}

	listeners := ph.listeners()
	var i int
	for i = range listeners {
		if err = listeners[i].PhaseStarted(phase); err != nil {
			for i--; i >= 0; i-- {
				listeners[i].PhaseEnded(phase)
			}
			return Result{StartingScore: starting, BestScore: solver.BestScore}, err
		}
	}
	log.Info().Int("phase", ph.Index).Stringer("startingScore", starting).Msg("local search started")

	var (
		res        = Result{StartingScore: starting}
		steps      int
		unimproved int
		runErr     error
	)
	for {
		if reason, done := ph.opts.Termination.check(phase, steps, unimproved, ph.cmp); done {
			res.Reason = reason
			break
		}
		step := scope.NewStepScope(phase)
		for _, l := range listeners {
			l.StepStarted(step)
		}

		if err = ph.decider.DecideNextStep(ctx, step); err != nil {
			switch {
			case errors.Is(err, forager.ErrEmptyCandidateSet):
				res.Reason = ReasonNoMoves
				if reason, done := ph.opts.Termination.check(phase, steps, unimproved, ph.cmp); done {
					res.Reason = reason
				}
			case ctx.Err() != nil && errors.Is(err, ctx.Err()):
				res.Reason, runErr = ReasonCanceled, err
			default:
				res.Reason, runErr = ReasonFailed, err
			}
			break
		}

		if step.Score, err = ph.director.ApplyMove(step.Move); err != nil {
			res.Reason = ReasonFailed
			runErr = fmt.Errorf("localsearch: step %d: applying %v: %w", step.Index, step.Move, err)
			break
		}
		steps++
		if ph.cmp(step.Score, solver.BestScore) > 0 {
			solver.BestScore = step.Score
			step.BestScoreImproved = true
			unimproved = 0
			if ph.opts.OnBestSolution != nil {
				ph.opts.OnBestSolution(step)
			}
		} else {
			unimproved++
		}

		for _, l := range listeners {
			l.StepEnded(step)
		}
		phase.StepCompleted(step)

		log.Debug().
			Int("step", step.Index).
			Stringer("score", step.Score).
			Stringer("best", solver.BestScore).
			Stringer("move", step.Move).
			Msg("step")
	}

	for i = len(listeners) - 1; i >= 0; i-- {
		listeners[i].PhaseEnded(phase)
	}

	res.BestScore = solver.BestScore
	res.StepCount = steps
	res.MoveEvaluationCount = ph.decider.MoveEvaluationCount()
	res.Elapsed = phase.Elapsed()

	ev := log.Info()
	if runErr != nil {
		ev = log.Warn().Err(runErr)
	}
	ev.Int("phase", ph.Index).
		Stringer("bestScore", res.BestScore).
		Int("steps", res.StepCount).
		Int("evaluations", res.MoveEvaluationCount).
		Dur("elapsed", res.Elapsed).
		Stringer("reason", res.Reason).
		Msg("local search ended")

	return res, runErr
}
