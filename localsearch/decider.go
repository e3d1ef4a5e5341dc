// SPDX-License-Identifier: MIT

package localsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvplan/director"
	"github.com/katalvlaran/lvplan/forager"
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/selector"
)

// Decider picks the move of one step.
type Decider struct {
	moves    selector.MoveSelector
	director director.ScoreDirector
	acceptor Acceptor
	forager  *forager.AcceptedForager

	maxMoves      int
	timeLimit     time.Duration
	discardErrors bool
	log           zerolog.Logger

	evaluations int
}

// NewDecider wires the step collaborators.
func NewDecider(
	moves selector.MoveSelector,
	d director.ScoreDirector,
	acceptor Acceptor,
	f *forager.AcceptedForager,
	opts Options,
) *Decider {
	return &Decider{
		moves:         moves,
		director:      d,
		acceptor:      acceptor,
		forager:       f,
		maxMoves:      opts.MaxMovesPerStep,
		timeLimit:     opts.Termination.TimeLimit,
		discardErrors: opts.DiscardScoreErrors,
		log:           opts.Logger,
	}
}

// MoveEvaluationCount is the number of candidates scored so far.
func (d *Decider) MoveEvaluationCount() int { return d.evaluations }

// DecideNextStep fills step.Move and step.Score with the winning candidate.
// It returns forager.ErrEmptyCandidateSet when nothing was accepted, ctx.Err()
// on cancellation, or the wrapped scoring error when errors are not discarded.
func (d *Decider) DecideNextStep(ctx context.Context, step *scope.StepScope) error {
	d.forager.BeforeDeciding(step)

	next, stop := d.moves.Iterator().Pull()
	defer stop()

	var index int
	for d.maxMoves <= 0 || index < d.maxMoves {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.timeLimit > 0 && step.Phase.Elapsed() >= d.timeLimit {
			break
		}
		m, ok := next()
		if !ok {
			break
		}
		ms := scope.NewMoveScope(step, index, m)
		index++
		if !m.IsDoable() {
			continue
		}

		s, _, err := director.Evaluate(d.director, m)
		d.evaluations++
		if err != nil {
			if !d.discardErrors {
				return fmt.Errorf("localsearch: step %d: scoring %v: %w", step.Index, m, err)
			}
			d.log.Warn().Err(err).Int("step", step.Index).Stringer("move", m).Msg("candidate discarded")
			continue
		}
		ms.Score = s
		ms.Accepted = d.acceptor.IsAccepted(ms)
		d.forager.AddMove(ms)
		if d.forager.IsQuitEarly() {
			break
		}
	}

	winner, err := d.forager.PickMove(step)
	if err != nil {
		return err
	}
	step.Move, step.Score = winner.Move, winner.Score

	return nil
}
