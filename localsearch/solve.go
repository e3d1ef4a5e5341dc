// SPDX-License-Identifier: MIT

package localsearch

import (
	"context"

	"github.com/katalvlaran/lvplan/director"
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/selector"
)

// Solve builds a phase from opts and runs it on a fresh solver scope seeded
// with opts.Seed.
//
// Contracts:
//   - moves and d operate on the same working solution.
//   - opts carries at least one termination limit; a never-ending move
//     selection additionally needs MaxMovesPerStep or a TimeLimit.
//
// Errors: ErrConfiguration (wrapped) at setup; selector PhaseStarted errors
// (e.g. nearby capacity or distance errors); scoring errors unless discarded;
// ctx.Err() on cancellation.
func Solve(ctx context.Context, moves selector.MoveSelector, d director.ScoreDirector, opts Options) (Result, error) {
	ph, err := NewPhase(moves, d, opts)
	if err != nil {
		return Result{}, err
	}

	return ph.Solve(ctx, scope.NewSolverScope(opts.Seed))
}
