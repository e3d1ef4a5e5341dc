// SPDX-License-Identifier: MIT

package facility

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvplan/config"
	"github.com/katalvlaran/lvplan/director"
	"github.com/katalvlaran/lvplan/localsearch"
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/selector"
	"github.com/katalvlaran/lvplan/selector/nearby"
	"github.com/katalvlaran/lvplan/telemetry"
)

// Solution is the outcome of Solve. The problem's points hold the best
// assignment found.
type Solution struct {
	Result     localsearch.Result
	Facilities []*Point
	Telemetry  *telemetry.Recorder
}

// Solve runs one local search phase configured by cfg on pr. On
// cancellation the partial solution is returned together with ctx.Err().
func Solve(ctx context.Context, pr *Problem, cfg *config.Config, l zerolog.Logger) (Solution, error) {
	moves, err := buildMoveSelector(pr, cfg, l)
	if err != nil {
		return Solution{}, err
	}
	d, err := director.NewEasy(pr.Score)
	if err != nil {
		return Solution{}, err
	}

	rec := telemetry.NewRecorder()
	best := pr.snapshot(nil)
	opts := cfg.LocalSearchOptions(l)
	opts.Listeners = append(opts.Listeners, rec)
	opts.OnBestSolution = func(*scope.StepScope) { best = pr.snapshot(best) }

	res, err := localsearch.Solve(ctx, moves, d, opts)
	pr.restore(best)
	sol := Solution{Result: res, Facilities: pr.Facilities(), Telemetry: rec}
	if err != nil {
		return sol, err
	}

	if werr := rec.WriteFile(cfg.Telemetry.CSVPath); werr != nil {
		return sol, fmt.Errorf("facility: %w", werr)
	}
	l.Info().
		Stringer("score", res.BestScore).
		Int("facilities", len(sol.Facilities)).
		Int("improvements", rec.Improvements()).
		Msg("facility location solved")

	return sol, nil
}

func buildMoveSelector(pr *Problem, cfg *config.Config, l zerolog.Logger) (selector.MoveSelector, error) {
	random := cfg.LocalSearch.RandomSelection
	entities, err := selector.NewArenaEntitySelector(pr.Arena, random)
	if err != nil {
		return nil, err
	}
	if !cfg.Nearby.Enabled {
		values, err := selector.NewRangeValueSelector(pr.Arena, pr.Leader, random)
		if err != nil {
			return nil, err
		}

		return selector.NewChangeMoveSelector[*Point, *Point](entities, values, random)
	}

	// The move's entity is recorded and replayed as the nearby origin.
	recording, err := selector.NewRecordingEntitySelector[*Point](entities)
	if err != nil {
		return nil, err
	}
	origin, err := selector.NewReplayingEntitySelector(recording)
	if err != nil {
		return nil, err
	}
	child, err := selector.NewRangeValueSelector(pr.Arena, pr.Leader, false)
	if err != nil {
		return nil, err
	}
	values, err := nearby.NewValueSelector[*Point, *Point](child, origin, pr.DistanceMeter(), cfg.NearbyOptions(l))
	if err != nil {
		return nil, err
	}

	return selector.NewChangeMoveSelector[*Point, *Point](recording, values, random)
}
