// SPDX-License-Identifier: MIT

package localsearch

import (
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/score"
)

// check reports whether the phase must stop before its next step.
func (t Termination) check(p *scope.PhaseScope, steps, unimproved int, cmp score.Comparator) (StopReason, bool) {
	switch {
	case t.StepCountLimit > 0 && steps >= t.StepCountLimit:
		return ReasonStepCountLimit, true
	case t.UnimprovedStepCountLimit > 0 && unimproved >= t.UnimprovedStepCountLimit:
		return ReasonUnimprovedStepCountLimit, true
	case t.TimeLimit > 0 && p.Elapsed() >= t.TimeLimit:
		return ReasonTimeLimit, true
	case t.BestScoreLimit != nil && p.BestScore() != nil && cmp(p.BestScore(), t.BestScoreLimit) >= 0:
		return ReasonBestScoreLimit, true
	}

	return 0, false
}
