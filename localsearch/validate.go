// SPDX-License-Identifier: MIT

package localsearch

import (
	"fmt"

	"github.com/katalvlaran/lvplan/selector"
)

// validateOptions checks Options against the move selector they will drive.
//
// Complexity: O(1).
func validateOptions(moves selector.MoveSelector, opts Options) error {
	if opts.Acceptor < HillClimbing || opts.Acceptor > LateAcceptance {
		return fmt.Errorf("%w: %v", ErrUnknownAcceptor, opts.Acceptor)
	}
	if opts.Acceptor == LateAcceptance && opts.LateAcceptanceSize < 1 {
		return fmt.Errorf("%w: late acceptance size %d < 1", ErrConfiguration, opts.LateAcceptanceSize)
	}
	if opts.MaxMovesPerStep < 0 {
		return fmt.Errorf("%w: max moves per step %d < 0", ErrConfiguration, opts.MaxMovesPerStep)
	}

	t := opts.Termination
	if t.isZero() {
		return ErrNoTermination
	}
	if t.StepCountLimit < 0 || t.UnimprovedStepCountLimit < 0 || t.TimeLimit < 0 {
		return fmt.Errorf("%w: negative termination limit", ErrConfiguration)
	}

	if moves.IsNeverEnding() && opts.MaxMovesPerStep <= 0 && t.TimeLimit <= 0 {
		return ErrUnboundedStep
	}

	return nil
}
