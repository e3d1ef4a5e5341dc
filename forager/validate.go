// SPDX-License-Identifier: MIT

package forager

import "fmt"

// validateOptions rejects out-of-range enums and negative limits.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.PickEarly < Never || opts.PickEarly > FirstLastStepScoreImproving {
		return fmt.Errorf("%w: %v", ErrUnknownPickEarlyType, opts.PickEarly)
	}
	if opts.TieBreak < TieFirst || opts.TieBreak > TieRandom {
		return fmt.Errorf("%w: %v", ErrUnknownTieBreak, opts.TieBreak)
	}
	if opts.AcceptedCountLimit < 0 {
		return fmt.Errorf("%w: accepted count limit %d < 0", ErrConfiguration, opts.AcceptedCountLimit)
	}
	if opts.TopListSize < 0 {
		return fmt.Errorf("%w: top list size %d < 0", ErrConfiguration, opts.TopListSize)
	}

	return nil
}
