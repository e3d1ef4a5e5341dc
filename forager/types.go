// SPDX-License-Identifier: MIT

package forager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvplan/score"
)

var (
	// ErrConfiguration indicates contradictory or out-of-range Options.
	ErrConfiguration = errors.New("forager: invalid configuration")

	// ErrEmptyCandidateSet is returned by PickMove when no candidate was
	// accepted during the step.
	ErrEmptyCandidateSet = errors.New("forager: no accepted candidate in this step")

	// ErrUnknownPickEarlyType is returned by ParsePickEarlyType.
	ErrUnknownPickEarlyType = fmt.Errorf("%w: unknown pick early type", ErrConfiguration)

	// ErrUnknownTieBreak is returned by ParseTieBreak.
	ErrUnknownTieBreak = fmt.Errorf("%w: unknown tie break", ErrConfiguration)
)

const (
	panicNotDeciding = "forager: AddMove before BeforeDeciding"
	panicNoPhase     = "forager: BeforeDeciding outside a phase"
)

// PickEarlyType selects the score-based quit-early policy.
type PickEarlyType int

const (
	// Never keeps collecting until the step ends or another limit fires.
	Never PickEarlyType = iota

	// FirstBestScoreImproving picks the first candidate strictly better than
	// the phase's best score.
	FirstBestScoreImproving

	// FirstLastStepScoreImproving picks the first candidate strictly better
	// than the previous step's score.
	FirstLastStepScoreImproving
)

var pickEarlyNames = [...]string{
	Never:                       "NEVER",
	FirstBestScoreImproving:     "FIRST_BEST_SCORE_IMPROVING",
	FirstLastStepScoreImproving: "FIRST_LAST_STEP_SCORE_IMPROVING",
}

func (t PickEarlyType) String() string {
	if t < 0 || int(t) >= len(pickEarlyNames) {
		return fmt.Sprintf("PickEarlyType(%d)", int(t))
	}

	return pickEarlyNames[t]
}

// ParsePickEarlyType accepts the upper-case names produced by String,
// case-insensitively.
func ParsePickEarlyType(s string) (PickEarlyType, error) {
	for i, name := range pickEarlyNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return PickEarlyType(i), nil
		}
	}

	return Never, fmt.Errorf("%w: %q", ErrUnknownPickEarlyType, s)
}

// TieBreak resolves ties among the highest accepted candidates when an
// accepted-count limit is configured.
type TieBreak int

const (
	// TieFirst keeps the earliest inserted candidate.
	TieFirst TieBreak = iota

	// TieRandom draws uniformly among the tied candidates.
	TieRandom
)

var tieBreakNames = [...]string{TieFirst: "FIRST", TieRandom: "RANDOM"}

func (b TieBreak) String() string {
	if b < 0 || int(b) >= len(tieBreakNames) {
		return fmt.Sprintf("TieBreak(%d)", int(b))
	}

	return tieBreakNames[b]
}

// ParseTieBreak accepts "FIRST" or "RANDOM", case-insensitively.
func ParseTieBreak(s string) (TieBreak, error) {
	for i, name := range tieBreakNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return TieBreak(i), nil
		}
	}

	return TieFirst, fmt.Errorf("%w: %q", ErrUnknownTieBreak, s)
}

// Options configures an AcceptedForager. The zero value is valid and equals
// DefaultOptions except for the nil Comparator, which means score.Natural.
type Options struct {
	PickEarly PickEarlyType

	// AcceptedCountLimit sets quit-early once this many candidates were
	// accepted in a step (0 ⇒ unlimited).
	AcceptedCountLimit int

	// TieBreak applies only when AcceptedCountLimit > 0.
	TieBreak TieBreak

	// TopListSize bounds the ranked list kept per step (0 ⇒ unbounded).
	TopListSize int

	// Comparator orders scores (nil ⇒ score.Natural).
	Comparator score.Comparator
}

// DefaultOptions returns Never, no count limit, first-wins ties, an
// unbounded top list and the natural score order.
func DefaultOptions() Options {
	return Options{
		PickEarly:  Never,
		TieBreak:   TieFirst,
		Comparator: score.Natural,
	}
}
