// SPDX-License-Identifier: MIT

package localsearch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvplan/forager"
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/score"
)

var (
	// ErrConfiguration indicates invalid or contradictory Options.
	ErrConfiguration = errors.New("localsearch: invalid configuration")

	// ErrNoTermination is returned when no termination limit is set.
	ErrNoTermination = fmt.Errorf("%w: at least one termination limit is required", ErrConfiguration)

	// ErrUnboundedStep is returned when a never-ending move selection has
	// neither MaxMovesPerStep nor a time limit to end a step in which no
	// candidate is ever accepted.
	ErrUnboundedStep = fmt.Errorf("%w: never-ending move selection without a per-step bound", ErrConfiguration)

	// ErrUnknownAcceptor is returned by ParseAcceptorType.
	ErrUnknownAcceptor = fmt.Errorf("%w: unknown acceptor", ErrConfiguration)
)

// AcceptorType selects the acceptor built by Solve.
type AcceptorType int

const (
	// HillClimbing accepts candidates not worse than the last step.
	HillClimbing AcceptorType = iota

	// LateAcceptance also accepts candidates not worse than a step long ago.
	LateAcceptance
)

var acceptorNames = [...]string{HillClimbing: "HILL_CLIMBING", LateAcceptance: "LATE_ACCEPTANCE"}

func (a AcceptorType) String() string {
	if a < 0 || int(a) >= len(acceptorNames) {
		return fmt.Sprintf("AcceptorType(%d)", int(a))
	}

	return acceptorNames[a]
}

// ParseAcceptorType accepts "HILL_CLIMBING" or "LATE_ACCEPTANCE", case-insensitively.
func ParseAcceptorType(s string) (AcceptorType, error) {
	for i, name := range acceptorNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return AcceptorType(i), nil
		}
	}

	return HillClimbing, fmt.Errorf("%w: %q", ErrUnknownAcceptor, s)
}

// Termination lists the phase stop conditions; zero fields are disabled.
type Termination struct {
	StepCountLimit           int
	UnimprovedStepCountLimit int
	TimeLimit                time.Duration

	// BestScoreLimit stops the phase once the best score is at least this good.
	BestScoreLimit score.Score
}

func (t Termination) isZero() bool {
	return t.StepCountLimit == 0 && t.UnimprovedStepCountLimit == 0 && t.TimeLimit == 0 && t.BestScoreLimit == nil
}

// Options configures a local search phase.
type Options struct {
	// Seed drives the working random of Solve (0 ⇒ scope.DefaultSeed).
	Seed int64

	// PhaseRandom gives each phase its own stream derived from the solver's
	// source and the phase index, so draws in one phase do not shift the
	// draws of the next.
	PhaseRandom bool

	Acceptor           AcceptorType
	LateAcceptanceSize int

	Forager forager.Options

	// MaxMovesPerStep caps the candidates evaluated per step (0 ⇒ unlimited).
	MaxMovesPerStep int

	// DiscardScoreErrors drops candidates whose scoring failed instead of
	// aborting the phase.
	DiscardScoreErrors bool

	Termination Termination

	// Listeners receive the phase lifecycle after the built-in components.
	Listeners []scope.PhaseLifecycleListener

	// OnBestSolution is called right after a step improved the best score,
	// while the working solution is the new best.
	OnBestSolution func(step *scope.StepScope)

	Logger zerolog.Logger
}

// DefaultOptions returns late acceptance over 400 steps, a forager that
// stops at the first accepted candidate, at most 1000 candidates per step
// and a limit of 1000 unimproved steps.
func DefaultOptions() Options {
	fo := forager.DefaultOptions()
	fo.AcceptedCountLimit = 1

	return Options{
		Acceptor:           LateAcceptance,
		LateAcceptanceSize: 400,
		Forager:            fo,
		MaxMovesPerStep:    1000,
		Termination:        Termination{UnimprovedStepCountLimit: 1000},
		Logger:             zerolog.Nop(),
	}
}

// StopReason tells why a phase ended.
type StopReason int

const (
	ReasonStepCountLimit StopReason = iota
	ReasonUnimprovedStepCountLimit
	ReasonTimeLimit
	ReasonBestScoreLimit
	ReasonNoMoves
	ReasonCanceled
	ReasonFailed
)

var reasonNames = [...]string{
	ReasonStepCountLimit:           "step count limit",
	ReasonUnimprovedStepCountLimit: "unimproved step count limit",
	ReasonTimeLimit:                "time limit",
	ReasonBestScoreLimit:           "best score limit",
	ReasonNoMoves:                  "no accepted move",
	ReasonCanceled:                 "canceled",
	ReasonFailed:                   "failed",
}

func (r StopReason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("StopReason(%d)", int(r))
	}

	return reasonNames[r]
}

// Result summarizes a finished phase.
type Result struct {
	BestScore           score.Score
	StartingScore       score.Score
	StepCount           int
	MoveEvaluationCount int
	Elapsed             time.Duration
	Reason              StopReason
}
