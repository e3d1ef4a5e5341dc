// SPDX-License-Identifier: MIT

package selector

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvplan/scope"
)

var (
	// ErrConfiguration is the class of all invalid selector constructions.
	ErrConfiguration = errors.New("selector: invalid configuration")

	// ErrNeverEndingChild is returned when an original (exhaustive) composition
	// is built over a child that never ends.
	ErrNeverEndingChild = errors.New("selector: original selection over a never-ending child")
)

// Lifecycle is the embeddable base of every selector. It captures the
// working random when a phase starts and drops it when the phase ends.
//
// Steps need no bookkeeping at this level, so StepStarted/StepEnded are no-ops.
type Lifecycle struct {
	random *rand.Rand
}

// PhaseStarted implements scope.PhaseLifecycleListener.
func (l *Lifecycle) PhaseStarted(p *scope.PhaseScope) error {
	l.random = p.WorkingRandom()

	return nil
}

// StepStarted implements scope.PhaseLifecycleListener.
func (l *Lifecycle) StepStarted(*scope.StepScope) {}

// StepEnded implements scope.PhaseLifecycleListener.
func (l *Lifecycle) StepEnded(*scope.StepScope) {}

// PhaseEnded implements scope.PhaseLifecycleListener.
func (l *Lifecycle) PhaseEnded(*scope.PhaseScope) {
	l.random = nil
}

// WorkingRandom returns the phase's random source. Outside a phase it falls
// back to the deterministic default stream (seed==0 policy).
func (l *Lifecycle) WorkingRandom() *rand.Rand {
	l.random = scope.OrDefault(l.random)

	return l.random
}
