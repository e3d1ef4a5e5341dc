// SPDX-License-Identifier: MIT

package localsearch

import (
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/score"
)

// Acceptor decides whether a scored candidate may be foraged.
type Acceptor interface {
	scope.PhaseLifecycleListener

	IsAccepted(ms *scope.MoveScope) bool
}

// HillClimbingAcceptor accepts candidates not worse than the last step score.
type HillClimbingAcceptor struct {
	cmp score.Comparator
}

// NewHillClimbingAcceptor orders scores with cmp (nil ⇒ score.Natural).
func NewHillClimbingAcceptor(cmp score.Comparator) *HillClimbingAcceptor {
	return &HillClimbingAcceptor{cmp: score.OrNatural(cmp)}
}

func (a *HillClimbingAcceptor) PhaseStarted(*scope.PhaseScope) error { return nil }
func (a *HillClimbingAcceptor) StepStarted(*scope.StepScope)         {}
func (a *HillClimbingAcceptor) StepEnded(*scope.StepScope)           {}
func (a *HillClimbingAcceptor) PhaseEnded(*scope.PhaseScope)         {}

// IsAccepted implements Acceptor.
func (a *HillClimbingAcceptor) IsAccepted(ms *scope.MoveScope) bool {
	last := ms.Step.Phase.LastStepScore()

	return last == nil || a.cmp(ms.Score, last) >= 0
}

// LateAcceptanceAcceptor compares candidates with the step score of size
// steps ago, kept in a ring buffer seeded with the phase's starting score.
type LateAcceptanceAcceptor struct {
	cmp  score.Comparator
	size int

	late []score.Score
	next int
}

// NewLateAcceptanceAcceptor returns an acceptor over size steps (size ≥ 1).
func NewLateAcceptanceAcceptor(size int, cmp score.Comparator) *LateAcceptanceAcceptor {
	return &LateAcceptanceAcceptor{cmp: score.OrNatural(cmp), size: size}
}

// PhaseStarted implements scope.PhaseLifecycleListener.
func (a *LateAcceptanceAcceptor) PhaseStarted(p *scope.PhaseScope) error {
	a.late = make([]score.Score, a.size)
	for i := range a.late {
		a.late[i] = p.StartingScore
	}
	a.next = 0

	return nil
}

// StepStarted implements scope.PhaseLifecycleListener.
func (a *LateAcceptanceAcceptor) StepStarted(*scope.StepScope) {}

// StepEnded records the step score in place of the oldest entry.
func (a *LateAcceptanceAcceptor) StepEnded(st *scope.StepScope) {
	a.late[a.next] = st.Score
	a.next = (a.next + 1) % a.size
}

// PhaseEnded implements scope.PhaseLifecycleListener.
func (a *LateAcceptanceAcceptor) PhaseEnded(*scope.PhaseScope) { a.late = nil }

// IsAccepted implements Acceptor.
func (a *LateAcceptanceAcceptor) IsAccepted(ms *scope.MoveScope) bool {
	if late := a.late[a.next]; late == nil || a.cmp(ms.Score, late) >= 0 {
		return true
	}
	last := ms.Step.Phase.LastStepScore()

	return last != nil && a.cmp(ms.Score, last) >= 0
}
