// SPDX-License-Identifier: MIT

package selector

import (
	"fmt"

	"github.com/katalvlaran/lvplan/domain"
	"github.com/katalvlaran/lvplan/move"
	"github.com/katalvlaran/lvplan/scope"
)

// MoveSelector enumerates candidate moves for one step.
type MoveSelector interface {
	scope.PhaseLifecycleListener

	// IsNeverEnding reports whether Iterator keeps yielding forever.
	IsNeverEnding() bool

	// Size returns the number of distinct moves of the neighborhood.
	Size() int

	// Iterator returns a fresh selection of candidate moves.
	Iterator() Selection[move.Move]
}

// ChangeMoveSelector composes an entity selector and a value selector into
// ChangeMoves.
//
// Original mode is the cartesian product entity × values(entity), both in
// original order. Random mode pulls one entity, then one value for it, per
// move; it gives up after more than Size() consecutive entities without any
// value.
type ChangeMoveSelector[E, V any] struct {
	entities EntitySelector[E]
	values   ValueSelector[E, V]
	random   bool
}

// NewChangeMoveSelector validates the composition. Original mode requires
// children that end.
func NewChangeMoveSelector[E, V any](entities EntitySelector[E], values ValueSelector[E, V], randomSelection bool) (*ChangeMoveSelector[E, V], error) {
	if entities == nil || values == nil {
		return nil, fmt.Errorf("%w: change move selector needs entity and value selectors", ErrConfiguration)
	}
	if !randomSelection && (entities.IsNeverEnding() || values.IsNeverEnding()) {
		return nil, ErrNeverEndingChild
	}

	return &ChangeMoveSelector[E, V]{entities: entities, values: values, random: randomSelection}, nil
}

// PhaseStarted implements scope.PhaseLifecycleListener. Entities start first
// so that value caches may rely on them.
func (s *ChangeMoveSelector[E, V]) PhaseStarted(p *scope.PhaseScope) error {
	if err := s.entities.PhaseStarted(p); err != nil {
		return err
	}

	return s.values.PhaseStarted(p)
}

// StepStarted implements scope.PhaseLifecycleListener.
func (s *ChangeMoveSelector[E, V]) StepStarted(st *scope.StepScope) {
	s.entities.StepStarted(st)
	s.values.StepStarted(st)
}

// StepEnded implements scope.PhaseLifecycleListener.
func (s *ChangeMoveSelector[E, V]) StepEnded(st *scope.StepScope) {
	s.entities.StepEnded(st)
	s.values.StepEnded(st)
}

// PhaseEnded implements scope.PhaseLifecycleListener.
func (s *ChangeMoveSelector[E, V]) PhaseEnded(p *scope.PhaseScope) {
	s.values.PhaseEnded(p)
	s.entities.PhaseEnded(p)
}

// IsNeverEnding implements MoveSelector.
func (s *ChangeMoveSelector[E, V]) IsNeverEnding() bool { return s.random }

// Size implements MoveSelector.
func (s *ChangeMoveSelector[E, V]) Size() int {
	var n int
	for id := range s.entities.EndingIterator().Seq {
		n += s.values.Size(id)
	}

	return n
}

// Iterator implements MoveSelector.
func (s *ChangeMoveSelector[E, V]) Iterator() Selection[move.Move] {
	if s.random {
		return s.randomIterator()
	}
	entities, ok := s.entities.Iterator().(Finite[domain.EntityID])
	if !ok {
		panic("selector: original change move selection over infinite entities")
	}

	return Finite[move.Move]{Seq: func(yield func(move.Move) bool) {
		for id := range entities.Seq {
			values, ok := s.values.Iterator(id).(Finite[V])
			if !ok {
				panic("selector: original change move selection over infinite values")
			}
			for v := range values.Seq {
				if !yield(s.newMove(id, v)) {
					return
				}
			}
		}
	}}
}

func (s *ChangeMoveSelector[E, V]) randomIterator() Infinite[move.Move] {
	nextEntity, stopEntities := Cycle(s.entities.Iterator())

	return Infinite[move.Move]{Stop: stopEntities, Next: func() (move.Move, bool) {
		var misses int
		for misses <= s.entities.Size() {
			id, ok := nextEntity()
			if !ok {
				return nil, false
			}
			next, stop := s.values.Iterator(id).Pull()
			v, ok := next()
			stop()
			if ok {
				return s.newMove(id, v), true
			}
			misses++
		}

		return nil, false
	}}
}

func (s *ChangeMoveSelector[E, V]) newMove(id domain.EntityID, v V) move.Move {
	return move.NewChangeMove(s.values.Variable(), s.entities.Arena().Get(id), v)
}

func (s *ChangeMoveSelector[E, V]) String() string {
	return fmt.Sprintf("ChangeMoveSelector(%s, random=%t)", s.values.Variable().Name, s.random)
}
