// SPDX-License-Identifier: MIT

package selector

import (
	"fmt"

	"github.com/katalvlaran/lvplan/domain"
	"github.com/katalvlaran/lvplan/scope"
)

// ValueSelector enumerates candidate values of one variable for a given entity.
type ValueSelector[E, V any] interface {
	scope.PhaseLifecycleListener

	// Variable returns the descriptor of the selected variable.
	Variable() domain.Variable[E, V]

	// IsCountable reports whether Size is meaningful.
	IsCountable() bool

	// IsNeverEnding reports whether Iterator keeps yielding forever.
	IsNeverEnding() bool

	// Size returns the number of candidate values for entity.
	Size(entity domain.EntityID) int

	// Iterator returns the selection for entity in the configured mode.
	Iterator(entity domain.EntityID) Selection[V]

	// EndingIterator always returns the exhaustive original-order selection.
	EndingIterator(entity domain.EntityID) Finite[V]
}

// RangeValueSelector selects from Variable.Range of the resolved entity.
type RangeValueSelector[E, V any] struct {
	Lifecycle

	arena    *domain.Arena[E]
	variable domain.Variable[E, V]
	random   bool
}

// NewRangeValueSelector returns a selector over the variable's value range.
func NewRangeValueSelector[E, V any](arena *domain.Arena[E], variable domain.Variable[E, V], randomSelection bool) (*RangeValueSelector[E, V], error) {
	if arena == nil {
		return nil, fmt.Errorf("%w: arena is nil", ErrConfiguration)
	}
	if variable.Range == nil {
		return nil, fmt.Errorf("%w: variable %q has no value range", ErrConfiguration, variable.Name)
	}

	return &RangeValueSelector[E, V]{arena: arena, variable: variable, random: randomSelection}, nil
}

// Variable implements ValueSelector.
func (s *RangeValueSelector[E, V]) Variable() domain.Variable[E, V] { return s.variable }

// IsCountable implements ValueSelector.
func (s *RangeValueSelector[E, V]) IsCountable() bool { return true }

// IsNeverEnding implements ValueSelector.
func (s *RangeValueSelector[E, V]) IsNeverEnding() bool { return s.random }

// Size implements ValueSelector.
func (s *RangeValueSelector[E, V]) Size(entity domain.EntityID) int {
	return len(s.values(entity))
}

// Iterator implements ValueSelector.
func (s *RangeValueSelector[E, V]) Iterator(entity domain.EntityID) Selection[V] {
	if !s.random {
		return s.EndingIterator(entity)
	}
	values := s.values(entity)
	r := s.WorkingRandom()

	return Infinite[V]{Next: func() (V, bool) {
		if len(values) == 0 {
			var zero V
			return zero, false
		}

		return values[r.Intn(len(values))], true
	}}
}

// EndingIterator implements ValueSelector.
func (s *RangeValueSelector[E, V]) EndingIterator(entity domain.EntityID) Finite[V] {
	return Finite[V]{Seq: func(yield func(V) bool) {
		for _, v := range s.values(entity) {
			if !yield(v) {
				return
			}
		}
	}}
}

func (s *RangeValueSelector[E, V]) values(entity domain.EntityID) []V {
	return s.variable.Range(s.arena.Get(entity))
}

func (s *RangeValueSelector[E, V]) String() string {
	return fmt.Sprintf("RangeValueSelector(%s, random=%t)", s.variable.Name, s.random)
}
