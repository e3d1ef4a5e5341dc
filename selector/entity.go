// SPDX-License-Identifier: MIT

package selector

import (
	"fmt"

	"github.com/katalvlaran/lvplan/domain"
	"github.com/katalvlaran/lvplan/scope"
)

// EntitySelector enumerates entity handles of one arena.
type EntitySelector[E any] interface {
	scope.PhaseLifecycleListener

	// Arena resolves the handles this selector yields.
	Arena() *domain.Arena[E]

	// IsCountable reports whether Size is meaningful.
	IsCountable() bool

	// IsNeverEnding reports whether Iterator keeps yielding forever.
	IsNeverEnding() bool

	// Size returns the number of distinct entities that can be selected.
	Size() int

	// Iterator returns the selection in the configured mode.
	Iterator() Selection[domain.EntityID]

	// EndingIterator always returns the exhaustive original-order selection.
	EndingIterator() Finite[domain.EntityID]
}

// ArenaEntitySelector selects every entity of an arena, either in arena order
// (original) or by uniform sampling with replacement (random).
type ArenaEntitySelector[E any] struct {
	Lifecycle

	arena  *domain.Arena[E]
	random bool
}

// NewArenaEntitySelector returns a selector over arena.
func NewArenaEntitySelector[E any](arena *domain.Arena[E], randomSelection bool) (*ArenaEntitySelector[E], error) {
	if arena == nil {
		return nil, fmt.Errorf("%w: arena is nil", ErrConfiguration)
	}

	return &ArenaEntitySelector[E]{arena: arena, random: randomSelection}, nil
}

// Arena implements EntitySelector.
func (s *ArenaEntitySelector[E]) Arena() *domain.Arena[E] { return s.arena }

// IsCountable implements EntitySelector.
func (s *ArenaEntitySelector[E]) IsCountable() bool { return true }

// IsNeverEnding implements EntitySelector.
func (s *ArenaEntitySelector[E]) IsNeverEnding() bool { return s.random }

// Size implements EntitySelector.
func (s *ArenaEntitySelector[E]) Size() int { return s.arena.Len() }

// Iterator implements EntitySelector.
func (s *ArenaEntitySelector[E]) Iterator() Selection[domain.EntityID] {
	if !s.random {
		return s.EndingIterator()
	}
	r := s.WorkingRandom()

	return Infinite[domain.EntityID]{Next: func() (domain.EntityID, bool) {
		n := s.arena.Len()
		if n == 0 {
			return 0, false
		}

		return domain.EntityID(r.Intn(n)), true
	}}
}

// EndingIterator implements EntitySelector.
func (s *ArenaEntitySelector[E]) EndingIterator() Finite[domain.EntityID] {
	return Finite[domain.EntityID]{Seq: func(yield func(domain.EntityID) bool) {
		var i int
		for i = 0; i < s.arena.Len(); i++ {
			if !yield(domain.EntityID(i)) {
				return
			}
		}
	}}
}

func (s *ArenaEntitySelector[E]) String() string {
	return fmt.Sprintf("ArenaEntitySelector(%v, random=%t)", s.arena.EntityType(), s.random)
}
