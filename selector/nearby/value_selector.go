// SPDX-License-Identifier: MIT

package nearby

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvplan/domain"
	"github.com/katalvlaran/lvplan/scope"
	"github.com/katalvlaran/lvplan/selector"
)

// DefaultIndexLimit is the largest origin or value count a cache accepts.
const DefaultIndexLimit = math.MaxInt32

// Options configures a ValueSelector.
type Options struct {
	// RandomSelection switches iteration to biased sampling; requires Random.
	RandomSelection bool

	// Random draws neighbor indices in random mode.
	Random Random

	// ExcludeSelf never yields index 0 of a sorted list (the origin itself).
	ExcludeSelf bool

	// IndexLimit caps origin and value counts (0 ⇒ DefaultIndexLimit).
	IndexLimit int

	Logger zerolog.Logger
}

// DefaultOptions returns original iteration with self-exclusion.
func DefaultOptions() Options {
	return Options{ExcludeSelf: true, Logger: zerolog.Nop()}
}

// ValueSelector is a selector.ValueSelector serving the child's values
// nearest-first relative to the origin entity.
type ValueSelector[E, V any] struct {
	selector.Lifecycle

	child  selector.ValueSelector[E, V]
	origin selector.EntitySelector[E]
	meter  DistanceMeter[E, V]
	opts   Options

	// destinations[o] is the sorted list of origin o; cached[o] marks presence.
	// In random mode a list keeps only the indices Random can draw, and
	// lengths[o] is its length before trimming.
	destinations [][]V
	lengths      []int
	cached       []bool
}

// NewValueSelector validates the collaborators.
func NewValueSelector[E, V any](
	child selector.ValueSelector[E, V],
	origin selector.EntitySelector[E],
	meter DistanceMeter[E, V],
	opts Options,
) (*ValueSelector[E, V], error) {
	if child == nil || origin == nil || meter == nil {
		return nil, fmt.Errorf("%w: child, origin and meter are required", ErrConfiguration)
	}
	if opts.RandomSelection && opts.Random == nil {
		return nil, ErrMissingRandom
	}
	et, vt := reflect.TypeFor[E](), reflect.TypeFor[V]()
	if !et.AssignableTo(vt) {
		return nil, fmt.Errorf("%w (%v to %v)", ErrIncompatibleTypes, et, vt)
	}
	if opts.IndexLimit <= 0 {
		opts.IndexLimit = DefaultIndexLimit
	}

	return &ValueSelector[E, V]{child: child, origin: origin, meter: meter, opts: opts}, nil
}

// PhaseStarted threads the call to the child and the origin, then builds
// the sorted per-origin cache.
func (s *ValueSelector[E, V]) PhaseStarted(p *scope.PhaseScope) error {
	if err := s.Lifecycle.PhaseStarted(p); err != nil {
		return err
	}
	if err := s.child.PhaseStarted(p); err != nil {
		return err
	}
	if err := s.origin.PhaseStarted(p); err != nil {
		return err
	}

	return s.buildCache()
}

func (s *ValueSelector[E, V]) buildCache() error {
	start := time.Now()
	arena := s.origin.Arena()
	if n := s.origin.Size(); n > s.opts.IndexLimit {
		return fmt.Errorf("%w: %d origins > %d", ErrCapacity, n, s.opts.IndexLimit)
	}
	destinations := make([][]V, arena.Len())
	lengths := make([]int, arena.Len())
	cached := make([]bool, arena.Len())
	keep := s.keep()

	var (
		values []V
		dists  []float64
		order  []int
		i      int
		total  int
	)
	for o := range s.origin.EndingIterator().Seq {
		if n := s.child.Size(o); n > s.opts.IndexLimit {
			return fmt.Errorf("%w: origin %d has %d values > %d", ErrCapacity, o, n, s.opts.IndexLimit)
		}
		values = selector.Collect(s.child.EndingIterator(o))
		entity := arena.Get(o)
		dists = dists[:0]
		order = order[:0]
		for i = range values {
			d := s.meter.Distance(entity, values[i])
			if math.IsNaN(d) {
				return DistanceError{Origin: o, Index: i, Distance: d}
			}
			dists = append(dists, d)
			order = append(order, i)
		}
		slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(dists[a], dists[b]) })

		sorted := make([]V, min(len(order), keep))
		for i = range sorted {
			sorted[i] = values[order[i]]
		}
		destinations[o], lengths[o], cached[o] = sorted, len(order), true
		total += len(sorted)
	}
	s.destinations, s.lengths, s.cached = destinations, lengths, cached

	s.opts.Logger.Debug().
		Str("variable", s.child.Variable().Name).
		Int("origins", len(destinations)).
		Int("values", total).
		Int("kept", keep).
		Dur("took", time.Since(start)).
		Msg("nearby cache built")

	return nil
}

// StepStarted implements scope.PhaseLifecycleListener.
func (s *ValueSelector[E, V]) StepStarted(st *scope.StepScope) {
	s.child.StepStarted(st)
	s.origin.StepStarted(st)
}

// StepEnded implements scope.PhaseLifecycleListener.
func (s *ValueSelector[E, V]) StepEnded(st *scope.StepScope) {
	s.child.StepEnded(st)
	s.origin.StepEnded(st)
}

// PhaseEnded releases the cache.
func (s *ValueSelector[E, V]) PhaseEnded(p *scope.PhaseScope) {
	s.destinations, s.lengths, s.cached = nil, nil, nil
	s.origin.PhaseEnded(p)
	s.child.PhaseEnded(p)
	s.Lifecycle.PhaseEnded(p)
}

// Variable implements selector.ValueSelector.
func (s *ValueSelector[E, V]) Variable() domain.Variable[E, V] { return s.child.Variable() }

// IsCountable implements selector.ValueSelector.
func (s *ValueSelector[E, V]) IsCountable() bool { return s.child.IsCountable() }

// IsNeverEnding implements selector.ValueSelector.
func (s *ValueSelector[E, V]) IsNeverEnding() bool {
	return s.opts.RandomSelection || !s.IsCountable()
}

// Size returns the number of values nearby selection can yield for entity.
func (s *ValueSelector[E, V]) Size(entity domain.EntityID) int {
	var n int
	if s.isCached(entity) {
		n = len(s.destinations[entity])
	} else {
		n = s.child.Size(entity)
	}

	return max(n-s.offset(), 0)
}

// Neighbors returns the cached sorted list of origin, self included. In
// random mode the list ends after Random.OverallSizeMaximum() candidates.
// The slice must not be modified.
func (s *ValueSelector[E, V]) Neighbors(origin domain.EntityID) []V {
	s.mustBeInPhase()
	if !s.isCached(origin) {
		return nil
	}

	return s.destinations[origin]
}

// Iterator implements selector.ValueSelector.
func (s *ValueSelector[E, V]) Iterator(entity domain.EntityID) selector.Selection[V] {
	s.mustBeInPhase()
	if s.opts.RandomSelection {
		return s.randomIterator(entity)
	}

	switch origins := s.origin.Iterator().(type) {
	case selector.Finite[domain.EntityID]:
		return selector.Finite[V]{Seq: func(yield func(V) bool) {
			for o := range origins.Seq {
				for _, v := range s.nearest(o) {
					if !yield(v) {
						return
					}
				}
			}
		}}
	case selector.Infinite[domain.EntityID]:
		var (
			pending []V
			misses  int
		)
		return selector.Infinite[V]{Next: func() (V, bool) {
			for len(pending) == 0 {
				o, ok := origins.Next()
				if !ok || misses > s.origin.Size() {
					var zero V
					return zero, false
				}
				pending = s.nearest(o)
				if len(pending) == 0 {
					misses++
				} else {
					misses = 0
				}
			}
			v := pending[0]
			pending = pending[1:]

			return v, true
		}}
	default:
		panic("nearby: unknown selection kind")
	}
}

// randomIterator draws one neighbor per drawn origin. Origins whose list is
// empty after the offset are skipped; after more than origin.Size() of them
// in a row the selection reports exhaustion.
func (s *ValueSelector[E, V]) randomIterator(entity domain.EntityID) selector.Selection[V] {
	if s.Size(entity) <= 0 {
		return selector.Exhausted[V]()
	}
	nextOrigin, stopOrigin := selector.Cycle(s.origin.Iterator())
	r := s.WorkingRandom()
	offset := s.offset()

	return selector.Infinite[V]{Stop: stopOrigin, Next: func() (V, bool) {
		var misses int
		for misses <= s.origin.Size() {
			o, ok := nextOrigin()
			if !ok {
				break
			}
			list := s.Neighbors(o)
			if len(list) <= offset {
				misses++
				continue
			}
			// The draw sees the untrimmed length; it never exceeds the kept part.
			i := s.opts.Random.NextInt(r, s.lengths[o]-offset)

			return list[i+offset], true
		}
		var zero V

		return zero, false
	}}
}

// EndingIterator implements selector.ValueSelector. It is the child's ending
// iteration and includes the origin itself.
func (s *ValueSelector[E, V]) EndingIterator(entity domain.EntityID) selector.Finite[V] {
	return s.child.EndingIterator(entity)
}

// nearest returns the neighbors of o that iteration may yield.
func (s *ValueSelector[E, V]) nearest(o domain.EntityID) []V {
	list := s.Neighbors(o)
	if len(list) <= s.offset() {
		return nil
	}

	return list[s.offset():]
}

// keep is the longest list the cache needs: unbounded in original mode,
// the drawable indices plus the offset in random mode.
func (s *ValueSelector[E, V]) keep() int {
	if !s.opts.RandomSelection {
		return math.MaxInt
	}
	m := s.opts.Random.OverallSizeMaximum()
	if m > math.MaxInt-s.offset() {
		return math.MaxInt
	}

	return m + s.offset()
}

func (s *ValueSelector[E, V]) offset() int {
	if s.opts.ExcludeSelf {
		return 1
	}

	return 0
}

func (s *ValueSelector[E, V]) isCached(id domain.EntityID) bool {
	return id >= 0 && int(id) < len(s.cached) && s.cached[id]
}

func (s *ValueSelector[E, V]) mustBeInPhase() {
	if s.cached == nil {
		panic(panicOutsidePhase)
	}
}

func (s *ValueSelector[E, V]) String() string {
	return fmt.Sprintf("NearbyValueSelector(%s, random=%t, excludeSelf=%t)",
		s.child.Variable().Name, s.opts.RandomSelection, s.opts.ExcludeSelf)
}
