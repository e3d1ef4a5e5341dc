// SPDX-License-Identifier: MIT

package selector

import "iter"

// Kind tags a Selection as finite or infinite.
type Kind int

const (
	// KindFinite marks a restartable, exhaustible sequence in original order.
	KindFinite Kind = iota

	// KindInfinite marks an on-demand sampling generator.
	KindInfinite
)

func (k Kind) String() string {
	if k == KindInfinite {
		return "infinite"
	}

	return "finite"
}

// Selection is either a Finite or an Infinite sequence of T.
// The set of implementations is closed.
type Selection[T any] interface {
	// Kind returns the tag.
	Kind() Kind

	// Pull returns a pull-style iterator; stop must be called when done.
	Pull() (next func() (T, bool), stop func())

	isSelection()
}

// Finite is a restartable sequence: ranging over Seq again starts over.
type Finite[T any] struct {
	Seq iter.Seq[T]
}

// Kind implements Selection.
func (Finite[T]) Kind() Kind { return KindFinite }

// Pull implements Selection.
func (f Finite[T]) Pull() (func() (T, bool), func()) { return iter.Pull(f.Seq) }

func (Finite[T]) isSelection() {}

// Infinite is an on-demand generator. Next reports false only when the
// underlying source has nothing to draw from; for never-ending sources it
// keeps yielding forever and the caller decides when to stop.
type Infinite[T any] struct {
	Next func() (T, bool)

	// Stop releases what Next holds on to; nil when there is nothing.
	Stop func()
}

// Kind implements Selection.
func (Infinite[T]) Kind() Kind { return KindInfinite }

// Pull implements Selection.
func (i Infinite[T]) Pull() (func() (T, bool), func()) {
	if i.Stop == nil {
		return i.Next, func() {}
	}

	return i.Next, i.Stop
}

func (Infinite[T]) isSelection() {}

// FromSlice returns a Finite selection over xs (not copied).
func FromSlice[T any](xs []T) Finite[T] {
	return Finite[T]{Seq: func(yield func(T) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}}
}

// Exhausted returns an Infinite selection that never yields.
func Exhausted[T any]() Infinite[T] {
	return Infinite[T]{Next: func() (T, bool) {
		var zero T
		return zero, false
	}}
}

// Take pulls at most n items from s.
func Take[T any](s Selection[T], n int) []T {
	out := make([]T, 0, max(n, 0))
	next, stop := s.Pull()
	defer stop()
	for len(out) < n {
		x, ok := next()
		if !ok {
			break
		}
		out = append(out, x)
	}

	return out
}

// Collect drains a finite selection.
func Collect[T any](f Finite[T]) []T {
	var out []T
	for x := range f.Seq {
		out = append(out, x)
	}

	return out
}

// Cycle turns s into a draw function for sampling loops. An Infinite
// selection is pulled as is. A Finite one is pulled lazily and started over
// when it runs out, so its side effects (recording) happen at draw time. The
// draw reports false only when a fresh pass yields nothing.
//
// stop must be called once drawing is done.
func Cycle[T any](s Selection[T]) (draw func() (T, bool), stop func()) {
	if inf, ok := s.(Infinite[T]); ok {
		return inf.Pull()
	}
	seq := s.(Finite[T]).Seq

	var (
		next     func() (T, bool)
		stopPass func()
	)
	stop = func() {
		if stopPass != nil {
			stopPass()
			next, stopPass = nil, nil
		}
	}
	draw = func() (T, bool) {
		if next != nil {
			if x, ok := next(); ok {
				return x, true
			}
			stop()
		}
		next, stopPass = iter.Pull(seq)
		x, ok := next()
		if !ok {
			stop()
		}

		return x, ok
	}

	return draw, stop
}
