// SPDX-License-Identifier: MIT

package selector

import (
	"fmt"

	"github.com/katalvlaran/lvplan/domain"
	"github.com/katalvlaran/lvplan/scope"
)

// Recorder holds the entity most recently yielded by a RecordingEntitySelector.
type Recorder struct {
	current  domain.EntityID
	recorded bool
}

// Current returns the recorded entity and whether one was recorded yet.
func (r *Recorder) Current() (domain.EntityID, bool) { return r.current, r.recorded }

func (r *Recorder) record(id domain.EntityID) {
	r.current, r.recorded = id, true
}

func (r *Recorder) reset() { r.recorded = false }

// RecordingEntitySelector yields the entities of its child unchanged and
// records each one so that ReplayingEntitySelectors can reuse it.
type RecordingEntitySelector[E any] struct {
	child    EntitySelector[E]
	recorder *Recorder
}

// NewRecordingEntitySelector wraps child.
func NewRecordingEntitySelector[E any](child EntitySelector[E]) (*RecordingEntitySelector[E], error) {
	if child == nil {
		return nil, fmt.Errorf("%w: recording child is nil", ErrConfiguration)
	}

	return &RecordingEntitySelector[E]{child: child, recorder: &Recorder{}}, nil
}

// Recorder returns the shared recorder.
func (s *RecordingEntitySelector[E]) Recorder() *Recorder { return s.recorder }

// PhaseStarted implements scope.PhaseLifecycleListener.
func (s *RecordingEntitySelector[E]) PhaseStarted(p *scope.PhaseScope) error {
	s.recorder.reset()

	return s.child.PhaseStarted(p)
}

// StepStarted implements scope.PhaseLifecycleListener.
func (s *RecordingEntitySelector[E]) StepStarted(st *scope.StepScope) { s.child.StepStarted(st) }

// StepEnded implements scope.PhaseLifecycleListener.
func (s *RecordingEntitySelector[E]) StepEnded(st *scope.StepScope) { s.child.StepEnded(st) }

// PhaseEnded implements scope.PhaseLifecycleListener.
func (s *RecordingEntitySelector[E]) PhaseEnded(p *scope.PhaseScope) {
	s.child.PhaseEnded(p)
	s.recorder.reset()
}

// Arena implements EntitySelector.
func (s *RecordingEntitySelector[E]) Arena() *domain.Arena[E] { return s.child.Arena() }

// IsCountable implements EntitySelector.
func (s *RecordingEntitySelector[E]) IsCountable() bool { return s.child.IsCountable() }

// IsNeverEnding implements EntitySelector.
func (s *RecordingEntitySelector[E]) IsNeverEnding() bool { return s.child.IsNeverEnding() }

// Size implements EntitySelector.
func (s *RecordingEntitySelector[E]) Size() int { return s.child.Size() }

// Iterator implements EntitySelector.
func (s *RecordingEntitySelector[E]) Iterator() Selection[domain.EntityID] {
	switch sel := s.child.Iterator().(type) {
	case Finite[domain.EntityID]:
		return Finite[domain.EntityID]{Seq: func(yield func(domain.EntityID) bool) {
			for id := range sel.Seq {
				s.recorder.record(id)
				if !yield(id) {
					return
				}
			}
		}}
	case Infinite[domain.EntityID]:
		return Infinite[domain.EntityID]{Stop: sel.Stop, Next: func() (domain.EntityID, bool) {
			id, ok := sel.Next()
			if ok {
				s.recorder.record(id)
			}

			return id, ok
		}}
	default:
		panic("selector: unknown selection kind")
	}
}

// EndingIterator implements EntitySelector. Ending iteration is not recorded.
func (s *RecordingEntitySelector[E]) EndingIterator() Finite[domain.EntityID] {
	return s.child.EndingIterator()
}

// ReplayingEntitySelector yields the entity currently recorded by its
// RecordingEntitySelector, once per Iterator call. Its ending iteration is the
// recording child's, so caches built from it cover every entity.
//
// Lifecycle hooks are no-ops: the recording side forwards them to the child.
type ReplayingEntitySelector[E any] struct {
	Lifecycle

	recording *RecordingEntitySelector[E]
}

// NewReplayingEntitySelector returns a replay of recording.
func NewReplayingEntitySelector[E any](recording *RecordingEntitySelector[E]) (*ReplayingEntitySelector[E], error) {
	if recording == nil {
		return nil, fmt.Errorf("%w: replay without recording selector", ErrConfiguration)
	}

	return &ReplayingEntitySelector[E]{recording: recording}, nil
}

// Arena implements EntitySelector.
func (s *ReplayingEntitySelector[E]) Arena() *domain.Arena[E] { return s.recording.Arena() }

// IsCountable implements EntitySelector.
func (s *ReplayingEntitySelector[E]) IsCountable() bool { return true }

// IsNeverEnding implements EntitySelector.
func (s *ReplayingEntitySelector[E]) IsNeverEnding() bool { return false }

// Size implements EntitySelector.
func (s *ReplayingEntitySelector[E]) Size() int { return s.recording.Size() }

// Iterator implements EntitySelector. It is empty until something was recorded.
func (s *ReplayingEntitySelector[E]) Iterator() Selection[domain.EntityID] {
	rec := s.recording.recorder

	return Finite[domain.EntityID]{Seq: func(yield func(domain.EntityID) bool) {
		if id, ok := rec.Current(); ok {
			yield(id)
		}
	}}
}

// EndingIterator implements EntitySelector.
func (s *ReplayingEntitySelector[E]) EndingIterator() Finite[domain.EntityID] {
	return s.recording.EndingIterator()
}
