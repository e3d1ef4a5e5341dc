// SPDX-License-Identifier: MIT

// Package selector lazily enumerates planning entities, candidate values and
// the moves built from them.
//
// Iteration modes:
//
//	Every selector works in one of two modes, expressed by the Selection tag
//	rather than by a boolean checked at runtime:
//	  • Finite   - original (deterministic) order, exhaustible and restartable.
//	  • Infinite - random sampling, an on-demand generator that keeps yielding
//	               while its source is non-empty.
//
//	Callers branch on the tag:
//
//	  switch s := sel.(type) {
//	  case selector.Finite[domain.EntityID]:
//	      for id := range s.Seq { ... }
//	  case selector.Infinite[domain.EntityID]:
//	      id, ok := s.Next()
//	  }
//
//	or consume both uniformly through Pull.
//
// Lifecycle:
//
//	Selectors implement scope.PhaseLifecycleListener. Composite selectors
//	(mimic, change move, nearby) forward every hook to their children; the
//	working random of the phase is captured at PhaseStarted.
//
// Components:
//   - ArenaEntitySelector      - all entities of an arena.
//   - RangeValueSelector       - the value range of a variable for an entity.
//   - RecordingEntitySelector / ReplayingEntitySelector - mimic pair that lets
//     a second selector reuse the entity currently being selected.
//   - ChangeMoveSelector       - entity × value composition into ChangeMoves.
package selector
