// SPDX-License-Identifier: MIT

// Package domain holds planning entities in an arena addressed by stable
// integer handles, and describes the planning variables the solver assigns.
//
// Selectors and caches never key anything by entity identity: they store and
// pass EntityID handles, and resolve them through the owning Arena only when
// a domain object is really needed (distance meters, variable accessors).
//
// Ownership:
//   - Arena owns the entities for the lifetime of a solve.
//   - Selectors own index arrays that reference arena handles.
//
// Concurrency:
//   - An Arena is not synchronized; one search owns it exclusively.
package domain

import (
	"iter"
	"reflect"
)

// EntityID is the stable handle of an entity inside its Arena.
type EntityID int

// Arena owns planning entities and hands out stable integer handles.
// Handles are dense: the i-th added entity gets EntityID(i).
type Arena[E any] struct {
	entities []E
}

// NewArena returns an arena pre-populated with entities in order.
func NewArena[E any](entities ...E) *Arena[E] {
	a := &Arena[E]{entities: make([]E, 0, len(entities))}
	a.entities = append(a.entities, entities...)

	return a
}

// Add appends e and returns its handle.
func (a *Arena[E]) Add(e E) EntityID {
	a.entities = append(a.entities, e)

	return EntityID(len(a.entities) - 1)
}

// Get resolves a handle. It panics when id is out of range (programmer error).
func (a *Arena[E]) Get(id EntityID) E {
	return a.entities[id]
}

// Contains reports whether id is a valid handle of this arena.
func (a *Arena[E]) Contains(id EntityID) bool {
	return id >= 0 && int(id) < len(a.entities)
}

// Len returns the number of entities.
func (a *Arena[E]) Len() int { return len(a.entities) }

// IDs returns all handles in insertion order.
func (a *Arena[E]) IDs() []EntityID {
	ids := make([]EntityID, len(a.entities))
	var i int
	for i = range ids {
		ids[i] = EntityID(i)
	}

	return ids
}

// All iterates handles and entities in insertion order.
func (a *Arena[E]) All() iter.Seq2[EntityID, E] {
	return func(yield func(EntityID, E) bool) {
		var i int
		for i = range a.entities {
			if !yield(EntityID(i), a.entities[i]) {
				return
			}
		}
	}
}

// EntityType returns the static type of the arena's entities.
func (a *Arena[E]) EntityType() reflect.Type {
	return reflect.TypeFor[E]()
}

// Variable describes one planning variable of entity type E with values of type V.
//
// Contracts:
//   - Get/Set read and write the variable on a live entity; E is normally a
//     pointer type so that Set is visible to the score calculation.
//   - Range returns the legal values for the given entity, in a stable order.
//     Entity-independent ranges simply ignore the argument.
type Variable[E, V any] struct {
	Name  string
	Get   func(E) V
	Set   func(E, V)
	Range func(E) []V
}

// ValueType returns the static type of the variable's values.
func (v Variable[E, V]) ValueType() reflect.Type {
	return reflect.TypeFor[V]()
}

// EntityType returns the static type of the entities carrying the variable.
func (v Variable[E, V]) EntityType() reflect.Type {
	return reflect.TypeFor[E]()
}
