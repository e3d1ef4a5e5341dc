// SPDX-License-Identifier: MIT

// Package move defines the opaque candidate actions evaluated by the search.
//
// The forager and deciders treat a Move as a handle: they never inspect it
// beyond identity and the score attached to it by a MoveScope. Only the score
// director applies moves, through Do and the undo move Do returns.
package move

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvplan/domain"
)

// Move is one candidate transformation of the working solution.
type Move interface {
	// IsDoable reports whether applying the move would change the solution.
	IsDoable() bool

	// Do applies the move and returns the move that undoes it.
	Do() Move

	// String describes the move for logs and telemetry.
	String() string
}

// ChangeMove assigns ToValue to Variable on Entity.
type ChangeMove[E, V any] struct {
	Variable domain.Variable[E, V]
	Entity   E
	ToValue  V
}

// NewChangeMove builds a ChangeMove.
func NewChangeMove[E, V any](variable domain.Variable[E, V], entity E, to V) *ChangeMove[E, V] {
	return &ChangeMove[E, V]{Variable: variable, Entity: entity, ToValue: to}
}

// IsDoable is false when ToValue is already assigned.
func (m *ChangeMove[E, V]) IsDoable() bool {
	return !sameValue(m.Variable.Get(m.Entity), m.ToValue)
}

// Do assigns ToValue and returns the ChangeMove restoring the previous value.
func (m *ChangeMove[E, V]) Do() Move {
	old := m.Variable.Get(m.Entity)
	m.Variable.Set(m.Entity, m.ToValue)

	return &ChangeMove[E, V]{Variable: m.Variable, Entity: m.Entity, ToValue: old}
}

func (m *ChangeMove[E, V]) String() string {
	return fmt.Sprintf("%v {%s -> %v}", m.Entity, m.Variable.Name, m.ToValue)
}

// sameValue compares two values of an arbitrary type without panicking on
// non-comparable dynamic types (slices, maps), which fall back to DeepEqual.
func sameValue[V any](a, b V) bool {
	va := reflect.ValueOf(&a).Elem()
	if va.Kind() == reflect.Interface {
		if va.IsNil() || reflect.ValueOf(&b).Elem().IsNil() {
			return va.IsNil() && reflect.ValueOf(&b).Elem().IsNil()
		}
		va = va.Elem()
	}
	if va.Type().Comparable() {
		return any(a) == any(b)
	}

	return reflect.DeepEqual(a, b)
}
