// SPDX-License-Identifier: MIT

package nearby

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMeter measures how far a destination value is from an origin entity.
// The distance may be asymmetric; it must not be NaN.
type DistanceMeter[O, D any] interface {
	Distance(origin O, destination D) float64
}

// DistanceMeterFunc adapts a plain function.
type DistanceMeterFunc[O, D any] func(origin O, destination D) float64

// Distance implements DistanceMeter.
func (f DistanceMeterFunc[O, D]) Distance(origin O, destination D) float64 {
	return f(origin, destination)
}

// EuclideanMeter is the L2 distance between coordinate vectors.
// Both projections must return vectors of the same length.
type EuclideanMeter[O, D any] struct {
	Origin      func(O) []float64
	Destination func(D) []float64
}

// Distance implements DistanceMeter.
func (m EuclideanMeter[O, D]) Distance(origin O, destination D) float64 {
	return floats.Distance(m.Origin(origin), m.Destination(destination), 2)
}

// MatrixMeter looks distances up in a precomputed matrix, e.g. road
// distances. Row and Col map domain objects to matrix indices.
type MatrixMeter[O, D any] struct {
	Matrix *mat.Dense
	Row    func(O) int
	Col    func(D) int
}

// Distance implements DistanceMeter.
func (m MatrixMeter[O, D]) Distance(origin O, destination D) float64 {
	return m.Matrix.At(m.Row(origin), m.Col(destination))
}
