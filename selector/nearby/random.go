// SPDX-License-Identifier: MIT

package nearby

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mathext"
)

// Random draws a neighbor index in [0, nearbySize), biased toward 0.
// nearbySize must be positive.
type Random interface {
	NextInt(r *rand.Rand, nearbySize int) int

	// OverallSizeMaximum bounds the indices that can ever be drawn;
	// math.MaxInt when any index can be.
	OverallSizeMaximum() int
}

func validateUniform(p float64) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return fmt.Errorf("%w: uniform probability %v not in [0,1]", ErrConfiguration, p)
	}

	return nil
}

// uniformDraw mixes in a uniform pick over the whole list with probability p.
func uniformDraw(r *rand.Rand, p float64, nearbySize int) (int, bool) {
	if p > 0 && r.Float64() < p {
		return r.Intn(nearbySize), true
	}

	return 0, false
}

// -----------------------------------------------------------------------------
// Block
// -----------------------------------------------------------------------------

// BlockDistribution draws uniformly among the nearest block of the list.
// The block is SizeRatio of the list, clamped to [SizeMinimum, nearbySize]
// and capped at SizeMaximum.
type BlockDistribution struct {
	SizeMinimum        int
	SizeMaximum        int
	SizeRatio          float64
	UniformProbability float64
}

// NewBlockDistribution validates the parameters.
func NewBlockDistribution(sizeMin, sizeMax int, ratio, uniform float64) (BlockDistribution, error) {
	if sizeMin < 1 {
		return BlockDistribution{}, fmt.Errorf("%w: block size minimum %d < 1", ErrConfiguration, sizeMin)
	}
	if sizeMax < sizeMin {
		return BlockDistribution{}, fmt.Errorf("%w: block size maximum %d < minimum %d", ErrConfiguration, sizeMax, sizeMin)
	}
	if ratio < 0 || ratio > 1 || math.IsNaN(ratio) {
		return BlockDistribution{}, fmt.Errorf("%w: block size ratio %v not in [0,1]", ErrConfiguration, ratio)
	}
	if err := validateUniform(uniform); err != nil {
		return BlockDistribution{}, err
	}

	return BlockDistribution{SizeMinimum: sizeMin, SizeMaximum: sizeMax, SizeRatio: ratio, UniformProbability: uniform}, nil
}

// NextInt implements Random.
func (d BlockDistribution) NextInt(r *rand.Rand, nearbySize int) int {
	if i, ok := uniformDraw(r, d.UniformProbability, nearbySize); ok {
		return i
	}
	size := nearbySize
	if d.SizeRatio < 1 {
		size = int(float64(nearbySize) * d.SizeRatio)
		if size < d.SizeMinimum {
			size = min(d.SizeMinimum, nearbySize)
		}
	}
	size = min(size, d.SizeMaximum)

	return r.Intn(size)
}

// OverallSizeMaximum implements Random.
func (d BlockDistribution) OverallSizeMaximum() int {
	if d.UniformProbability > 0 {
		return math.MaxInt
	}

	return d.SizeMaximum
}

// -----------------------------------------------------------------------------
// Linear and parabolic
// -----------------------------------------------------------------------------

// LinearDistribution has a density falling linearly from the nearest index
// to zero at min(SizeMaximum, nearbySize).
type LinearDistribution struct {
	SizeMaximum        int
	UniformProbability float64
}

// NewLinearDistribution validates the parameters.
func NewLinearDistribution(sizeMax int, uniform float64) (LinearDistribution, error) {
	if sizeMax < 1 {
		return LinearDistribution{}, fmt.Errorf("%w: linear size maximum %d < 1", ErrConfiguration, sizeMax)
	}
	if err := validateUniform(uniform); err != nil {
		return LinearDistribution{}, err
	}

	return LinearDistribution{SizeMaximum: sizeMax, UniformProbability: uniform}, nil
}

// NextInt implements Random. Inverse CDF: x = m(1 − √(1−p)).
func (d LinearDistribution) NextInt(r *rand.Rand, nearbySize int) int {
	if i, ok := uniformDraw(r, d.UniformProbability, nearbySize); ok {
		return i
	}
	m := min(d.SizeMaximum, nearbySize)
	x := float64(m) * (1 - math.Sqrt(1-r.Float64()))

	return clampIndex(x, m)
}

// OverallSizeMaximum implements Random.
func (d LinearDistribution) OverallSizeMaximum() int {
	if d.UniformProbability > 0 {
		return math.MaxInt
	}

	return d.SizeMaximum
}

// ParabolicDistribution has a density falling quadratically from the nearest
// index to zero at min(SizeMaximum, nearbySize).
type ParabolicDistribution struct {
	SizeMaximum        int
	UniformProbability float64
}

// NewParabolicDistribution validates the parameters.
func NewParabolicDistribution(sizeMax int, uniform float64) (ParabolicDistribution, error) {
	if sizeMax < 1 {
		return ParabolicDistribution{}, fmt.Errorf("%w: parabolic size maximum %d < 1", ErrConfiguration, sizeMax)
	}
	if err := validateUniform(uniform); err != nil {
		return ParabolicDistribution{}, err
	}

	return ParabolicDistribution{SizeMaximum: sizeMax, UniformProbability: uniform}, nil
}

// NextInt implements Random. Inverse CDF: x = m(1 − ∛(1−p)).
func (d ParabolicDistribution) NextInt(r *rand.Rand, nearbySize int) int {
	if i, ok := uniformDraw(r, d.UniformProbability, nearbySize); ok {
		return i
	}
	m := min(d.SizeMaximum, nearbySize)
	x := float64(m) * (1 - math.Cbrt(1-r.Float64()))

	return clampIndex(x, m)
}

// OverallSizeMaximum implements Random.
func (d ParabolicDistribution) OverallSizeMaximum() int {
	if d.UniformProbability > 0 {
		return math.MaxInt
	}

	return d.SizeMaximum
}

// -----------------------------------------------------------------------------
// Beta
// -----------------------------------------------------------------------------

// BetaDistribution scales a Beta(Alpha, Beta) variate over the whole list.
// Alpha < Beta skews toward the nearest values.
type BetaDistribution struct {
	Alpha              float64
	Beta               float64
	UniformProbability float64
}

// NewBetaDistribution validates the parameters.
func NewBetaDistribution(alpha, beta, uniform float64) (BetaDistribution, error) {
	if !(alpha > 0) || !(beta > 0) {
		return BetaDistribution{}, fmt.Errorf("%w: beta parameters (%v, %v) must be positive", ErrConfiguration, alpha, beta)
	}
	if err := validateUniform(uniform); err != nil {
		return BetaDistribution{}, err
	}

	return BetaDistribution{Alpha: alpha, Beta: beta, UniformProbability: uniform}, nil
}

// NextInt implements Random.
func (d BetaDistribution) NextInt(r *rand.Rand, nearbySize int) int {
	if i, ok := uniformDraw(r, d.UniformProbability, nearbySize); ok {
		return i
	}
	x := mathext.InvRegIncBeta(d.Alpha, d.Beta, r.Float64())

	return clampIndex(x*float64(nearbySize), nearbySize)
}

// OverallSizeMaximum implements Random.
func (d BetaDistribution) OverallSizeMaximum() int { return math.MaxInt }

// clampIndex truncates x into [0, m).
func clampIndex(x float64, m int) int {
	i := int(x)
	if i >= m {
		i = m - 1
	}
	if i < 0 {
		i = 0
	}

	return i
}
