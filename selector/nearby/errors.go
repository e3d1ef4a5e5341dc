// SPDX-License-Identifier: MIT

package nearby

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvplan/domain"
)

var (
	// ErrConfiguration is the class of invalid nearby constructions.
	ErrConfiguration = errors.New("nearby: invalid configuration")

	// ErrMissingRandom is returned when random selection is requested without a Random.
	ErrMissingRandom = fmt.Errorf("%w: random selection requires a nearby random", ErrConfiguration)

	// ErrIncompatibleTypes is returned when the origin entity type is not
	// assignable to the child's value type.
	ErrIncompatibleTypes = fmt.Errorf("%w: origin entity type is not assignable to the value type", ErrConfiguration)

	// ErrCapacity is returned when a count exceeds the addressable index range.
	ErrCapacity = errors.New("nearby: selection exceeds the index capacity")

	// ErrDistance is wrapped by DistanceError.
	ErrDistance = errors.New("nearby: distance is not ordered")
)

// panicOutsidePhase is raised when a selector is iterated without a cache.
const panicOutsidePhase = "nearby: selector used outside a phase"

// DistanceError reports a NaN distance met while building the cache.
type DistanceError struct {
	Origin   domain.EntityID
	Index    int // position of the value in the child's ending iteration
	Distance float64
}

func (e DistanceError) Error() string {
	return fmt.Sprintf("nearby: distance from origin %d to value #%d is %v", e.Origin, e.Index, e.Distance)
}

// Unwrap lets errors.Is match ErrDistance.
func (e DistanceError) Unwrap() error { return ErrDistance }
