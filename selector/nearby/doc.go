// SPDX-License-Identifier: MIT

// Package nearby biases value selection toward values close to an origin
// entity under a pluggable distance meter.
//
// What:
//
//	ValueSelector wraps a child value selector and an origin entity selector.
//	At phase start it materializes, for every origin of the origin's ending
//	iteration, the child's full value list sorted ascending by distance
//	(stable on ties, so equal distances keep the child's order). The arrays
//	are indexed by origin EntityID and are read-only until the phase ends.
//
// Iteration:
//   - Original: walk the origins; for each, yield its neighbors nearest
//     first, skipping index 0 (the origin itself) when ExcludeSelf is set.
//   - Random: for each drawn origin, draw one neighbor index from a Random
//     distribution biased toward small indices, offset by one when
//     ExcludeSelf is set. The selection never ends on its own.
//
// Distributions (Random):
//   - BlockDistribution     – uniform over the nearest block of a ratio of the size.
//   - LinearDistribution    – density decreasing linearly with the index.
//   - ParabolicDistribution – density decreasing quadratically with the index.
//   - BetaDistribution      – inverse CDF of a Beta(α, β) law (gonum mathext).
//
// Each may mix in a uniform draw over the whole list with probability
// UniformProbability.
//
// Errors:
//   - ErrConfiguration (wrapped) – nil collaborators, missing Random in
//     random mode, origin type not assignable to the value type, invalid
//     distribution parameters.
//   - ErrCapacity – an origin or child count exceeds the index limit.
//   - DistanceError (wraps ErrDistance) – the meter returned NaN.
//
// Complexity:
//   - Phase start: O(origins × values × log values) time, O(origins × values) memory.
//   - Each draw or step of iteration: O(1).
package nearby
