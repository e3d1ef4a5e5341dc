// SPDX-License-Identifier: MIT

// Package facility is a small facility-location problem solved with the
// lvplan engine end to end.
//
// What:
//
//	Every Point picks a Leader among all points. A point leading itself is an
//	open facility and pays its OpeningCost; every other point pays the
//	distance to its leader: straight-line by default, shortest road distance
//	after UseRoads.
//
// Score (score.HardSoftScore):
//
//	hard = −(points whose leader does not lead itself)
//	soft = −round(1000 · (Σ distance to leader + Σ opening cost of facilities))
//
// Solve wires the configured entity selection, a mimic origin, nearby value
// selection over the leader range, change moves, an easy score director,
// local search and step telemetry. The best solution seen is restored into
// the points before Solve returns.
//
// Complexity:
//
//	Score is O(n); nearby caches take O(n² log n) per phase.
package facility
