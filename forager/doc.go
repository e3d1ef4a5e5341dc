// SPDX-License-Identifier: MIT

// Package forager collects the scored candidate moves of one step and picks
// the move the step applies.
//
// What:
//
//	AcceptedForager keeps the accepted candidates of a step in a ranked top
//	list, tracks the highest-scored ones, and raises a quit-early signal when
//	further candidate generation is pointless:
//	  • PickEarlyType FirstBestScoreImproving     – a candidate beats the best score.
//	  • PickEarlyType FirstLastStepScoreImproving – a candidate beats the last step score.
//	  • AcceptedCountLimit                        – enough candidates were accepted.
//
// Step protocol:
//
//	PhaseStarted → (BeforeDeciding → AddMove… [IsQuitEarly after each] → PickMove)* → PhaseEnded
//
// Picking:
//   - A score-improving early pick wins outright, regardless of later candidates.
//   - Otherwise the highest accepted score wins; ties go to the earliest
//     inserted candidate. When AcceptedCountLimit is set, TieBreak selects
//     between that rule (TieFirst) and a uniform draw among the tied
//     candidates from the phase's working random (TieRandom).
//   - No accepted candidate ⇒ ErrEmptyCandidateSet.
//
// Top list:
//
//	TopList(n) returns up to n accepted moves, best first, ties in insertion
//	order. TopListSize bounds the retained list (0 ⇒ unbounded).
//
// Complexity:
//   - AddMove: O(k) for a top list of k entries (insertion into a sorted slice).
//   - PickMove, IsQuitEarly: O(1) (O(t) for a random tie-break among t ties).
//
// Concurrency:
//   - Not safe for concurrent use; each parallel search owns its forager.
package forager
