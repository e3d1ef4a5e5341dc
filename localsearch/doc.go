// SPDX-License-Identifier: MIT

// Package localsearch runs the step loop of a local search phase: generate
// candidate moves, score them through a score director, let an acceptor and
// a forager decide the winner, apply it, repeat until a termination fires.
//
// Step:
//
//	forager.BeforeDeciding
//	for each candidate m of the move selector:
//	    skip m if not doable
//	    score m via director.Evaluate (score errors: discard or abort)
//	    acceptor verdict → forager.AddMove
//	    stop when forager.IsQuitEarly, MaxMovesPerStep is reached or ctx is done
//	forager.PickMove → director.ApplyMove → best score bookkeeping
//
// Acceptors:
//   - HillClimbing   – accepts scores not worse than the last step score.
//   - LateAcceptance – additionally accepts scores not worse than the score of
//     LateAcceptanceSize steps ago.
//
// Termination (at least one limit required): step count, unimproved step
// count, wall-clock time, best score reached. Cancellation of ctx stops the
// phase between candidates; the result so far is returned with ctx.Err().
//
// A step without any accepted candidate ends the phase with ReasonNoMoves.
//
// Determinism: with a fixed Seed, a deterministic move selector and a
// deterministic score calculation, two runs produce the same steps (time
// limits aside).
package localsearch
