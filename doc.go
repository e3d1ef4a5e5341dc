// Package lvplan is a move-selection and acceptance engine for local search
// over planning problems: entities carry planning variables, moves change
// them, and a score says how good the working solution is.
//
// What is inside?
//
//	• Scores: simple, hard/soft and hard/medium/soft with a natural order
//	• Domain arena: entities addressed by stable EntityID, typed variables
//	• Selectors: entity, value and change-move selection, original or random
//	• Mimic selection: replay the entity a move selector just picked
//	• Nearby selection: values sorted by distance, with biased random draws
//	• Forager: per-step candidate collection, pick-early, top lists
//	• Local search: hill climbing and late acceptance with terminations
//	• Config, telemetry and a facility-location example wiring it all
//
// Packages:
//
//	score/            - Score interface, variants, parsing, comparators
//	domain/           - Arena and Variable
//	move/             - Move and ChangeMove
//	scope/            - solver, phase, step and move scopes; lifecycle; random
//	director/         - score directors (easy: full recalculation)
//	selector/         - Selection, entity/value/move selectors, mimic
//	selector/nearby/  - nearby value selection, distance meters, distributions
//	forager/          - AcceptedForager
//	localsearch/      - acceptors, decider, phase, Solve
//	config/           - YAML configuration into typed options
//	telemetry/        - per-step CSV export
//	facility/         - facility-location problem
//
// Quick flow of one step:
//
//	move selector ──► director.ScoreMove ──► acceptor ──► forager.AddMove
//	      ▲                                                   │
//	      └──────────── until quit early or exhausted ◄───────┘
//	forager.PickMove ──► director.ApplyMove ──► StepEnded listeners
//
//	go get github.com/katalvlaran/lvplan
package lvplan
