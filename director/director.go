// SPDX-License-Identifier: MIT

// Package director is the boundary between the search engine and the score
// model. The engine never inspects constraints: it hands a move to a
// ScoreDirector and receives a comparable Score back.
//
// EasyScoreDirector is the simplest implementation: it recalculates the whole
// solution through a user Calculator after doing a move, then undoes it.
// Incremental directors can implement the same interface.
package director

import (
	"errors"

	"github.com/katalvlaran/lvplan/move"
	"github.com/katalvlaran/lvplan/score"
)

var (
	// ErrNilMove is returned when a nil move is scored or applied.
	ErrNilMove = errors.New("director: move is nil")

	// ErrMoveNotDoable is returned when a move that would not change the
	// solution is scored or applied.
	ErrMoveNotDoable = errors.New("director: move is not doable")

	// ErrNilCalculator is returned by NewEasy when no calculator is supplied.
	ErrNilCalculator = errors.New("director: score calculator is nil")
)

// ScoreDirector scores candidate moves against the working solution.
type ScoreDirector interface {
	// CalculateScore returns the score of the working solution as it is now.
	CalculateScore() (score.Score, error)

	// ScoreMove evaluates m and leaves the working solution unchanged.
	ScoreMove(m move.Move) (score.Score, error)

	// ApplyMove applies m permanently and returns the new working score.
	ApplyMove(m move.Move) (score.Score, error)
}

// Evaluate scores m and reports feasibility alongside the score.
func Evaluate(d ScoreDirector, m move.Move) (score.Score, bool, error) {
	s, err := d.ScoreMove(m)
	if err != nil {
		return nil, false, err
	}

	return s, s.IsFeasible(), nil
}

// Calculator computes the score of the whole working solution.
type Calculator func() score.Score

// EasyScoreDirector recalculates the full score for every evaluation.
type EasyScoreDirector struct {
	calc  Calculator
	count int64
}

// NewEasy returns an EasyScoreDirector over calc.
func NewEasy(calc Calculator) (*EasyScoreDirector, error) {
	if calc == nil {
		return nil, ErrNilCalculator
	}

	return &EasyScoreDirector{calc: calc}, nil
}

// CalculateScore implements ScoreDirector.
func (d *EasyScoreDirector) CalculateScore() (score.Score, error) {
	d.count++

	return d.calc(), nil
}

// ScoreMove implements ScoreDirector: do, calculate, undo.
func (d *EasyScoreDirector) ScoreMove(m move.Move) (score.Score, error) {
	if err := checkMove(m); err != nil {
		return nil, err
	}
	undo := m.Do()
	s, _ := d.CalculateScore()
	undo.Do()

	return s, nil
}

// ApplyMove implements ScoreDirector.
func (d *EasyScoreDirector) ApplyMove(m move.Move) (score.Score, error) {
	if err := checkMove(m); err != nil {
		return nil, err
	}
	m.Do()

	return d.CalculateScore()
}

// CalculationCount returns how many full score calculations ran.
func (d *EasyScoreDirector) CalculationCount() int64 { return d.count }

func checkMove(m move.Move) error {
	if m == nil {
		return ErrNilMove
	}
	if !m.IsDoable() {
		return ErrMoveNotDoable
	}

	return nil
}
