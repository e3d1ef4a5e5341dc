// SPDX-License-Identifier: MIT

// Package telemetry records one row per local search step and exports the
// rows as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/lvplan/scope"
)

// StepRecord is one completed step.
type StepRecord struct {
	Phase        int     `csv:"phase"`
	Step         int     `csv:"step"`
	Score        string  `csv:"score"`
	BestScore    string  `csv:"best_score"`
	Move         string  `csv:"move"`
	BestImproved bool    `csv:"best_improved"`
	ElapsedMs    float64 `csv:"elapsed_ms"`
}

// Recorder is a scope.PhaseLifecycleListener collecting a StepRecord on
// every StepEnded. A Recorder may span several phases; records accumulate.
type Recorder struct {
	records []StepRecord
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) PhaseStarted(*scope.PhaseScope) error { return nil }
func (r *Recorder) StepStarted(*scope.StepScope)         {}
func (r *Recorder) PhaseEnded(*scope.PhaseScope)         {}

// StepEnded appends the step. The best score is read after the step, so a
// step with BestImproved set has Score == BestScore.
func (r *Recorder) StepEnded(s *scope.StepScope) {
	rec := StepRecord{
		Phase:        s.Phase.PhaseIndex,
		Step:         s.Index,
		BestImproved: s.BestScoreImproved,
		ElapsedMs:    float64(s.Phase.Elapsed().Microseconds()) / 1000,
	}
	if s.Score != nil {
		rec.Score = s.Score.String()
	}
	if best := s.Phase.BestScore(); best != nil {
		rec.BestScore = best.String()
	}
	if s.Move != nil {
		rec.Move = s.Move.String()
	}
	r.records = append(r.records, rec)
}

// Records returns the collected rows. The slice is shared; do not modify it.
func (r *Recorder) Records() []StepRecord { return r.records }

// Improvements counts the steps that improved the best score.
func (r *Recorder) Improvements() int {
	var n int
	for _, rec := range r.records {
		if rec.BestImproved {
			n++
		}
	}

	return n
}

// Reset drops all records.
func (r *Recorder) Reset() {
	clear(r.records)
	r.records = r.records[:0]
}

// WriteCSV writes a header row followed by every record.
func (r *Recorder) WriteCSV(w io.Writer) error {
	records := r.records
	if records == nil {
		records = []StepRecord{}
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}

	return nil
}

// WriteFile writes the CSV to path, creating parent directories. An empty
// path disables the export.
func (r *Recorder) WriteFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	if err = r.WriteCSV(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
