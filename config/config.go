// SPDX-License-Identifier: MIT

// Package config loads solver configuration from YAML and turns it into the
// typed options of the forager, localsearch and nearby packages.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvplan/forager"
	"github.com/katalvlaran/lvplan/localsearch"
	"github.com/katalvlaran/lvplan/score"
	"github.com/katalvlaran/lvplan/selector/nearby"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	// ErrInvalid wraps every semantic error found after parsing.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownDistribution is returned for an unrecognized nearby.distribution.
	ErrUnknownDistribution = fmt.Errorf("%w: unknown nearby distribution", ErrInvalid)
)

// Config holds all solver configuration parameters.
type Config struct {
	Solver      SolverConfig      `yaml:"solver"`
	LocalSearch LocalSearchConfig `yaml:"local_search"`
	Nearby      NearbyConfig      `yaml:"nearby"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// SolverConfig holds run-wide settings.
type SolverConfig struct {
	Seed      int64  `yaml:"seed"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// LocalSearchConfig mirrors localsearch.Options.
type LocalSearchConfig struct {
	Acceptor           string            `yaml:"acceptor"`
	LateAcceptanceSize int               `yaml:"late_acceptance_size"`
	MaxMovesPerStep    int               `yaml:"max_moves_per_step"`
	DiscardScoreErrors bool              `yaml:"discard_score_errors"`
	RandomSelection    bool              `yaml:"random_selection"` // entity and move order
	Forager            ForagerConfig     `yaml:"forager"`
	Termination        TerminationConfig `yaml:"termination"`
}

// ForagerConfig mirrors forager.Options.
type ForagerConfig struct {
	PickEarlyType      string `yaml:"pick_early_type"`
	AcceptedCountLimit int    `yaml:"accepted_count_limit"`
	TieBreak           string `yaml:"tie_break"`
	TopListSize        int    `yaml:"top_list_size"`
}

// TerminationConfig mirrors localsearch.Termination. Durations and scores are
// kept as text and parsed into Derived.
type TerminationConfig struct {
	StepCountLimit           int    `yaml:"step_count_limit"`
	UnimprovedStepCountLimit int    `yaml:"unimproved_step_count_limit"`
	TimeLimit                string `yaml:"time_limit"`
	BestScoreLimit           string `yaml:"best_score_limit"`
}

// NearbyConfig configures nearby value selection.
type NearbyConfig struct {
	Enabled            bool    `yaml:"enabled"`
	RandomSelection    bool    `yaml:"random_selection"`
	ExcludeSelf        bool    `yaml:"exclude_self"`
	Distribution       string  `yaml:"distribution"`
	UniformProbability float64 `yaml:"uniform_probability"`

	Block struct {
		SizeMinimum int     `yaml:"size_minimum"`
		SizeMaximum int     `yaml:"size_maximum"`
		SizeRatio   float64 `yaml:"size_ratio"`
	} `yaml:"block"`
	Linear struct {
		SizeMaximum int `yaml:"size_maximum"`
	} `yaml:"linear"`
	Parabolic struct {
		SizeMaximum int `yaml:"size_maximum"`
	} `yaml:"parabolic"`
	Beta struct {
		Alpha float64 `yaml:"alpha"`
		Beta  float64 `yaml:"beta"`
	} `yaml:"beta"`
}

// TelemetryConfig holds step export settings.
type TelemetryConfig struct {
	CSVPath string `yaml:"csv_path"` // empty disables the export
}

// DerivedConfig holds values parsed from the textual fields.
type DerivedConfig struct {
	TimeLimit      time.Duration
	BestScoreLimit score.Score
	Acceptor       localsearch.AcceptorType
	PickEarly      forager.PickEarlyType
	TieBreak       forager.TieBreak
	NearbyRandom   nearby.Random // nil unless Nearby.RandomSelection
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	return Parse(nil)
}

// Load reads the embedded defaults, then overlays the file at path. An empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse overlays data on the embedded defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Unmarshal into same struct - only overwrites fields present in data
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived parses the textual fields and builds the nearby distribution.
func (c *Config) computeDerived() error {
	var (
		d   DerivedConfig
		err error
	)
	t := c.LocalSearch.Termination
	if s := strings.TrimSpace(t.TimeLimit); s != "" {
		if d.TimeLimit, err = time.ParseDuration(s); err != nil {
			return fmt.Errorf("%w: local_search.termination.time_limit: %w", ErrInvalid, err)
		}
		if d.TimeLimit < 0 {
			return fmt.Errorf("%w: local_search.termination.time_limit is negative", ErrInvalid)
		}
	}
	if strings.TrimSpace(t.BestScoreLimit) != "" {
		if d.BestScoreLimit, err = score.Parse(t.BestScoreLimit); err != nil {
			return fmt.Errorf("%w: local_search.termination.best_score_limit: %w", ErrInvalid, err)
		}
	}
	if d.Acceptor, err = localsearch.ParseAcceptorType(c.LocalSearch.Acceptor); err != nil {
		return fmt.Errorf("%w: local_search.acceptor: %w", ErrInvalid, err)
	}
	if d.PickEarly, err = forager.ParsePickEarlyType(c.LocalSearch.Forager.PickEarlyType); err != nil {
		return fmt.Errorf("%w: local_search.forager.pick_early_type: %w", ErrInvalid, err)
	}
	if d.TieBreak, err = forager.ParseTieBreak(c.LocalSearch.Forager.TieBreak); err != nil {
		return fmt.Errorf("%w: local_search.forager.tie_break: %w", ErrInvalid, err)
	}
	if c.Nearby.RandomSelection {
		if d.NearbyRandom, err = c.buildNearbyRandom(); err != nil {
			return fmt.Errorf("%w: nearby: %w", ErrInvalid, err)
		}
	}
	c.Derived = d

	return nil
}

func (c *Config) buildNearbyRandom() (nearby.Random, error) {
	var (
		n   = c.Nearby
		r   nearby.Random
		err error
	)
	switch strings.ToUpper(strings.TrimSpace(n.Distribution)) {
	case "BLOCK":
		r, err = nearby.NewBlockDistribution(n.Block.SizeMinimum, n.Block.SizeMaximum, n.Block.SizeRatio, n.UniformProbability)
	case "LINEAR":
		r, err = nearby.NewLinearDistribution(n.Linear.SizeMaximum, n.UniformProbability)
	case "PARABOLIC":
		r, err = nearby.NewParabolicDistribution(n.Parabolic.SizeMaximum, n.UniformProbability)
	case "BETA":
		r, err = nearby.NewBetaDistribution(n.Beta.Alpha, n.Beta.Beta, n.UniformProbability)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, n.Distribution)
	}
	if err != nil {
		return nil, err
	}

	return r, nil
}

// ForagerOptions builds forager.Options.
func (c *Config) ForagerOptions() forager.Options {
	fo := forager.DefaultOptions()
	fo.PickEarly = c.Derived.PickEarly
	fo.AcceptedCountLimit = c.LocalSearch.Forager.AcceptedCountLimit
	fo.TieBreak = c.Derived.TieBreak
	fo.TopListSize = c.LocalSearch.Forager.TopListSize

	return fo
}

// LocalSearchOptions builds localsearch.Options logging to l. Listeners and
// OnBestSolution are left for the caller.
func (c *Config) LocalSearchOptions(l zerolog.Logger) localsearch.Options {
	ls := c.LocalSearch
	opts := localsearch.DefaultOptions()
	opts.Seed = c.Solver.Seed
	opts.Acceptor = c.Derived.Acceptor
	opts.LateAcceptanceSize = ls.LateAcceptanceSize
	opts.Forager = c.ForagerOptions()
	opts.MaxMovesPerStep = ls.MaxMovesPerStep
	opts.DiscardScoreErrors = ls.DiscardScoreErrors
	opts.Termination = localsearch.Termination{
		StepCountLimit:           ls.Termination.StepCountLimit,
		UnimprovedStepCountLimit: ls.Termination.UnimprovedStepCountLimit,
		TimeLimit:                c.Derived.TimeLimit,
		BestScoreLimit:           c.Derived.BestScoreLimit,
	}
	opts.Logger = l

	return opts
}

// NearbyOptions builds nearby.Options logging to l.
func (c *Config) NearbyOptions(l zerolog.Logger) nearby.Options {
	opts := nearby.DefaultOptions()
	opts.RandomSelection = c.Nearby.RandomSelection
	opts.Random = c.Derived.NearbyRandom
	opts.ExcludeSelf = c.Nearby.ExcludeSelf
	opts.Logger = l

	return opts
}

// WriteYAML writes the configuration (without derived values) to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
