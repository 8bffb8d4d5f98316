// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gpt-4o").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the API endpoint for OpenAI-compatible gateways.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Temperature is the sampling temperature (default 0).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// Timeout bounds each individual API call (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// GenerationConfig holds settings for the copy-generation stage.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	// Tone selects the writing voice: formal, friendly, luxury, or
	// investor-focused (default formal).
	Tone string `json:"tone" yaml:"tone"`

	// MaxHistory is the number of trailing conversation turns sent to the
	// model (default 5). The full history is retained for auditing; only
	// this window reaches the API.
	MaxHistory int `json:"max_history" yaml:"max_history"`
}

// FactCheckConfig holds settings for the consistency-check stage. The check
// is best effort: call failures degrade to a neutral score, never a
// pipeline failure.
type FactCheckConfig struct {
	AIConfig `yaml:",inline"`

	// Enabled selects the remote checker; when false a neutral fallback
	// is used and no API calls are made.
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// PenaltyConfig holds the deduction magnitudes shared by all scorers. One
// PenaltyConfig instance is used across the whole run so deductions stay
// comparable between categories.
type PenaltyConfig struct {
	// Issue is deducted per hard failure (default 0.3).
	Issue float64 `json:"issue" yaml:"issue"`

	// Warning is deducted per ordinary warning (default 0.1).
	Warning float64 `json:"warning" yaml:"warning"`

	// MajorWarning is deducted for the heavier soft findings, e.g. a
	// feature count outside range or high repetition (default 0.2).
	MajorWarning float64 `json:"major_warning" yaml:"major_warning"`
}

// ScoringConfig holds settings for the quality gate.
type ScoringConfig struct {
	// Penalties are the shared deduction magnitudes.
	Penalties PenaltyConfig `json:"penalties" yaml:"penalties"`

	// Weights maps category name to aggregation weight. Weights must sum
	// to 1.0; the default is 0.25 per category.
	Weights map[string]float64 `json:"weights" yaml:"weights"`

	// PassThreshold is the minimum overall score for acceptance
	// (default 0.7). Issues block acceptance regardless of score.
	PassThreshold float64 `json:"pass_threshold" yaml:"pass_threshold"`
}

// RunnerConfig holds settings for the retry loop.
type RunnerConfig struct {
	// MaxRetries bounds regeneration attempts (default 5). Hard
	// generation failures consume the same budget as quality-driven
	// revisions, so the loop always terminates within MaxRetries+1
	// generation calls.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// RunLogConfig holds settings for run-history persistence.
type RunLogConfig struct {
	// Dir is the directory holding the run-log database (contains runs.db).
	Dir string `json:"dir" yaml:"dir"`
}

// ServerConfig holds settings for the HTTP shell.
type ServerConfig struct {
	// Addr is the listen address (default ":8001").
	Addr string `json:"addr" yaml:"addr"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	FactCheck  FactCheckConfig  `json:"fact_check" yaml:"fact_check"`
	Scoring    ScoringConfig    `json:"scoring" yaml:"scoring"`
	Runner     RunnerConfig     `json:"runner" yaml:"runner"`
	RunLog     RunLogConfig     `json:"run_log" yaml:"run_log"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}

// DefaultPenalties returns the standard deduction magnitudes.
func DefaultPenalties() PenaltyConfig {
	return PenaltyConfig{Issue: 0.3, Warning: 0.1, MajorWarning: 0.2}
}

// DefaultScoring returns the standard gate configuration: equal category
// weights and a 0.7 acceptance threshold.
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		Penalties: DefaultPenalties(),
		Weights: map[string]float64{
			CategoryStructural:  0.25,
			CategoryLinguistic:  0.25,
			CategoryRelevance:   0.25,
			CategoryConsistency: 0.25,
		},
		PassThreshold: 0.7,
	}
}

// DefaultConfig returns the full pipeline configuration with defaults
// applied. Callers overlay file and environment settings on top.
func DefaultConfig() PipelineConfig {
	return PipelineConfig{
		Generation: GenerationConfig{
			AIConfig:   AIConfig{Model: "gpt-4o", Timeout: 60 * time.Second},
			Tone:       "formal",
			MaxHistory: 5,
		},
		FactCheck: FactCheckConfig{
			AIConfig: AIConfig{Model: "gpt-4o", Timeout: 30 * time.Second},
			Enabled:  true,
		},
		Scoring: DefaultScoring(),
		Runner:  RunnerConfig{MaxRetries: 5},
		RunLog:  RunLogConfig{Dir: "runlog"},
		Server:  ServerConfig{Addr: ":8001"},
	}
}
