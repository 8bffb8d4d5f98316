// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/pdiddy/listing-engine/internal/factcheck"
	"github.com/pdiddy/listing-engine/internal/generate"
	"github.com/pdiddy/listing-engine/internal/pipeline"
	"github.com/pdiddy/listing-engine/internal/quality"
	"github.com/pdiddy/listing-engine/internal/secrets"
	"github.com/pdiddy/listing-engine/pkg/types"
)

// loadConfig overlays file and environment settings onto the defaults, then
// resolves API keys from config, .secrets/, or the environment, in that
// order.
func loadConfig() types.PipelineConfig {
	cfg := types.DefaultConfig()

	if v := viper.GetString("generation.model"); v != "" {
		cfg.Generation.Model = v
	}
	if v := viper.GetString("generation.base_url"); v != "" {
		cfg.Generation.BaseURL = v
	}
	if v := viper.GetString("generation.tone"); v != "" {
		cfg.Generation.Tone = v
	}
	if viper.IsSet("generation.temperature") {
		cfg.Generation.Temperature = viper.GetFloat64("generation.temperature")
	}
	if viper.IsSet("generation.max_history") {
		cfg.Generation.MaxHistory = viper.GetInt("generation.max_history")
	}
	if viper.IsSet("generation.timeout") {
		cfg.Generation.Timeout = viper.GetDuration("generation.timeout")
	}

	if v := viper.GetString("fact_check.model"); v != "" {
		cfg.FactCheck.Model = v
	}
	if v := viper.GetString("fact_check.base_url"); v != "" {
		cfg.FactCheck.BaseURL = v
	}
	if viper.IsSet("fact_check.enabled") {
		cfg.FactCheck.Enabled = viper.GetBool("fact_check.enabled")
	}
	if viper.IsSet("fact_check.timeout") {
		cfg.FactCheck.Timeout = viper.GetDuration("fact_check.timeout")
	}

	if viper.IsSet("scoring.pass_threshold") {
		cfg.Scoring.PassThreshold = viper.GetFloat64("scoring.pass_threshold")
	}
	if viper.IsSet("runner.max_retries") {
		cfg.Runner.MaxRetries = viper.GetInt("runner.max_retries")
	}
	if v := viper.GetString("run_log.dir"); v != "" {
		cfg.RunLog.Dir = v
	}
	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}

	cfg.Generation.APIKey = firstNonEmpty(
		viper.GetString("generation.api_key"),
		loadedSecrets[secrets.KeyOpenAI],
	)
	cfg.FactCheck.APIKey = firstNonEmpty(
		viper.GetString("fact_check.api_key"),
		loadedSecrets[secrets.KeyFactCheck],
		cfg.Generation.APIKey,
	)

	return cfg
}

// loadRules loads the language rule sets, honoring an optional override
// directory from config.
func loadRules() (*quality.RuleSet, error) {
	if dir := viper.GetString("scoring.rules_dir"); dir != "" {
		return quality.LoadRules(dir)
	}
	return quality.DefaultRules()
}

// buildGate assembles the quality gate from config: rule sets plus either
// the remote fact checker or the neutral fallback.
func buildGate(cfg types.PipelineConfig) (*quality.Gate, error) {
	rules, err := loadRules()
	if err != nil {
		return nil, err
	}

	var checker factcheck.Checker = factcheck.Neutral{}
	if cfg.FactCheck.Enabled && cfg.FactCheck.APIKey != "" {
		remote, err := factcheck.NewOpenAIChecker(cfg.FactCheck)
		if err != nil {
			return nil, fmt.Errorf("building fact checker: %w", err)
		}
		checker = remote
	}

	return quality.NewGate(rules, checker, cfg.Scoring), nil
}

// buildRunner assembles the full pipeline runner. Progress lines go to w.
func buildRunner(cfg types.PipelineConfig, w io.Writer) (*pipeline.Runner, error) {
	composer, err := generate.NewOpenAIComposer(cfg.Generation)
	if err != nil {
		return nil, fmt.Errorf("building composer: %w", err)
	}
	gate, err := buildGate(cfg)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(composer, gate, cfg.Runner, cfg.Generation.MaxHistory, w), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
