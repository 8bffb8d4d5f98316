// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"context"
	"fmt"
	"sync"

	"github.com/pdiddy/listing-engine/internal/factcheck"
	"github.com/pdiddy/listing-engine/pkg/types"
)

// Gate aggregates the four scorers into one pass/fail verdict.
type Gate struct {
	rules   *RuleSet
	checker factcheck.Checker
	cfg     types.ScoringConfig
}

// NewGate builds a gate. A nil checker selects the neutral fallback.
func NewGate(rules *RuleSet, checker factcheck.Checker, cfg types.ScoringConfig) *Gate {
	if checker == nil {
		checker = factcheck.Neutral{}
	}
	return &Gate{rules: rules, checker: checker, cfg: cfg}
}

// Evaluate scores the copy and returns the aggregated verdict. A missing
// copy or a recorded generation error short-circuits to a zero-score
// failing verdict without invoking any scorer. An unexpected panic inside a
// scorer is contained the same way: the loop must always receive a valid
// verdict.
func (g *Gate) Evaluate(ctx context.Context, c *types.ListingCopy, rec types.InputRecord, genErr string) types.Verdict {
	if genErr != "" {
		return failedVerdict("Generation error: " + genErr)
	}
	if c == nil {
		return failedVerdict("No structured copy to validate")
	}

	lang := rec.Language()

	// The scorers share no mutable state, so they fan out concurrently
	// and join before aggregation.
	reports := make([]types.ScoreReport, len(types.Categories))
	panics := make(chan error, len(types.Categories))
	var wg sync.WaitGroup

	run := func(i int, score func() types.ScoreReport) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panics <- fmt.Errorf("%s scorer: %v", types.Categories[i], r)
				}
			}()
			reports[i] = score()
		}()
	}

	run(0, func() types.ScoreReport { return Structural(c, g.cfg.Penalties) })
	run(1, func() types.ScoreReport { return Linguistic(c, g.rules, lang, g.cfg.Penalties) })
	run(2, func() types.ScoreReport { return Relevance(c, rec, g.rules, lang, g.cfg.Penalties) })
	run(3, func() types.ScoreReport { return Consistency(ctx, g.checker, c, rec, g.cfg.Penalties) })

	wg.Wait()
	close(panics)
	if err := <-panics; err != nil {
		return failedVerdict("Validation error: " + err.Error())
	}

	verdict := types.Verdict{
		CategoryScores: make(map[string]float64, len(reports)),
	}
	for _, r := range reports {
		verdict.Issues = append(verdict.Issues, r.Issues...)
		verdict.Warnings = append(verdict.Warnings, r.Warnings...)
		verdict.CategoryScores[r.Category] = r.Score
		verdict.Score += g.cfg.Weights[r.Category] * r.Score
	}
	verdict.Passed = verdict.Score >= g.cfg.PassThreshold && len(verdict.Issues) == 0

	return verdict
}

// failedVerdict is the zero-score verdict carrying a single issue. Used for
// generation failures, missing copy, and contained scorer panics.
func failedVerdict(issue string) types.Verdict {
	return types.Verdict{
		Passed: false,
		Score:  0.0,
		Issues: []string{issue},
	}
}
