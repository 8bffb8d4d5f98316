// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"context"
	"strings"
	"testing"

	"github.com/pdiddy/listing-engine/internal/factcheck"
	"github.com/pdiddy/listing-engine/pkg/types"
)

func TestGateAcceptsCleanDocument(t *testing.T) {
	checker := &stubChecker{finding: factcheck.Finding{IsConsistent: true}}
	gate := NewGate(defaultRules(t), checker, types.DefaultScoring())

	verdict := gate.Evaluate(context.Background(), validCopy(), validRecord(), "")

	if !verdict.Passed {
		t.Fatalf("verdict not passed: issues=%v warnings=%v", verdict.Issues, verdict.Warnings)
	}
	if !approx(verdict.Score, 1.0) {
		t.Errorf("score = %v, want 1.0", verdict.Score)
	}
	if len(verdict.CategoryScores) != len(types.Categories) {
		t.Errorf("category scores = %v, want all %d categories", verdict.CategoryScores, len(types.Categories))
	}
	for _, cat := range types.Categories {
		if !approx(verdict.CategoryScores[cat], 1.0) {
			t.Errorf("category %s score = %v, want 1.0", cat, verdict.CategoryScores[cat])
		}
	}
}

// A nil checker selects the neutral fallback: the consistency warning costs
// score but never blocks acceptance.
func TestGateNeutralCheckerStillPasses(t *testing.T) {
	gate := NewGate(defaultRules(t), nil, types.DefaultScoring())

	verdict := gate.Evaluate(context.Background(), validCopy(), validRecord(), "")

	if !verdict.Passed {
		t.Fatalf("verdict not passed: issues=%v warnings=%v", verdict.Issues, verdict.Warnings)
	}
	if !approx(verdict.Score, 0.95) {
		t.Errorf("score = %v, want 0.95", verdict.Score)
	}
	if len(verdict.Warnings) != 1 {
		t.Errorf("warnings = %v, want the single unavailable warning", verdict.Warnings)
	}
}

func TestGateGenerationErrorShortCircuits(t *testing.T) {
	checker := &stubChecker{}
	gate := NewGate(defaultRules(t), checker, types.DefaultScoring())

	verdict := gate.Evaluate(context.Background(), validCopy(), validRecord(), "backend down")

	if verdict.Passed {
		t.Error("verdict passed despite generation error")
	}
	if verdict.Score != 0 {
		t.Errorf("score = %v, want 0", verdict.Score)
	}
	if len(verdict.Issues) != 1 || verdict.Issues[0] != "Generation error: backend down" {
		t.Errorf("issues = %v, want the generation error only", verdict.Issues)
	}
	if len(verdict.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", verdict.Warnings)
	}
	if checker.calls != 0 {
		t.Errorf("checker invoked %d times on short-circuit", checker.calls)
	}
}

func TestGateNilCopyShortCircuits(t *testing.T) {
	checker := &stubChecker{}
	gate := NewGate(defaultRules(t), checker, types.DefaultScoring())

	verdict := gate.Evaluate(context.Background(), nil, validRecord(), "")

	if verdict.Passed {
		t.Error("verdict passed without a document")
	}
	if verdict.Score != 0 {
		t.Errorf("score = %v, want 0", verdict.Score)
	}
	if len(verdict.Issues) != 1 || verdict.Issues[0] != "No structured copy to validate" {
		t.Errorf("issues = %v, want the missing-copy issue only", verdict.Issues)
	}
	if checker.calls != 0 {
		t.Errorf("checker invoked %d times on short-circuit", checker.calls)
	}
}

// Any issue blocks acceptance even when the weighted score clears the
// threshold.
func TestGateIssueBlocksDespiteScore(t *testing.T) {
	checker := &stubChecker{finding: factcheck.Finding{IsConsistent: true}}
	gate := NewGate(defaultRules(t), checker, types.DefaultScoring())

	c := validCopy()
	c.Title = strings.Repeat("t", 70)

	verdict := gate.Evaluate(context.Background(), c, validRecord(), "")

	if verdict.Passed {
		t.Error("verdict passed with an open issue")
	}
	if verdict.Score < types.DefaultScoring().PassThreshold {
		t.Errorf("score = %v, expected it above the threshold for this test", verdict.Score)
	}
	if len(verdict.Issues) == 0 {
		t.Error("expected the structural issue to surface on the verdict")
	}
}

func TestGateContainsScorerPanic(t *testing.T) {
	gate := NewGate(defaultRules(t), panicChecker{}, types.DefaultScoring())

	verdict := gate.Evaluate(context.Background(), validCopy(), validRecord(), "")

	if verdict.Passed {
		t.Error("verdict passed despite scorer panic")
	}
	if verdict.Score != 0 {
		t.Errorf("score = %v, want 0", verdict.Score)
	}
	if len(verdict.Issues) != 1 || !strings.Contains(verdict.Issues[0], "consistency scorer") {
		t.Errorf("issues = %v, want one contained panic issue", verdict.Issues)
	}
}

func TestGateCustomWeights(t *testing.T) {
	cfg := types.DefaultScoring()
	cfg.Weights = map[string]float64{
		types.CategoryStructural:  1.0,
		types.CategoryLinguistic:  0.0,
		types.CategoryRelevance:   0.0,
		types.CategoryConsistency: 0.0,
	}
	checker := &stubChecker{finding: factcheck.Finding{IsConsistent: true}}
	gate := NewGate(defaultRules(t), checker, cfg)

	c := validCopy()
	c.Title = strings.Repeat("t", 58)

	verdict := gate.Evaluate(context.Background(), c, validRecord(), "")

	if !approx(verdict.Score, 0.9) {
		t.Errorf("score = %v, want structural-only 0.9", verdict.Score)
	}
	if !verdict.Passed {
		t.Errorf("verdict not passed: issues=%v", verdict.Issues)
	}
}
