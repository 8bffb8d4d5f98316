// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Score categories. Every ScoreReport and Verdict keys per-category data by
// these names.
const (
	CategoryStructural  = "structural"
	CategoryLinguistic  = "linguistic"
	CategoryRelevance   = "relevance"
	CategoryConsistency = "consistency"
)

// Categories lists the four score categories in aggregation order.
var Categories = []string{
	CategoryStructural,
	CategoryLinguistic,
	CategoryRelevance,
	CategoryConsistency,
}

// ScoreReport is the output of a single scorer: a score in [0,1] plus the
// issues (hard failures that force a retry) and warnings (soft deductions)
// the scorer found.
type ScoreReport struct {
	// Category identifies the scorer that produced the report.
	Category string `json:"category" yaml:"category"`

	// Score is 1.0 for a perfect document, reduced by deductions and
	// clamped at 0.0.
	Score float64 `json:"score" yaml:"score"`

	// Issues are hard failures; any issue blocks acceptance.
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`

	// Warnings are soft deductions; they lower the score but never block
	// acceptance on their own.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Verdict aggregates the four ScoreReports into a single pass/fail decision.
type Verdict struct {
	// Passed is true only when Score meets the acceptance threshold and
	// Issues is empty.
	Passed bool `json:"passed" yaml:"passed"`

	// Score is the weighted overall score across categories.
	Score float64 `json:"score" yaml:"score"`

	// Issues concatenates every scorer's issues.
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`

	// Warnings concatenates every scorer's warnings.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// CategoryScores maps each category name to its individual score.
	CategoryScores map[string]float64 `json:"category_scores,omitempty" yaml:"category_scores,omitempty"`
}

// Result is the terminal output of one pipeline run, returned whether the
// loop ended by acceptance or by exhausting the retry budget. Callers
// distinguish the two by inspecting Verdict.Passed.
type Result struct {
	// Copy is the last generated document; nil when generation never
	// succeeded.
	Copy *ListingCopy `json:"copy,omitempty" yaml:"copy,omitempty"`

	// Verdict is the last quality verdict. Always present.
	Verdict Verdict `json:"verdict" yaml:"verdict"`

	// Attempts counts the retries consumed (0 when the first attempt
	// was accepted).
	Attempts int `json:"attempts" yaml:"attempts"`

	// HTML is the rendered output for an accepted document, "" otherwise.
	HTML string `json:"html,omitempty" yaml:"html,omitempty"`
}
