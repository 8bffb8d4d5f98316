// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quality scores generated listing copy against independent quality
// dimensions and aggregates the results into a pass/fail verdict. Scorers
// are pure functions over immutable inputs; deductions compound by simple
// subtraction and every score is floor-clamped at zero.
package quality

import (
	"fmt"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// reportBuilder accumulates deductions for one scorer invocation.
type reportBuilder struct {
	report    types.ScoreReport
	penalties types.PenaltyConfig
}

func newReport(category string, p types.PenaltyConfig) *reportBuilder {
	return &reportBuilder{
		report:    types.ScoreReport{Category: category, Score: 1.0},
		penalties: p,
	}
}

// issue records a hard failure and deducts the issue penalty.
func (b *reportBuilder) issue(format string, args ...any) {
	b.report.Issues = append(b.report.Issues, fmt.Sprintf(format, args...))
	b.report.Score -= b.penalties.Issue
}

// warn records a soft finding and deducts the ordinary warning penalty.
func (b *reportBuilder) warn(format string, args ...any) {
	b.report.Warnings = append(b.report.Warnings, fmt.Sprintf(format, args...))
	b.report.Score -= b.penalties.Warning
}

// warnMajor records a soft finding with the heavier deduction.
func (b *reportBuilder) warnMajor(format string, args ...any) {
	b.report.Warnings = append(b.report.Warnings, fmt.Sprintf(format, args...))
	b.report.Score -= b.penalties.MajorWarning
}

// deduct subtracts an explicit amount without recording a finding. Used by
// the consistency scorer, which caps the per-item deduction separately from
// the finding list.
func (b *reportBuilder) deduct(amount float64) {
	b.report.Score -= amount
}

// addIssue records an issue without deducting; pair with deduct for capped
// per-item penalties.
func (b *reportBuilder) addIssue(format string, args ...any) {
	b.report.Issues = append(b.report.Issues, fmt.Sprintf(format, args...))
}

// done clamps the score into [0,1] and returns the finished report.
func (b *reportBuilder) done() types.ScoreReport {
	if b.report.Score < 0 {
		b.report.Score = 0
	}
	return b.report
}
