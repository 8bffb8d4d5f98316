// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"context"
	"strings"

	"github.com/pdiddy/listing-engine/internal/factcheck"
	"github.com/pdiddy/listing-engine/pkg/types"
)

// neutralScore is returned when no consistency check could run: an empty
// input record, a disabled checker, or a failed external call. Fail-open
// keeps an otherwise-good document from looping on an unavailable
// collaborator.
const neutralScore = 0.8

// factualItemCap bounds the deduction for fabricated features plus
// incorrect numbers; every item is still listed as its own issue.
const factualItemCap = 4

// Consistency checks factual alignment between the copy and the input
// record, delegating the comparison to the checker.
func Consistency(ctx context.Context, checker factcheck.Checker, c *types.ListingCopy, rec types.InputRecord, p types.PenaltyConfig) types.ScoreReport {
	b := newReport(types.CategoryConsistency, p)

	if rec.IsEmpty() {
		b.report.Score = neutralScore
		b.report.Warnings = append(b.report.Warnings, "Consistency check skipped: no input record")
		return b.report
	}

	finding, err := checker.Check(ctx, renderCopyText(c), rec)
	if err != nil {
		b.report.Score = neutralScore
		b.report.Warnings = append(b.report.Warnings, "Consistency check unavailable: "+err.Error())
		return b.report
	}

	factualItems := 0
	for _, f := range finding.FabricatedFeatures {
		b.addIssue("Fabricated feature: %s", f)
		factualItems++
	}
	for _, n := range finding.IncorrectNumbers {
		b.addIssue("Incorrect number: %s", n)
		factualItems++
	}
	if factualItems > factualItemCap {
		factualItems = factualItemCap
	}
	b.deduct(float64(factualItems) * p.Issue)

	if finding.WrongListingType {
		b.issue("Listing type mismatch: text contradicts the record's sale/rent type")
	}
	if finding.WrongLanguage {
		b.issue("Language mismatch: text language differs from the record's language field")
	}

	for _, f := range finding.MissingImportantFeatures {
		b.warn("Missing important feature: %s", f)
	}
	for _, o := range finding.OtherInconsistencies {
		b.warn("Inconsistency: %s", o)
	}

	return b.done()
}

// renderCopyText flattens the copy into the plain-text form sent to the
// checker.
func renderCopyText(c *types.ListingCopy) string {
	parts := []string{
		"Title: " + c.Title,
		"Meta description: " + c.MetaDescription,
		"Headline: " + c.Headline,
		"Description: " + c.FullDescription,
		"Key features: " + strings.Join(c.KeyFeatures, "; "),
		"Neighborhood: " + c.Summary,
		"Call to action: " + c.Action,
	}
	return strings.Join(parts, "\n")
}
