// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"strings"
	"testing"

	"github.com/pdiddy/listing-engine/pkg/types"
)

func TestRelevanceCleanDocument(t *testing.T) {
	report := Relevance(validCopy(), validRecord(), defaultRules(t), "en", types.DefaultPenalties())

	if !approx(report.Score, 1.0) {
		t.Errorf("score = %v, want 1.0", report.Score)
	}
	if len(report.Issues) != 0 || len(report.Warnings) != 0 {
		t.Errorf("unexpected findings: issues=%v warnings=%v", report.Issues, report.Warnings)
	}
}

// A record whose city never makes it into the title costs exactly one
// warning when no other rule applies.
func TestRelevanceMissingCityKeyword(t *testing.T) {
	c := validCopy()
	c.Title = "Bright Two Bedroom Apartment Downtown"
	rec := types.InputRecord{
		"location": map[string]any{"city": "Lisbon"},
	}

	report := Relevance(c, rec, defaultRules(t), rec.Language(), types.DefaultPenalties())

	if !approx(report.Score, 0.9) {
		t.Errorf("score = %v, want 0.9", report.Score)
	}
	if len(report.Issues) != 0 {
		t.Errorf("issues = %v, want none", report.Issues)
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "'Lisbon'") {
		t.Errorf("warnings = %v, want one city warning", report.Warnings)
	}
}

func TestRelevanceMissingNeighborhoodKeyword(t *testing.T) {
	c := validCopy()
	rec := types.InputRecord{
		"location": map[string]any{"city": "Lisbon", "neighborhood": "Alfama"},
	}

	report := Relevance(c, rec, defaultRules(t), rec.Language(), types.DefaultPenalties())

	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "'Alfama'") {
		t.Errorf("warnings = %v, want one neighborhood warning", report.Warnings)
	}
	if !approx(report.Score, 0.9) {
		t.Errorf("score = %v, want 0.9", report.Score)
	}
}

func TestRelevanceKeywordStuffing(t *testing.T) {
	fillers := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"india", "juliett", "kilo", "lima", "mike", "november", "oscar",
		"papa", "quebec", "romeo", "sierra", "tango", "uniform", "victor",
		"whiskey", "xray", "yankee", "zulu", "amber", "birch", "cedar",
		"dusty", "ember",
	}
	body := strings.Repeat("penthouse ", 6) + strings.Join(fillers, " ")
	c := &types.ListingCopy{FullDescription: body}

	report := Relevance(c, types.InputRecord{}, defaultRules(t), "", types.DefaultPenalties())

	if len(report.Issues) != 1 {
		t.Fatalf("issues = %v, want exactly one", report.Issues)
	}
	if !strings.Contains(report.Issues[0], "'penthouse' appears 6 times") {
		t.Errorf("issue = %q, want the stuffed token named", report.Issues[0])
	}
	if !approx(report.Score, 0.7) {
		t.Errorf("score = %v, want 0.7", report.Score)
	}
}

// The stuffing token-length guard counts characters: a frequent
// three-character accented word is exempt regardless of its byte length.
func TestRelevanceStuffingCountsCharacters(t *testing.T) {
	fillers := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"india", "juliett", "kilo", "lima", "mike", "november", "oscar",
		"papa", "quebec", "romeo", "sierra", "tango", "uniform", "victor",
		"whiskey", "xray", "yankee", "zulu", "amber", "birch", "cedar",
		"dusty", "ember",
	}
	body := strings.Repeat("céu ", 6) + strings.Join(fillers, " ")
	c := &types.ListingCopy{FullDescription: body}

	report := Relevance(c, types.InputRecord{}, defaultRules(t), "", types.DefaultPenalties())

	if len(report.Issues) != 0 {
		t.Errorf("issues = %v, want none for a three-character token", report.Issues)
	}
	if !approx(report.Score, 1.0) {
		t.Errorf("score = %v, want 1.0", report.Score)
	}
}

func TestRelevanceMissingCallToAction(t *testing.T) {
	c := validCopy()
	c.Action = "Thank you for reading."
	rec := types.InputRecord{"language": "en"}

	report := Relevance(c, rec, defaultRules(t), "en", types.DefaultPenalties())

	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "call-to-action") {
		t.Errorf("warnings = %v, want one CTA warning", report.Warnings)
	}
	if !approx(report.Score, 0.8) {
		t.Errorf("score = %v, want 0.8", report.Score)
	}
}

func TestRelevanceMissingCategoryKeyword(t *testing.T) {
	c := validCopy()
	c.Title = "Charming Retreat Close to the River"
	rec := types.InputRecord{"language": "en"}

	report := Relevance(c, rec, defaultRules(t), "en", types.DefaultPenalties())

	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "property-category keyword") {
		t.Errorf("warnings = %v, want one category warning", report.Warnings)
	}
	if !approx(report.Score, 0.9) {
		t.Errorf("score = %v, want 0.9", report.Score)
	}
}

// An unknown language skips CTA and category checks entirely.
func TestRelevanceUnknownLanguageSkipsRuleChecks(t *testing.T) {
	c := validCopy()
	c.Action = "Thank you for reading."
	c.Title = "Charming Retreat Close to the River"

	report := Relevance(c, types.InputRecord{}, defaultRules(t), "ja", types.DefaultPenalties())

	if !approx(report.Score, 1.0) {
		t.Errorf("score = %v, want 1.0", report.Score)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", report.Warnings)
	}
}
