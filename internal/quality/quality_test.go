// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"context"
	"math"
	"testing"

	"github.com/pdiddy/listing-engine/internal/factcheck"
	"github.com/pdiddy/listing-engine/pkg/types"
)

// validCopy returns a document that satisfies every scorer: lengths in
// range, no repetition, a call to action, and the category and city
// keywords in the title.
func validCopy() *types.ListingCopy {
	return &types.ListingCopy{
		Title:           "Bright Two Bedroom Apartment in Lisbon",
		MetaDescription: "Discover a renovated two bedroom apartment with balcony and parking near the Lisbon metro.",
		Headline:        "A renovated home in the heart of Lisbon",
		FullDescription: "This bright apartment welcomes you with generous morning light. " +
			"A modern kitchen connects to the dining area for easy hosting. " +
			"Two comfortable bedrooms share a calm view over the courtyard. " +
			"The renovated bathroom includes a walk-in shower and heated floor. " +
			"Wide oak flooring runs through every room of the home. " +
			"A private balcony gives space for coffee above the quiet street. " +
			"Storage is handled by built-in wardrobes along the hallway. " +
			"Residents reach shops, schools, and the metro within minutes. " +
			"The building offers an elevator and secure bicycle parking. " +
			"Monthly charges stay low thanks to recent insulation work.",
		KeyFeatures: []string{"Private balcony", "Elevator access", "Built-in wardrobes"},
		Summary: "The neighborhood pairs quiet residential streets with lively cafes, " +
			"weekend markets, and green parks a short walk away.",
		Action: "Contact us today to schedule a visit.",
	}
}

func validRecord() types.InputRecord {
	return types.InputRecord{
		"language":     "en",
		"listing_type": "sale",
		"bedrooms":     2,
		"location": map[string]any{
			"city": "Lisbon",
		},
	}
}

func defaultRules(t *testing.T) *RuleSet {
	t.Helper()
	rs, err := DefaultRules()
	if err != nil {
		t.Fatalf("DefaultRules: %v", err)
	}
	return rs
}

// stubChecker is a scripted factcheck.Checker for scorer and gate tests.
type stubChecker struct {
	finding factcheck.Finding
	err     error
	calls   int
}

func (s *stubChecker) Check(ctx context.Context, copyText string, rec types.InputRecord) (factcheck.Finding, error) {
	s.calls++
	return s.finding, s.err
}

// panicChecker simulates an internal scorer fault.
type panicChecker struct{}

func (panicChecker) Check(context.Context, string, types.InputRecord) (factcheck.Finding, error) {
	panic("checker exploded")
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
