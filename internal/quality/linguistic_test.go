// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"strings"
	"testing"

	"github.com/pdiddy/listing-engine/pkg/types"
)

func TestLinguisticCleanDocument(t *testing.T) {
	report := Linguistic(validCopy(), defaultRules(t), "en", types.DefaultPenalties())

	if !approx(report.Score, 1.0) {
		t.Errorf("score = %v, want 1.0", report.Score)
	}
	if len(report.Issues) != 0 || len(report.Warnings) != 0 {
		t.Errorf("unexpected findings: issues=%v warnings=%v", report.Issues, report.Warnings)
	}
}

func TestLinguisticHeavyRepetition(t *testing.T) {
	c := &types.ListingCopy{
		FullDescription: strings.TrimSpace(strings.Repeat("buy this house ", 20)),
	}

	report := Linguistic(c, defaultRules(t), "en", types.DefaultPenalties())

	if !approx(report.Score, 0.7) {
		t.Errorf("score = %v, want 0.7", report.Score)
	}
	if len(report.Issues) != 1 || !strings.Contains(report.Issues[0], "Very high repetition") {
		t.Errorf("issues = %v, want a repetition issue", report.Issues)
	}
}

func TestLinguisticBannedPhrases(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		body     string
		score    float64
		issues   int
		warnings int
	}{
		{
			name:     "two phrases warn",
			lang:     "en",
			body:     "The robust market lets buyers leverage current rates on this quiet street.",
			score:    0.9,
			warnings: 1,
		},
		{
			name:   "four phrases fail",
			lang:   "en",
			body:   "We delve into the robust market and leverage the unparalleled location for you.",
			score:  0.7,
			issues: 1,
		},
		{
			name:  "unknown language skips the check",
			lang:  "ja",
			body:  "We delve into the robust market and leverage the unparalleled location for you.",
			score: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &types.ListingCopy{FullDescription: tt.body}
			report := Linguistic(c, defaultRules(t), tt.lang, types.DefaultPenalties())

			if !approx(report.Score, tt.score) {
				t.Errorf("score = %v, want %v", report.Score, tt.score)
			}
			if len(report.Issues) != tt.issues {
				t.Errorf("issues = %v, want %d", report.Issues, tt.issues)
			}
			if len(report.Warnings) != tt.warnings {
				t.Errorf("warnings = %v, want %d", report.Warnings, tt.warnings)
			}
		})
	}
}

func TestLinguisticAllCaps(t *testing.T) {
	c := &types.ListingCopy{
		FullDescription: "AMAZING VIEW NEAR BEACH with a calm garden behind the building today",
	}

	report := Linguistic(c, defaultRules(t), "en", types.DefaultPenalties())

	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "4 words in ALL CAPS") {
		t.Errorf("warnings = %v, want one ALL CAPS warning", report.Warnings)
	}
	if !approx(report.Score, 0.9) {
		t.Errorf("score = %v, want 0.9", report.Score)
	}
}

// The minimum-length guard for ALL-CAPS words counts characters: accented
// three-letter words stay exempt even though they are over three bytes.
func TestLinguisticAllCapsCountsCharacters(t *testing.T) {
	c := &types.ListingCopy{
		FullDescription: "O CÉU e o SOL e o MAR brilham sobre a casa durante o verão inteiro",
	}

	report := Linguistic(c, defaultRules(t), "pt", types.DefaultPenalties())

	if len(report.Warnings) != 0 {
		t.Errorf("warnings = %v, want none for three-character words", report.Warnings)
	}
	if !approx(report.Score, 1.0) {
		t.Errorf("score = %v, want 1.0", report.Score)
	}
}

func TestLinguisticShortSentences(t *testing.T) {
	c := &types.ListingCopy{
		FullDescription: "Great flat. Buy now. Top spot. A really wonderful place to live near the city center park.",
	}

	report := Linguistic(c, defaultRules(t), "en", types.DefaultPenalties())

	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "3 very short sentences") {
		t.Errorf("warnings = %v, want one short-sentence warning", report.Warnings)
	}
	if !approx(report.Score, 0.9) {
		t.Errorf("score = %v, want 0.9", report.Score)
	}
}

func TestRepetitionScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"fewer than three words", "two words", 1.0},
		{"unique trigrams", "one two three four five six", 1.0 - 1.0/3/2},
		{"fully repeated", "a b c a b c a b c", 3.0 / 7 * 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repetitionScore(tt.text)
			if !approx(got, tt.want) {
				t.Errorf("repetitionScore(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if again := repetitionScore(tt.text); !approx(got, again) {
				t.Errorf("repetitionScore not deterministic: %v then %v", got, again)
			}
		})
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"BEACH", true},
		{"Beach", false},
		{"T2-DUPLEX", true},
		{"1234", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isAllCaps(tt.word); got != tt.want {
			t.Errorf("isAllCaps(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
