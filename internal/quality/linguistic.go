// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/listing-engine/pkg/types"
)

const ngramSize = 3

// sentenceEnd splits body text on sentence-terminal punctuation.
var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Linguistic checks surface-text quality: repetition, boilerplate phrasing,
// capitalization, and sentence length. Banned-phrase matching uses the
// language-specific rule set; an absent language entry skips that check.
func Linguistic(c *types.ListingCopy, rules *RuleSet, lang string, p types.PenaltyConfig) types.ScoreReport {
	b := newReport(types.CategoryLinguistic, p)

	fullText := c.Title + " " + c.FullDescription + " " + c.Summary

	repetition := repetitionScore(fullText)
	switch {
	case repetition < 0.5:
		b.issue("Very high repetition detected (score: %.2f)", repetition)
	case repetition < 0.7:
		b.warnMajor("High repetition detected (score: %.2f)", repetition)
	}

	if phrases, ok := rules.BannedPhrases(lang); ok {
		lower := strings.ToLower(fullText)
		count := 0
		for _, phrase := range phrases {
			if strings.Contains(lower, phrase) {
				count++
			}
		}
		switch {
		case count > 3:
			b.issue("Contains %d LLM-typical phrases", count)
		case count > 1:
			b.warn("Contains %d LLM-typical phrases", count)
		}
	}

	caps := 0
	for _, word := range strings.Fields(fullText) {
		if utf8.RuneCountInString(word) > 3 && isAllCaps(word) {
			caps++
		}
	}
	if caps > 2 {
		b.warn("Contains %d words in ALL CAPS", caps)
	}

	short := 0
	for _, sentence := range sentenceEnd.Split(c.FullDescription, -1) {
		trimmed := strings.TrimSpace(sentence)
		if trimmed != "" && len(strings.Fields(trimmed)) < 5 {
			short++
		}
	}
	if short > 2 {
		b.warn("Contains %d very short sentences", short)
	}

	return b.done()
}

// repetitionScore measures n-gram uniqueness over the combined text. Fewer
// than ngramSize words is a defined edge case: perfect score.
func repetitionScore(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) < ngramSize {
		return 1.0
	}

	counts := make(map[string]int)
	total := len(words) - ngramSize + 1
	maxFreq := 0
	for i := 0; i < total; i++ {
		ngram := strings.Join(words[i:i+ngramSize], " ")
		counts[ngram]++
		if counts[ngram] > maxFreq {
			maxFreq = counts[ngram]
		}
	}

	uniqueRatio := float64(len(counts)) / float64(total)
	repetitionPenalty := float64(maxFreq) / 3
	if repetitionPenalty > 1.0 {
		repetitionPenalty = 1.0
	}

	return uniqueRatio * (1 - repetitionPenalty*0.5)
}

// isAllCaps reports whether the word has at least one letter and every
// letter is uppercase.
func isAllCaps(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
