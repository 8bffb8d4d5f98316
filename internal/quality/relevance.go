// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// stuffingRatio is the frequency share above which a repeated token counts
// as keyword stuffing.
const stuffingRatio = 0.05

// Relevance checks SEO signals: keyword stuffing, call-to-action presence,
// and category/location keywords, against the language rule set and the
// original input record.
func Relevance(c *types.ListingCopy, rec types.InputRecord, rules *RuleSet, lang string, p types.PenaltyConfig) types.ScoreReport {
	b := newReport(types.CategoryRelevance, p)

	fullText := strings.ToLower(strings.Join([]string{
		c.FullDescription,
		c.Summary,
		strings.Join(c.KeyFeatures, " "),
	}, " "))

	if token, count, total, ok := stuffedToken(fullText); ok {
		b.issue("Possible keyword stuffing: '%s' appears %d times (%.1f%%)",
			token, count, float64(count)/float64(total)*100)
	}

	if patterns, ok := rules.CTAPatterns(lang); ok {
		action := strings.ToLower(c.Action)
		found := false
		for _, pattern := range patterns {
			if strings.Contains(action, pattern) {
				found = true
				break
			}
		}
		if !found {
			b.warnMajor("No clear call-to-action detected")
		}
	}

	title := strings.ToLower(c.Title)

	if keywords, ok := rules.CategoryKeywords(lang); ok {
		found := false
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				found = true
				break
			}
		}
		if !found {
			b.warn("Title missing a property-category keyword")
		}
	}

	if city := rec.City(); city != "" && !strings.Contains(title, strings.ToLower(city)) {
		b.warn("Title missing city keyword from input record: '%s'", city)
	}
	if neighborhood := rec.Neighborhood(); neighborhood != "" && !strings.Contains(title, strings.ToLower(neighborhood)) {
		b.warn("Title missing neighborhood keyword from input record: '%s'", neighborhood)
	}

	return b.done()
}

// stuffedToken returns the first token among the ten most frequent (length
// > 3) whose share of all tokens exceeds stuffingRatio. Ties are broken by
// token order for determinism.
func stuffedToken(text string) (token string, count, total int, found bool) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", 0, 0, false
	}

	freq := make(map[string]int)
	for _, w := range words {
		freq[w]++
	}

	type wordCount struct {
		word  string
		count int
	}
	ranked := make([]wordCount, 0, len(freq))
	for w, n := range freq {
		ranked = append(ranked, wordCount{w, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	limit := 10
	if len(ranked) < limit {
		limit = len(ranked)
	}
	for _, wc := range ranked[:limit] {
		if utf8.RuneCountInString(wc.word) > 3 && float64(wc.count)/float64(len(words)) > stuffingRatio {
			return wc.word, wc.count, len(words), true
		}
	}
	return "", 0, 0, false
}
