// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// markupPattern matches HTML/XML-like angle-bracket tags. Generated copy
// must be plain text; markup is injected by the renderer, never the model.
var markupPattern = regexp.MustCompile(`<[^>]+>`)

// Structural checks length, format, and completeness constraints on the
// copy. Pure function of the document; no I/O. Lengths count characters,
// not bytes, so accented copy is not penalized.
func Structural(c *types.ListingCopy, p types.PenaltyConfig) types.ScoreReport {
	b := newReport(types.CategoryStructural, p)

	titleLen := utf8.RuneCountInString(c.Title)
	switch {
	case titleLen > 60:
		b.issue("Title too long: %d/60 chars", titleLen)
	case titleLen > 55:
		b.warn("Title close to limit: %d/60 chars", titleLen)
	case titleLen < 10:
		b.warn("Title too short: %d chars (min 10)", titleLen)
	}

	metaLen := utf8.RuneCountInString(c.MetaDescription)
	switch {
	case metaLen > 155:
		b.issue("Meta description too long: %d/155 chars", metaLen)
	case metaLen > 150:
		b.warn("Meta description close to limit: %d/155 chars", metaLen)
	case metaLen < 50:
		b.warn("Meta description too short: %d chars (recommended min 50)", metaLen)
	}

	descLen := utf8.RuneCountInString(c.FullDescription)
	switch {
	case descLen > 700:
		b.issue("Full description too long: %d/(500-700 characters). Make it SHORTER: write 600-650 characters", descLen)
	case descLen < 500:
		b.issue("Full description too short: %d/(500-700 characters). Make it LONGER: write 600-650 characters", descLen)
	case descLen < 520 || descLen > 680:
		b.warn("Full description length %d near boundary", descLen)
	}

	featureCount := len(c.KeyFeatures)
	switch {
	case featureCount == 0:
		b.issue("No key features provided")
	case featureCount < 3 || featureCount > 5:
		b.warnMajor("Key features amount %d not in range 3-5", featureCount)
	}

	for _, f := range c.TextFields() {
		if f.Value == "" || strings.TrimSpace(f.Value) == "" || strings.EqualFold(f.Value, "null") {
			b.issue("Field '%s' is empty or null", f.Name)
		}
	}

	for _, f := range c.TextFields() {
		if markupPattern.MatchString(f.Value) {
			b.issue("%s contains HTML/XML tags", f.Name)
		}
	}

	return b.done()
}
