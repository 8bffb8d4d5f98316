// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "encoding/json"

// ListingCopy is the structured marketing copy produced by one generation
// attempt. A new ListingCopy supersedes the previous one on retry; instances
// are never mutated after creation.
type ListingCopy struct {
	// Title is the page title shown in browser tabs and search results
	// (max 60 characters).
	Title string `json:"title" yaml:"title"`

	// MetaDescription is the SEO snippet (max 155 characters).
	MetaDescription string `json:"meta_description" yaml:"meta_description"`

	// Headline is the main visible headline on the page.
	Headline string `json:"headline" yaml:"headline"`

	// FullDescription is the rich property description paragraph
	// (500-700 characters).
	FullDescription string `json:"full_description" yaml:"full_description"`

	// KeyFeatures lists 3-5 short feature strings in order.
	KeyFeatures []string `json:"key_features" yaml:"key_features"`

	// Summary is one paragraph of neighborhood and lifestyle information.
	Summary string `json:"summary" yaml:"summary"`

	// Action is the short closing call-to-action line.
	Action string `json:"action" yaml:"action"`
}

// TextFields returns the six required single-string fields by name, in a
// stable order. KeyFeatures is handled separately as a list.
func (c *ListingCopy) TextFields() []struct{ Name, Value string } {
	return []struct{ Name, Value string }{
		{"title", c.Title},
		{"meta_description", c.MetaDescription},
		{"headline", c.Headline},
		{"full_description", c.FullDescription},
		{"summary", c.Summary},
		{"action", c.Action},
	}
}

// JSON serializes the copy as indented JSON, used for assistant turns in the
// conversation history and for the fact checker.
func (c *ListingCopy) JSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
