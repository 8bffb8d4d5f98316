// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"fmt"
	"text/template"
)

// systemPromptTmpl is the system instruction for copy generation. It fixes
// the JSON schema and the length constraints the quality gate will enforce,
// parameterized by the configured tone.
var systemPromptTmpl = template.Must(template.New("system").Parse(`You are a real-estate copywriter. You receive a property listing record as JSON and write marketing copy for its web page in a {{.Tone}} tone, in the language given by the record's "language" field.

Respond with a single JSON object and no other text. Fields:
- title: short page title for the browser tab and search results - max 60 characters
- meta_description: SEO snippet - max 155 characters
- headline: main visible headline on the page
- full_description: rich, engaging property description paragraph covering all key features - between 500 and 700 characters
- key_features: list of 3-5 short feature strings
- summary: one paragraph of neighborhood lifestyle and area information
- action: short closing line encouraging the reader to act

Use only facts present in the record. Never invent features, numbers, or
locations. Plain text only: no HTML or markdown markup in any field.

When a later message lists quality issues with a previous attempt, regenerate
the complete JSON object with every issue addressed.`))

// systemPrompt renders the system instruction for the given tone.
func systemPrompt(tone string) (string, error) {
	if tone == "" {
		tone = "formal"
	}
	var b bytes.Buffer
	if err := systemPromptTmpl.Execute(&b, map[string]string{"Tone": tone}); err != nil {
		return "", fmt.Errorf("rendering system prompt: %w", err)
	}
	return b.String(), nil
}
