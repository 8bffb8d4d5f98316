// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns accepted listing copy into the HTML fragment served
// to downstream page builders. Rendering happens once, after acceptance;
// the quality gate only ever sees plain text.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pdiddy/listing-engine/pkg/types"
)

var pageTmpl = template.Must(template.New("listing").Parse(`<title>{{.Title}}</title>

<meta name="description" content="{{.MetaDescription}}">

<h1>{{.Headline}}</h1>

<section id="description">
{{- range .DescriptionParagraphs}}
  <p>{{.}}</p>
{{- end}}
</section>

<ul class="key-features">
{{- range .KeyFeatures}}
  <li>{{.}}</li>
{{- end}}
</ul>

<section id="neighborhood">
  <p>{{.Summary}}</p>
</section>

<p class="call-to-action">{{.Action}}</p>
`))

// pageData adapts a ListingCopy for the template: the description is split
// into paragraphs on newlines since the model writes one feature per line.
type pageData struct {
	*types.ListingCopy
	DescriptionParagraphs []string
}

// HTML renders the copy into the listing page fragment.
func HTML(c *types.ListingCopy) (string, error) {
	data := pageData{
		ListingCopy:           c,
		DescriptionParagraphs: paragraphs(c.FullDescription),
	}
	var b strings.Builder
	if err := pageTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering listing HTML: %w", err)
	}
	return b.String(), nil
}

func paragraphs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
