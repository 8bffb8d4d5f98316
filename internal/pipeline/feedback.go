// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"strings"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// feedbackMessage turns a failing verdict into the revision instruction
// appended to the conversation as a user turn. Issues and warnings are
// listed verbatim so the model sees exactly what the gate measured.
func feedbackMessage(v types.Verdict) string {
	var b strings.Builder
	b.WriteString("The previous attempt had quality issues. Please regenerate addressing the following:\n")

	if len(v.Issues) > 0 {
		b.WriteString("\nCRITICAL ISSUES (must fix):\n")
		for _, issue := range v.Issues {
			b.WriteString("- " + issue + "\n")
		}
	}

	if len(v.Warnings) > 0 {
		b.WriteString("\nWARNINGS (should improve):\n")
		for _, warning := range v.Warnings {
			b.WriteString("- " + warning + "\n")
		}
	}

	b.WriteString("\nPlease regenerate the complete property listing with these improvements.")
	return b.String()
}
