// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// WriteReport writes a human-readable verdict report for a finished run.
func WriteReport(w io.Writer, res *types.Result, maxRetries int) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "VALIDATION REPORT")
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "Passed: %v\n", res.Verdict.Passed)
	fmt.Fprintf(w, "Overall Score: %.2f\n", res.Verdict.Score)

	if len(res.Verdict.CategoryScores) > 0 {
		fmt.Fprintln(w, "\nCategory Scores:")
		categories := make([]string, 0, len(res.Verdict.CategoryScores))
		for c := range res.Verdict.CategoryScores {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			fmt.Fprintf(w, "  %s: %.2f\n", c, res.Verdict.CategoryScores[c])
		}
	}

	if len(res.Verdict.Issues) > 0 {
		fmt.Fprintf(w, "\nCritical Issues (%d):\n", len(res.Verdict.Issues))
		for _, issue := range res.Verdict.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
	}

	if len(res.Verdict.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings (%d):\n", len(res.Verdict.Warnings))
		for _, warning := range res.Verdict.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	fmt.Fprintf(w, "\nRetries used: %d/%d\n", res.Attempts, maxRetries)
	fmt.Fprintln(w, rule)
}
