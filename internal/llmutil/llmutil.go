// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llmutil holds small helpers shared by the AI API clients.
package llmutil

import "strings"

// StripFences removes a surrounding markdown code fence, which some models
// add around JSON despite instructions.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
