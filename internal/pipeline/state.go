// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the quality-gated generation loop: generate a
// candidate, score it, and either accept it or regenerate with accumulated
// feedback, bounded by a retry budget.
package pipeline

import "github.com/pdiddy/listing-engine/pkg/types"

// State is the mutable bookkeeping for one pipeline run. It is owned
// exclusively by the Runner; concurrent runs share nothing.
type State struct {
	// History is the append-only conversation log: the seed record turn,
	// one assistant turn per successful generation, and one feedback turn
	// per retry. The full log is retained for auditing; only a trailing
	// window is sent to the model.
	History []types.Turn

	// Attempts counts consumed retries. Starts at zero, increments once
	// per retry, never decrements.
	Attempts int

	// Copy is the most recent candidate; nil when the last generation
	// call failed.
	Copy *types.ListingCopy

	// Verdict is the most recent gate verdict.
	Verdict types.Verdict

	// GenerationError is the terminal error text of the last generation
	// call, or "" when it succeeded.
	GenerationError string
}

// Window returns the trailing n turns of the history, or the whole history
// when n <= 0 or the history is shorter.
func (s *State) Window(n int) []types.Turn {
	if n <= 0 || len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

// append adds one turn to the history.
func (s *State) append(role, content string) {
	s.History = append(s.History, types.Turn{Role: role, Content: content})
}
