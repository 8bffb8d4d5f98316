// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/listing-engine/internal/generate"
	"github.com/pdiddy/listing-engine/internal/quality"
	"github.com/pdiddy/listing-engine/pkg/types"
)

// Runner executes the generate → evaluate → accept/retry loop for one input
// record at a time. The loop is inherently sequential: each generation
// depends on the feedback from the previous evaluation.
type Runner struct {
	composer   generate.Composer
	gate       *quality.Gate
	cfg        types.RunnerConfig
	maxHistory int
	log        io.Writer
}

// NewRunner builds a runner. maxHistory bounds the conversation window sent
// to the composer; w receives progress lines and may be io.Discard.
func NewRunner(composer generate.Composer, gate *quality.Gate, cfg types.RunnerConfig, maxHistory int, w io.Writer) *Runner {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 5
	}
	if w == nil {
		w = io.Discard
	}
	return &Runner{composer: composer, gate: gate, cfg: cfg, maxHistory: maxHistory, log: w}
}

// Run executes the loop to a terminal state and returns the final result.
// No failure mode escapes as an error once the loop has started: generation
// failures, scorer faults, and fact-check outages all resolve to verdicts,
// so termination within MaxRetries+1 generation calls always holds. The
// returned error is non-nil only when the input record cannot be
// serialized to seed the conversation.
func (r *Runner) Run(ctx context.Context, rec types.InputRecord) (*types.Result, error) {
	seed, err := rec.MarshalIndent()
	if err != nil {
		return nil, fmt.Errorf("serializing input record: %w", err)
	}

	state := &State{}
	state.append(types.RoleUser, seed)

	for {
		r.generate(ctx, state)
		state.Verdict = r.gate.Evaluate(ctx, state.Copy, rec, state.GenerationError)

		if state.Verdict.Passed {
			fmt.Fprintf(r.log, "accepted: score=%.2f attempts=%d\n", state.Verdict.Score, state.Attempts)
			break
		}
		if state.Attempts >= r.cfg.MaxRetries {
			fmt.Fprintf(r.log, "retry budget exhausted: score=%.2f issues=%d\n",
				state.Verdict.Score, len(state.Verdict.Issues))
			break
		}

		fmt.Fprintf(r.log, "retrying (%d/%d): score=%.2f issues=%d warnings=%d\n",
			state.Attempts+1, r.cfg.MaxRetries, state.Verdict.Score,
			len(state.Verdict.Issues), len(state.Verdict.Warnings))

		state.append(types.RoleUser, feedbackMessage(state.Verdict))
		state.Attempts++
	}

	return &types.Result{
		Copy:     state.Copy,
		Verdict:  state.Verdict,
		Attempts: state.Attempts,
	}, nil
}

// generate invokes the composer with the trailing history window and
// records the outcome on state. A call failure is fatal for this attempt
// only: the error is recorded for the gate to short-circuit on, and the
// loop's budget accounting proceeds as for any failing verdict.
func (r *Runner) generate(ctx context.Context, state *State) {
	doc, err := r.composer.Compose(ctx, state.Window(r.maxHistory))
	if err != nil {
		fmt.Fprintf(r.log, "generation failed: %v\n", err)
		state.Copy = nil
		state.GenerationError = err.Error()
		return
	}

	state.Copy = doc
	state.GenerationError = ""

	// Replay the result as an assistant turn so revision requests carry
	// the document they are revising.
	if text, err := doc.JSON(); err == nil {
		state.append(types.RoleAssistant, text)
	}
}
