// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package factcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/template"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/listing-engine/internal/llmutil"
	"github.com/pdiddy/listing-engine/pkg/types"
)

// checkPromptTmpl instructs the model to compare copy text against the
// record and answer with a single JSON object matching Finding.
var checkPromptTmpl = template.Must(template.New("factcheck").Parse(`You are a real-estate fact checker. Compare the marketing text against the listing record and report every discrepancy.

Respond with a single JSON object and no other text:
- is_consistent: true if the text matches the record, false if there are discrepancies
- fabricated_features: features mentioned in the text but marked false/absent in the record (e.g. "mentions balcony but record has balcony=false")
- missing_important_features: important features present in the record (true/available) but never mentioned in the text
- incorrect_numbers: numbers in the text that contradict the record (e.g. "text says 2 bedrooms but record has 3")
- wrong_listing_type: true if the text mentions sale when the record says rent, or vice versa
- wrong_language: true if the text language does not match the record's language field
- other_inconsistencies: any other discrepancies
- summary: brief summary of all findings, or "All consistent" if none

Listing record (JSON):
{{.Record}}

Marketing text:
{{.Copy}}
`))

// OpenAIChecker implements Checker against the OpenAI chat-completions API.
type OpenAIChecker struct {
	cfg  types.FactCheckConfig
	opts []option.RequestOption
}

// NewOpenAIChecker builds a remote checker from config.
func NewOpenAIChecker(cfg types.FactCheckConfig) (*OpenAIChecker, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("fact check api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("fact check model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIChecker{cfg: cfg, opts: opts}, nil
}

// Check renders the comparison prompt and parses the model's JSON reply.
// Every failure path returns an error so the scorer can fail open.
func (c *OpenAIChecker) Check(ctx context.Context, copyText string, rec types.InputRecord) (Finding, error) {
	record, err := rec.MarshalIndent()
	if err != nil {
		return Finding{}, fmt.Errorf("serializing record: %w", err)
	}

	var prompt bytes.Buffer
	if err := checkPromptTmpl.Execute(&prompt, map[string]string{
		"Record": record,
		"Copy":   copyText,
	}); err != nil {
		return Finding{}, fmt.Errorf("rendering prompt: %w", err)
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	client := openai.NewClient(c.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.cfg.Model),
		Temperature: openai.Float(c.cfg.Temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt.String()),
		},
	})
	if err != nil {
		return Finding{}, fmt.Errorf("calling fact check API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Finding{}, errors.New("fact check API returned no choices")
	}

	var finding Finding
	if err := json.Unmarshal([]byte(llmutil.StripFences(resp.Choices[0].Message.Content)), &finding); err != nil {
		return Finding{}, fmt.Errorf("parsing fact check response: %w", err)
	}
	return finding, nil
}
