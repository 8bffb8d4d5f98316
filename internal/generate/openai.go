// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/listing-engine/internal/llmutil"
	"github.com/pdiddy/listing-engine/pkg/types"
)

// OpenAIComposer implements Composer using the OpenAI chat-completions API.
type OpenAIComposer struct {
	cfg    types.GenerationConfig
	system string
	opts   []option.RequestOption
}

// NewOpenAIComposer builds a composer from config.
func NewOpenAIComposer(cfg types.GenerationConfig) (*OpenAIComposer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("generation api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("generation model is required")
	}
	system, err := systemPrompt(cfg.Tone)
	if err != nil {
		return nil, err
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIComposer{cfg: cfg, system: system, opts: opts}, nil
}

// Compose sends the system instruction plus the conversation window and
// parses the reply into a ListingCopy. Any malformed or incomplete reply is
// returned as an error so the retry loop records a generation failure.
func (o *OpenAIComposer) Compose(ctx context.Context, turns []types.Turn) (*types.ListingCopy, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns)+1)
	msgs = append(msgs, openai.SystemMessage(o.system))
	for _, t := range turns {
		switch t.Role {
		case types.RoleAssistant:
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(t.Content))
		default:
			msgs = append(msgs, openai.UserMessage(t.Content))
		}
	}

	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	client := openai.NewClient(o.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.cfg.Model),
		Temperature: openai.Float(o.cfg.Temperature),
		Messages:    msgs,
	})
	if err != nil {
		return nil, fmt.Errorf("calling generation API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("generation API returned no choices")
	}

	return parseCopy(resp.Choices[0].Message.Content)
}

// parseCopy coerces the model output into the seven-field schema. Empty
// required fields are a failure here, not a scoring concern: the gate only
// ever sees well-formed documents.
func parseCopy(raw string) (*types.ListingCopy, error) {
	var c types.ListingCopy
	if err := json.Unmarshal([]byte(llmutil.StripFences(raw)), &c); err != nil {
		return nil, fmt.Errorf("parsing generation response: %w", err)
	}
	if strings.TrimSpace(c.Title) == "" && strings.TrimSpace(c.FullDescription) == "" {
		return nil, errors.New("generation response missing required fields")
	}
	return &c, nil
}
