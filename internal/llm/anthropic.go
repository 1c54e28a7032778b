package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicBackend struct {
	client  anthropic.Client
	modelID string
}

func newAnthropicBackend(cfg Config) *anthropicBackend {
	return &anthropicBackend{
		client:  anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		modelID: cfg.Model,
	}
}

func (b *anthropicBackend) model() string { return b.modelID }

func (b *anthropicBackend) complete(ctx context.Context, p Prompt) (*Completion, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(b.modelID),
		MaxTokens: int64(p.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(p.User)),
		},
	}
	if p.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.System}}
	}
	if p.Temperature > 0 {
		params.Temperature = anthropic.Float(p.Temperature)
	}
	if p.Schema != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: p.Schema.Definition},
		}
	}

	msg, err := b.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, classifyHTTP(apiErr.StatusCode, err)
		}
		return nil, transient(err)
	}
	if msg.StopReason == "max_tokens" {
		return nil, truncated()
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return &Completion{
				JSON:         json.RawMessage(block.Text),
				Model:        string(msg.Model),
				InputTokens:  int(msg.Usage.InputTokens),
				OutputTokens: int(msg.Usage.OutputTokens),
			}, nil
		}
	}
	return nil, badOutput(nil, fmt.Errorf("anthropic response carries no text block"))
}
