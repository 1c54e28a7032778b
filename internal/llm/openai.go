package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiBackend also serves OpenRouter and any other host that speaks
// the OpenAI wire protocol, via Config.BaseURL.
type openaiBackend struct {
	client  *openai.Client
	modelID string
}

func newOpenAIBackend(cfg Config) *openaiBackend {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &openaiBackend{
		client:  openai.NewClientWithConfig(clientCfg),
		modelID: cfg.Model,
	}
}

func (b *openaiBackend) model() string { return b.modelID }

func (b *openaiBackend) complete(ctx context.Context, p Prompt) (*Completion, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: p.User},
	}
	if p.System != "" {
		messages = append([]openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
		}, messages...)
	}

	req := openai.ChatCompletionRequest{
		Model:               b.modelID,
		Messages:            messages,
		MaxCompletionTokens: p.MaxTokens,
		Temperature:         float32(p.Temperature),
	}
	if p.Schema != nil {
		def, err := json.Marshal(p.Schema.Definition)
		if err != nil {
			return nil, badOutput(nil, fmt.Errorf("marshal schema %q: %w", p.Schema.Name, err))
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   p.Schema.Name,
				Schema: json.RawMessage(def),
				Strict: true,
			},
		}
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyHTTP(apiErr.HTTPStatusCode, err)
		}
		return nil, transient(err)
	}
	if len(resp.Choices) == 0 {
		return nil, badOutput(nil, fmt.Errorf("openai response carries no choices"))
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonLength {
		return nil, truncated()
	}

	return &Completion{
		JSON:         json.RawMessage(choice.Message.Content),
		Model:        resp.Model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}
