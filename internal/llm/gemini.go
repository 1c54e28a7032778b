package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type geminiBackend struct {
	client  *genai.Client
	modelID string
}

func newGeminiBackend(ctx context.Context, cfg Config) (*geminiBackend, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiBackend{client: client, modelID: cfg.Model}, nil
}

func (b *geminiBackend) model() string { return b.modelID }

func (b *geminiBackend) complete(ctx context.Context, p Prompt) (*Completion, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(p.MaxTokens),
	}
	if p.Temperature > 0 {
		temp := float32(p.Temperature)
		cfg.Temperature = &temp
	}
	if p.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: p.System}}}
	}
	if p.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toGenaiSchema(p.Schema.Definition)
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: p.User}}},
	}

	result, err := b.client.Models.GenerateContent(ctx, b.modelID, contents, cfg)
	if err != nil {
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyHTTP(apiErr.Code, err)
		}
		return nil, transient(err)
	}
	if len(result.Candidates) > 0 && result.Candidates[0].FinishReason == "MAX_TOKENS" {
		return nil, truncated()
	}

	comp := &Completion{
		JSON:  json.RawMessage(result.Text()),
		Model: b.modelID,
	}
	if result.UsageMetadata != nil {
		comp.InputTokens = int(result.UsageMetadata.PromptTokenCount)
		comp.OutputTokens = int(result.UsageMetadata.CandidatesTokenCount)
	}
	return comp, nil
}

// toGenaiSchema converts the subset of JSON Schema the game's prompts
// use (flat objects with string/number/boolean/enum properties) into the
// genai SDK's native schema type. Unrecognized kinds degrade to string.
func toGenaiSchema(def map[string]any) *genai.Schema {
	out := &genai.Schema{Type: genaiType(def)}

	if d, ok := def["description"].(string); ok {
		out.Description = d
	}
	for _, e := range anySlice(def["enum"]) {
		if s, ok := e.(string); ok {
			out.Enum = append(out.Enum, s)
		}
	}
	for _, r := range anySlice(def["required"]) {
		if s, ok := r.(string); ok {
			out.Required = append(out.Required, s)
		}
	}
	if props, ok := def["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, v := range props {
			if sub, ok := v.(map[string]any); ok {
				out.Properties[name] = toGenaiSchema(sub)
			}
		}
	}
	return out
}

func genaiType(def map[string]any) genai.Type {
	t, _ := def["type"].(string)
	switch t {
	case "object":
		return genai.TypeObject
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}

func anySlice(v any) []any {
	s, _ := v.([]any)
	return s
}
