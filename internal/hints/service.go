package hints

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lucidbard/codequest/internal/llm"
)

// Completer is the slice of the LLM client hint generation needs.
type Completer interface {
	Complete(ctx context.Context, p llm.Prompt) (*llm.Completion, error)
}

// Service generates hints asynchronously.
type Service struct {
	client Completer
	cfg    Config

	mu      sync.Mutex
	pending *Hint
	err     error
	ready   bool
}

// NewService creates a hint generation service.
func NewService(client Completer, cfg Config) *Service {
	return &Service{client: client, cfg: cfg}
}

// RequestHint starts async hint generation. Only one hint is in-flight
// at a time — new requests replace pending ones.
func (s *Service) RequestHint(ctx context.Context, input Input) {
	go func() {
		hint, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = hint
		s.err = err
		s.ready = true
	}()
}

// ConsumeHint takes the completed generation out of the mailbox, hint
// and error together under one lock. Returns done=false while generation
// is still in flight. After consumption the slot is cleared.
func (s *Service) ConsumeHint() (hint *Hint, err error, done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, nil, false
	}
	hint, err = s.pending, s.err
	s.pending = nil
	s.err = nil
	s.ready = false
	return hint, err, true
}

type hintOutput struct {
	Level string `json:"level"`
	Hint  string `json:"hint"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Hint, error) {
	p := llm.Prompt{
		System:      hintSystemPrompt,
		User:        buildHintUserMessage(input),
		Schema:      HintSchema,
		Purpose:     "hint",
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.client.Complete(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("hint generation: %w", err)
	}

	var out hintOutput
	if err := json.Unmarshal(resp.JSON, &out); err != nil {
		return nil, fmt.Errorf("parse hint response: %w", err)
	}

	return &Hint{
		StageID: input.StageID,
		Level:   out.Level,
		Text:    out.Hint,
	}, nil
}
