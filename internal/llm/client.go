package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/lucidbard/codequest/internal/store"
)

// backend is the raw provider call. Client layers retry, schema
// checking, and event recording on top of exactly one of these.
type backend interface {
	complete(ctx context.Context, p Prompt) (*Completion, error)
	model() string
}

// newBackend constructs the backend the config names.
func newBackend(ctx context.Context, cfg Config) (backend, error) {
	switch cfg.Backend {
	case "anthropic":
		return newAnthropicBackend(cfg), nil
	case "openai":
		return newOpenAIBackend(cfg), nil
	case "openrouter":
		// OpenRouter speaks the OpenAI wire protocol.
		if cfg.BaseURL == "" {
			cfg.BaseURL = openRouterBaseURL
		}
		return newOpenAIBackend(cfg), nil
	case "gemini":
		return newGeminiBackend(ctx, cfg)
	case "mock":
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown LLM backend %q", cfg.Backend)
	}
}

// RetryPolicy bounds how hard the client leans on a flaky backend.
// Waits double per attempt, capped at MaxWait, with ±20% jitter.
type RetryPolicy struct {
	MaxAttempts int
	BaseWait    time.Duration
	MaxWait     time.Duration
}

// DefaultRetryPolicy suits interactive hint generation: give up fast
// enough that the player is not left staring at a spinner.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseWait:    time.Second,
		MaxWait:     10 * time.Second,
	}
}

// Client completes prompts against one configured backend. Every
// attempt, successful or not, lands in the event log when a repo is
// attached.
type Client struct {
	backend backend
	retry   RetryPolicy
	events  store.EventRepo
}

// NewClient builds a client from configuration. A nil events repo
// disables request recording.
func NewClient(ctx context.Context, cfg Config, events store.EventRepo) (*Client, error) {
	b, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Client{backend: b, retry: cfg.Retry, events: events}, nil
}

// NewClientFromEnv builds a client from CODEQUEST_LLM_* environment
// variables.
func NewClientFromEnv(ctx context.Context, events store.EventRepo) (*Client, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewClient(ctx, cfg, events)
}

// Model returns the model ID the client is configured to use.
func (c *Client) Model() string { return c.backend.model() }

// Complete runs the prompt, retrying transient and throttled faults with
// backoff and giving schema violations exactly one more try. Truncation
// and context cancellation surface immediately.
func (c *Client) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	var lastErr error
	retriedBadOutput := false

	for attempt := 0; attempt < c.retry.MaxAttempts; attempt++ {
		start := time.Now()
		comp, err := c.backend.complete(ctx, p)
		if err == nil && p.Schema != nil {
			err = p.Schema.check(comp.JSON)
		}
		c.record(ctx, p, comp, err, time.Since(start))

		if err == nil {
			return comp, nil
		}
		lastErr = err

		if !retryable(err, &retriedBadOutput) || attempt == c.retry.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retry.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

// retryable decides whether err is worth another attempt. Bad output
// gets one retry; the flag remembers whether it was spent.
func retryable(err error, retriedBadOutput *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var fe *Error
	if !errors.As(err, &fe) {
		// Unclassified errors are assumed transient.
		return true
	}

	switch fe.Fault {
	case FaultTruncated:
		return false
	case FaultBadOutput:
		if *retriedBadOutput {
			return false
		}
		*retriedBadOutput = true
		return true
	default:
		return true
	}
}

// wait computes the pause before the next attempt, preferring the
// backend's own throttle hint when it gave one.
func (r RetryPolicy) wait(attempt int, err error) time.Duration {
	var fe *Error
	if errors.As(err, &fe) && fe.RetryAfter > 0 {
		return fe.RetryAfter
	}

	d := r.BaseWait << attempt
	if d > r.MaxWait {
		d = r.MaxWait
	}
	jitter := 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(float64(d) * jitter)
}

// record appends the attempt to the event log. Recording failures warn
// on stderr; they never fail the completion itself.
func (c *Client) record(ctx context.Context, p Prompt, comp *Completion, err error, took time.Duration) {
	if c.events == nil {
		return
	}

	data := store.LLMRequestEventData{
		Provider:    c.backend.model(),
		Model:       c.backend.model(),
		Purpose:     p.Purpose,
		LatencyMs:   took.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(p),
	}
	if comp != nil {
		data.Model = comp.Model
		data.InputTokens = comp.InputTokens
		data.OutputTokens = comp.OutputTokens
		data.ResponseBody = string(comp.JSON)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		var fe *Error
		if errors.As(err, &fe) && len(fe.Raw) > 0 {
			data.ResponseBody = string(fe.Raw)
		}
	}

	if appendErr := c.events.AppendLLMRequest(ctx, data); appendErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM request: %v\n", appendErr)
	}
}

// transcript renders the prompt for the event log, readable enough to
// replay a hint request by eye.
func transcript(p Prompt) string {
	var b strings.Builder
	if p.System != "" {
		b.WriteString("== system ==\n")
		b.WriteString(p.System)
		b.WriteString("\n\n")
	}
	b.WriteString("== user ==\n")
	b.WriteString(p.User)
	b.WriteString("\n")
	if p.Schema != nil {
		if def, err := json.Marshal(p.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n== schema %s ==\n%s\n", p.Schema.Name, def)
		}
	}
	return b.String()
}
