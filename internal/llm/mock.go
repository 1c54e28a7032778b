package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResult is one canned answer for the Mock.
type MockResult struct {
	JSON json.RawMessage
	Err  error
}

// Mock is a deterministic completer for tests: it hands out canned
// results in FIFO order and keeps every prompt it saw. An exhausted
// queue reports a transient fault.
type Mock struct {
	mu      sync.Mutex
	queue   []MockResult
	prompts []Prompt
}

// NewMock creates a Mock preloaded with results.
func NewMock(results ...MockResult) *Mock {
	return &Mock{queue: results}
}

// Complete pops the next canned result.
func (m *Mock) Complete(_ context.Context, p Prompt) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, p)

	if len(m.queue) == 0 {
		return nil, transient(errors.New("mock result queue is empty"))
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Completion{JSON: next.JSON, Model: "mock"}, nil
}

// Enqueue appends another canned result.
func (m *Mock) Enqueue(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, r)
}

// Prompts returns a copy of every prompt seen so far.
func (m *Mock) Prompts() []Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Prompt(nil), m.prompts...)
}

// Model identifies the mock in event logs.
func (m *Mock) Model() string { return "mock" }

// backend plumbing so Config{Backend: "mock"} works through NewClient.
func (m *Mock) complete(ctx context.Context, p Prompt) (*Completion, error) {
	return m.Complete(ctx, p)
}

func (m *Mock) model() string { return m.Model() }
