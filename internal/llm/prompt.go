// Package llm turns a single structured prompt into validated JSON from
// one of several hosted model backends. Hint generation is the only
// consumer, so the surface is deliberately narrow: one prompt in, one
// schema-checked completion out, with retries and event recording
// handled inside the client.
package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Prompt is one self-contained completion request. There is no
// conversation history; every call stands alone.
type Prompt struct {
	// System frames the model's role.
	System string

	// User is the task text.
	User string

	// Schema constrains the response to a JSON shape. Nil means raw
	// text, returned wrapped as a JSON string.
	Schema *Schema

	// Purpose labels the request in the event log ("hint").
	Purpose string

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls sampling randomness, 0.0 to 1.0.
	Temperature float64
}

// Completion is the model's answer to a Prompt.
type Completion struct {
	// JSON is the response body. When the prompt carried a Schema it has
	// already been validated against it.
	JSON json.RawMessage

	// Model is the model ID that actually served the request.
	Model string

	InputTokens  int
	OutputTokens int
}

// Schema names a JSON shape the completion must satisfy. The definition
// compiles lazily on first use and the compiled form is reused for the
// lifetime of the Schema value, so declare schemas as package variables.
type Schema struct {
	// Name identifies the schema to backends that want one, kebab-case.
	Name string

	// Description tells the model what the shape represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	compErr  error
}

// check validates raw against the schema, compiling it on first call.
// Failures come back as *Error with FaultBadOutput so the client knows
// they are worth one retry.
func (s *Schema) check(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return badOutput(raw, fmt.Errorf("response is not JSON: %w", err))
	}

	s.once.Do(func() {
		s.compiled, s.compErr = s.compile()
	})
	if s.compErr != nil {
		return badOutput(raw, fmt.Errorf("schema %q does not compile: %w", s.Name, s.compErr))
	}

	if err := s.compiled.Validate(doc); err != nil {
		return badOutput(raw, fmt.Errorf("response violates schema %q: %w", s.Name, err))
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	// The compiler wants json.Unmarshal value types, so round-trip the
	// definition map through encoding first.
	encoded, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("mem://%s.json", s.Name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
