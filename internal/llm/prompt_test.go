package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSchemaCheck(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{"conforming", `{"level":"guide"}`, true},
		{"missing required field", `{"other":"x"}`, false},
		{"wrong type", `{"level":3}`, false},
		{"not json", `level: guide`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := levelSchema().check(json.RawMessage(tt.raw))
			if tt.wantOK && err != nil {
				t.Fatalf("unexpected rejection: %v", err)
			}
			if !tt.wantOK {
				var fe *Error
				if !errors.As(err, &fe) || fe.Fault != FaultBadOutput {
					t.Fatalf("expected bad-output fault, got %v", err)
				}
			}
		})
	}
}

func TestSchemaCheck_UncompilableDefinition(t *testing.T) {
	s := &Schema{
		Name: "broken",
		Definition: map[string]any{
			"type": []any{func() {}}, // unmarshalable definition
		},
	}
	err := s.check(json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected compile failure to fail closed")
	}
}

func TestSchemaCheck_CompilesOnce(t *testing.T) {
	s := levelSchema()
	for range 3 {
		if err := s.check(json.RawMessage(`{"level":"nudge"}`)); err != nil {
			t.Fatal(err)
		}
	}
	if s.compiled == nil {
		t.Fatal("expected compiled schema to be cached")
	}
}
