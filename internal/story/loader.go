// Package story loads and validates curriculum content: the ordered
// stages, their cells, and their success criteria. Content is data, and
// the loader is the only place configuration mistakes are allowed to
// become errors — everything downstream assumes a well-formed Story.
package story

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/lucidbard/codequest/internal/verdict"
)

//go:embed content/story.json
var defaultContent embed.FS

// Default returns the built-in curriculum embedded in the binary.
func Default() (*Story, error) {
	data, err := defaultContent.ReadFile("content/story.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded story: %w", err)
	}
	return Parse(data, "json")
}

// Load reads a story file, picking the format from the extension
// (.json, .yaml, .yml).
func Load(path string) (*Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read story file: %w", err)
	}

	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	}
	return Parse(data, format)
}

// Parse validates raw content against the story schema, decodes it, and
// applies the structural checks the schema cannot express.
func Parse(data []byte, format string) (*Story, error) {
	var parsed any
	switch format {
	case "json":
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parse story JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parse story YAML: %w", err)
		}
		parsed = normalizeYAML(parsed)
	default:
		return nil, fmt.Errorf("unknown story format: %q", format)
	}

	// Round-trip through JSON so YAML and JSON content validate and
	// decode identically (the schema library expects json.Unmarshal's
	// value types).
	canonical, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("canonicalize story: %w", err)
	}
	var clean any
	if err := json.Unmarshal(canonical, &clean); err != nil {
		return nil, fmt.Errorf("canonicalize story: %w", err)
	}

	if err := validateSchema(clean); err != nil {
		return nil, err
	}

	var s Story
	if err := json.Unmarshal(canonical, &s); err != nil {
		return nil, fmt.Errorf("decode story: %w", err)
	}

	if err := validateStructure(&s); err != nil {
		return nil, err
	}

	s.index()
	return &s, nil
}

// validateSchema checks parsed content against the embedded JSON Schema.
func validateSchema(parsed any) error {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://story.json", storySchema); err != nil {
		return fmt.Errorf("add story schema: %w", err)
	}
	compiled, err := c.Compile("schema://story.json")
	if err != nil {
		return fmt.Errorf("compile story schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("story content invalid: %w", err)
	}
	return nil
}

// validateStructure enforces the rules that make runtime code simple:
// ordinals are 1..N in order, cell indexes are 0..M-1 in order, single
// mode means exactly one cell, criteria regexes compile, and stage IDs
// are unique.
func validateStructure(s *Story) error {
	seen := make(map[string]bool, len(s.Stages))
	for i := range s.Stages {
		st := &s.Stages[i]

		if st.Ordinal != i+1 {
			return fmt.Errorf("stage %q: ordinal %d out of sequence (want %d)", st.ID, st.Ordinal, i+1)
		}
		if seen[st.ID] {
			return fmt.Errorf("duplicate stage ID %q", st.ID)
		}
		seen[st.ID] = true

		if st.Mode == ModeSingle && len(st.Cells) != 1 {
			return fmt.Errorf("stage %q: single mode requires exactly one cell, has %d", st.ID, len(st.Cells))
		}
		for j, cell := range st.Cells {
			if cell.Index != j {
				return fmt.Errorf("stage %q: cell index %d out of sequence (want %d)", st.ID, cell.Index, j)
			}
		}

		if err := verdict.CheckPatterns(st.Criteria); err != nil {
			return fmt.Errorf("stage %q: criteria regex: %w", st.ID, err)
		}
	}
	return nil
}

// normalizeYAML converts yaml.v3's map[string]any values recursively so
// they marshal to JSON cleanly. yaml.v3 already yields string keys for
// string-keyed maps; nested map[any]any only appears for exotic keys,
// which story content never uses, but handle it anyway.
func normalizeYAML(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i := range v {
			v[i] = normalizeYAML(v[i])
		}
		return v
	default:
		return v
	}
}
