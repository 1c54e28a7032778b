package story

// storySchema is the JSON Schema every story file must satisfy before
// decoding. Structural rules the schema cannot express (contiguous
// ordinals, dense cell indexes, compilable criteria regexes) are checked
// separately by the loader.
var storySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{"type": "string", "minLength": 1},
		"stages": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    stageSchema,
		},
	},
	"required":             []any{"title", "stages"},
	"additionalProperties": false,
}

var stageSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":        map[string]any{"type": "string", "minLength": 1},
		"ordinal":   map[string]any{"type": "integer", "minimum": 1},
		"title":     map[string]any{"type": "string", "minLength": 1},
		"narrative": map[string]any{"type": "string"},
		"language": map[string]any{
			"type": "string",
			"enum": []any{"starlark", "go"},
		},
		"mode": map[string]any{
			"type": "string",
			"enum": []any{"single", "multi-cell"},
		},
		"cells": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"index":   map[string]any{"type": "integer", "minimum": 0},
					"prompt":  map[string]any{"type": "string"},
					"starter": map[string]any{"type": "string"},
				},
				"required":             []any{"index"},
				"additionalProperties": false,
			},
		},
		"criteria": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"requiredTexts": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "minLength": 1},
				},
				"requiredNumbers": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "number"},
				},
				"outputPatterns": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "minLength": 1},
				},
				"codePatterns": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "minLength": 1},
				},
			},
			"additionalProperties": false,
		},
	},
	"required":             []any{"id", "ordinal", "title", "mode", "cells", "criteria"},
	"additionalProperties": false,
}
