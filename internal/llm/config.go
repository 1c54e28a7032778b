package llm

import (
	"fmt"
	"os"
)

// Config selects and configures exactly one backend. The game talks to a
// single model at a time, so there is no per-provider section to fill
// out. All fields map to CODEQUEST_LLM_* environment variables.
type Config struct {
	// Backend is one of "anthropic", "openai", "gemini", "openrouter",
	// or "mock".
	Backend string

	// APIKey authenticates against the chosen backend.
	APIKey string

	// Model overrides the backend's default model ID.
	Model string

	// BaseURL overrides the API endpoint, for OpenAI-compatible hosts.
	BaseURL string

	Retry RetryPolicy
}

// defaultModels picks a small fast model per backend. Hints are short
// and latency-sensitive.
var defaultModels = map[string]string{
	"anthropic":  "claude-haiku-4-5-20251001",
	"openai":     "gpt-4o-mini",
	"gemini":     "gemini-2.0-flash",
	"openrouter": "google/gemini-2.0-flash-exp",
}

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// ConfigFromEnv reads CODEQUEST_LLM_BACKEND, CODEQUEST_LLM_API_KEY,
// CODEQUEST_LLM_MODEL, and CODEQUEST_LLM_BASE_URL, defaulting the
// backend to anthropic and the model per backend.
func ConfigFromEnv() Config {
	cfg := Config{
		Backend: "anthropic",
		Retry:   DefaultRetryPolicy(),
	}
	if b := os.Getenv("CODEQUEST_LLM_BACKEND"); b != "" {
		cfg.Backend = b
	}
	cfg.APIKey = os.Getenv("CODEQUEST_LLM_API_KEY")
	cfg.BaseURL = os.Getenv("CODEQUEST_LLM_BASE_URL")

	cfg.Model = os.Getenv("CODEQUEST_LLM_MODEL")
	if cfg.Model == "" {
		cfg.Model = defaultModels[cfg.Backend]
	}
	return cfg
}

// Validate checks the config names a known backend and carries the
// credentials it needs.
func (c Config) Validate() error {
	switch c.Backend {
	case "anthropic", "openai", "gemini", "openrouter":
		if c.APIKey == "" {
			return fmt.Errorf("CODEQUEST_LLM_API_KEY is not set")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM backend %q", c.Backend)
	}
	return nil
}
