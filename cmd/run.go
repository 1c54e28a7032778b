package cmd

import (
	"fmt"
	"os"

	"github.com/lucidbard/codequest/internal/app"
	"github.com/lucidbard/codequest/internal/hints"
	"github.com/lucidbard/codequest/internal/llm"
	"github.com/lucidbard/codequest/internal/store"
	"github.com/lucidbard/codequest/internal/story"
	"github.com/lucidbard/codequest/internal/verdict"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	s, err := loadStory(cmd)
	if err != nil {
		return err
	}

	eventRepo := st.EventRepo()
	opts := app.Options{
		Story:        s,
		Validator:    verdict.New(verdict.DefaultConfig()),
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
	}

	client, err := llm.NewClientFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM backend not configured:", err)
		fmt.Fprintln(os.Stderr, "Hints will be unavailable.")
	} else {
		opts.HintService = hints.NewService(client, hints.DefaultConfig())
	}

	return app.Run(opts)
}

// loadStory reads the --story flag, falling back to the built-in story.
func loadStory(cmd *cobra.Command) (*story.Story, error) {
	if p, _ := cmd.Flags().GetString("story"); p != "" {
		s, err := story.Load(p)
		if err != nil {
			return nil, fmt.Errorf("load story %s: %w", p, err)
		}
		return s, nil
	}
	s, err := story.Default()
	if err != nil {
		return nil, fmt.Errorf("load built-in story: %w", err)
	}
	return s, nil
}
