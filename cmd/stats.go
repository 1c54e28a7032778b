package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucidbard/codequest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-stage play statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		story, err := loadStory(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		repo := s.EventRepo()

		done, err := repo.CompletedStages(ctx)
		if err != nil {
			return fmt.Errorf("query completed stages: %w", err)
		}
		completed := make(map[string]bool, len(done))
		for _, id := range done {
			completed[id] = true
		}

		fmt.Printf("%-4s  %-28s  %8s  %8s  %8s  %8s  %s\n",
			"#", "Stage", "Runs", "Failed", "Checks", "Passed", "Done")
		fmt.Println(strings.Repeat("─", 80))

		var totalRuns, totalFailed int
		for _, stage := range story.Stages {
			st, err := repo.StageStats(ctx, stage.ID)
			if err != nil {
				return fmt.Errorf("stage stats for %s: %w", stage.ID, err)
			}

			doneStr := ""
			if completed[stage.ID] {
				doneStr = "✓"
			}
			title := stage.Title
			if len(title) > 28 {
				title = title[:28]
			}
			fmt.Printf("%-4d  %-28s  %8d  %8d  %8d  %8d  %s\n",
				stage.Ordinal, title, st.Executions, st.Failures,
				st.Validations, st.Passes, doneStr)

			totalRuns += st.Executions
			totalFailed += st.Failures
		}

		fmt.Println(strings.Repeat("─", 80))
		fmt.Printf("%-4s  %-28s  %8d  %8d\n", "", "TOTAL", totalRuns, totalFailed)
		fmt.Printf("\nStages completed: %d/%d\n", len(done), len(story.Stages))

		return nil
	},
}
