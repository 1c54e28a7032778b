package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lucidbard/codequest/internal/llm"
	"github.com/lucidbard/codequest/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

// openStore opens the event database for a CLI command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().LLMRequests(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTIMESTAMP\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				clip(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return w.Flush()
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().LLMRequests(context.Background(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		var rec *store.LLMRequestRecord
		for i := range events {
			if events[i].ID == id {
				rec = &events[i]
				break
			}
		}
		if rec == nil {
			return fmt.Errorf("event %d not found", id)
		}

		fmt.Printf("ID:        %d\n", rec.ID)
		fmt.Printf("Time:      %s\n", rec.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", rec.Provider)
		fmt.Printf("Model:     %s\n", rec.Model)
		fmt.Printf("Purpose:   %s\n", rec.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", rec.InputTokens, rec.OutputTokens)
		fmt.Printf("Latency:   %dms\n", rec.LatencyMs)
		fmt.Printf("Success:   %v\n", rec.Success)
		if rec.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", rec.ErrorMessage)
		}

		printBody("REQUEST", rec.RequestBody)
		printBody("RESPONSE", rec.ResponseBody)
		return nil
	},
}

func printBody(label, body string) {
	sep := strings.Repeat("─", 60)
	fmt.Println()
	fmt.Println(sep)
	fmt.Println(label)
	fmt.Println(sep)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Println(body)
}

// tally accumulates call and token counts for one grouping key.
type tally struct {
	calls     int
	inTokens  int
	outTokens int
	latencyMs int64
}

// groupBy folds events into tallies keyed by key(e), returning keys in
// first-seen order.
func groupBy(events []store.LLMRequestRecord, key func(store.LLMRequestRecord) string) ([]string, map[string]*tally) {
	var order []string
	groups := make(map[string]*tally)
	for _, e := range events {
		k := key(e)
		g := groups[k]
		if g == nil {
			g = &tally{}
			groups[k] = g
			order = append(order, k)
		}
		g.calls++
		g.inTokens += e.InputTokens
		g.outTokens += e.OutputTokens
		g.latencyMs += e.LatencyMs
	}
	return order, groups
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().LLMRequests(context.Background(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		purposes, byPurpose := groupBy(events, func(e store.LLMRequestRecord) string { return e.Purpose })
		models, byModel := groupBy(events, func(e store.LLMRequestRecord) string { return e.Model })

		fmt.Println("Usage by Purpose")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tTOTAL\tAVG MS\t")
		grand := tally{}
		for _, p := range purposes {
			g := byPurpose[p]
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t\n",
				p, g.calls, g.inTokens, g.outTokens, g.inTokens+g.outTokens, g.latencyMs/int64(g.calls))
			grand.calls += g.calls
			grand.inTokens += g.inTokens
			grand.outTokens += g.outTokens
		}
		fmt.Fprintf(w, "TOTAL\t%d\t%d\t%d\t%d\t\t\n",
			grand.calls, grand.inTokens, grand.outTokens, grand.inTokens+grand.outTokens)
		w.Flush()

		fmt.Println()
		fmt.Println("Estimated Cost (USD)")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "MODEL\tCALLS\tINPUT\tOUTPUT\tCOST\t")

		var totalCost float64
		var unpriced []string
		for _, m := range models {
			g := byModel[m]
			cost := llm.LookupCost(m)
			if cost == nil {
				unpriced = append(unpriced, m)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t?\t\n", clip(m, 32), g.calls, g.inTokens, g.outTokens)
				continue
			}
			c := cost.Cost(g.inTokens, g.outTokens)
			totalCost += c
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t\n", clip(m, 32), g.calls, g.inTokens, g.outTokens, formatCost(c))
		}
		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(w, "%s\t\t\t\t%s\t\n", label, formatCost(totalCost))
		w.Flush()

		if len(unpriced) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. hint)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
