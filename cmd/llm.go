package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/wordmaster/internal/llm"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM usage",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		storePath, err := resolveStorePath(cmd)
		if err != nil {
			return fmt.Errorf("resolve store path: %w", err)
		}

		usage := llm.OpenUsageLog(usageLogPath(storePath))
		records, err := usage.Tail(limit)
		if err != nil {
			return fmt.Errorf("read usage log: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		// Header.
		fmt.Printf("%-19s  %-12s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Timestamp", "Provider", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 104))

		for _, r := range records {
			if purpose != "" && r.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			model := r.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-19s  %-12s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Provider,
				r.Purpose,
				model,
				r.InputTokens,
				r.OutputTokens,
				r.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show aggregated token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		storePath, err := resolveStorePath(cmd)
		if err != nil {
			return fmt.Errorf("resolve store path: %w", err)
		}

		usage := llm.OpenUsageLog(usageLogPath(storePath))
		records, err := usage.Tail(0)
		if err != nil {
			return fmt.Errorf("read usage log: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		type agg struct {
			calls, failures     int
			inTokens, outTokens int
			totalLatency        int64
		}
		byModel := make(map[string]*agg)
		var order []string
		for _, r := range records {
			a, ok := byModel[r.Model]
			if !ok {
				a = &agg{}
				byModel[r.Model] = a
				order = append(order, r.Model)
			}
			a.calls++
			if !r.Success {
				a.failures++
			}
			a.inTokens += r.InputTokens
			a.outTokens += r.OutputTokens
			a.totalLatency += r.LatencyMs
		}

		fmt.Println("Usage by Model")
		fmt.Println(strings.Repeat("─", 84))
		fmt.Printf("%-32s  %6s  %6s  %10s  %10s  %8s\n",
			"Model", "Calls", "Failed", "Input", "Output", "Avg Ms")
		fmt.Println(strings.Repeat("─", 84))

		var totalCalls, totalIn, totalOut int
		for _, model := range order {
			a := byModel[model]
			name := model
			if len(name) > 32 {
				name = name[:32]
			}
			fmt.Printf("%-32s  %6d  %6d  %10d  %10d  %8d\n",
				name, a.calls, a.failures, a.inTokens, a.outTokens,
				a.totalLatency/int64(a.calls))
			totalCalls += a.calls
			totalIn += a.inTokens
			totalOut += a.outTokens
		}

		fmt.Println(strings.Repeat("─", 84))
		fmt.Printf("%-32s  %6d  %6s  %10d  %10d\n",
			"TOTAL", totalCalls, "", totalIn, totalOut)
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. word-gen)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
}
