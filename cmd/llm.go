package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/opsdojo/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM configuration and request events",
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

		events, err := s.LLMEventRepo().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check which LLM provider the environment configures",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Println("No LLM provider configured.")
			fmt.Println("Set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY,")
			fmt.Println("or OPSDOJO_LLM_PROVIDER to select one explicitly.")
			return nil
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("provider configuration invalid: %w", err)
		}

		fmt.Printf("Provider: %s\n", cfg.Provider)
		switch cfg.Provider {
		case "anthropic":
			fmt.Printf("Model:    %s\n", cfg.Anthropic.Model)
		case "openai":
			fmt.Printf("Model:    %s\n", cfg.OpenAI.Model)
			if cfg.OpenAI.BaseURL != "" {
				fmt.Printf("BaseURL:  %s\n", cfg.OpenAI.BaseURL)
			}
		case "gemini":
			fmt.Printf("Model:    %s\n", cfg.Gemini.Model)
		}
		fmt.Printf("Timeout:  %s\n", cfg.Timeout)
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (answer, feedback)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmCheckCmd)
}
