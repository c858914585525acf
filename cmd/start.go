package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/opsdojo/internal/curriculum"
	"github.com/abhisek/opsdojo/internal/feedback"
	"github.com/abhisek/opsdojo/internal/runs"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a run for manual answering",
	Long: "Creates a run without driving it. Use 'opsdojo answer' to submit answers\n" +
		"and 'opsdojo stop' to end it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		domain, _ := cmd.Flags().GetString("domain")
		level, _ := cmd.Flags().GetInt("level")
		auto, _ := cmd.Flags().GetBool("auto")
		startLevel, _ := cmd.Flags().GetInt("start-level")
		endLevel, _ := cmd.Flags().GetInt("end-level")
		retryFrom, _ := cmd.Flags().GetString("retry-from")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		mgr := runs.NewManager(s, feedback.New(), runs.Options{MaxAttempts: cfg.MaxAttempts})
		run, err := startConfiguredRun(cmd, mgr, s, domain, level, auto, startLevel, endLevel, retryFrom)
		if err != nil {
			return err
		}

		q, idx, err := mgr.NextQuestion(ctx, run.ID)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", styleHeading.Render("Run"), run.ID)
		fmt.Printf("First question [%s #%d]:\n", q.ID, idx)
		fmt.Println(styleSystem.Render("? " + q.Prompt))
		fmt.Printf("\nSubmit with: opsdojo answer %s %s \"<your answer>\"\n", run.ID, q.ID)
		return nil
	},
}

func init() {
	startCmd.Flags().String("domain", curriculum.Domain, "Curriculum domain")
	startCmd.Flags().Int("level", 1, "Level for a single-level run")
	startCmd.Flags().Bool("auto", false, "Level-range run with automatic advancement")
	startCmd.Flags().Int("start-level", 1, "First level of an auto run")
	startCmd.Flags().Int("end-level", 5, "Last level of an auto run")
	startCmd.Flags().String("retry-from", "", "Replay the failed questions of a previous run")
}
