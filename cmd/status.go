package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/opsdojo/internal/feedback"
	"github.com/abhisek/opsdojo/internal/runs"
)

var statusCmd = &cobra.Command{
	Use:   "status <run-id>",
	Short: "Show a run's state and counters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		withTranscript, _ := cmd.Flags().GetBool("transcript")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		mgr := runs.NewManager(s, feedback.New(), runs.Options{})
		run, err := mgr.GetRun(ctx, args[0])
		if err != nil {
			return err
		}

		meta := run.Metadata
		fmt.Printf("%s %s\n", styleHeading.Render("Run"), run.ID)
		fmt.Printf("Mode:      %s\n", run.Mode)
		fmt.Printf("State:     %s\n", run.State)
		fmt.Printf("Cursor:    %d\n", run.Cursor)
		fmt.Printf("Completed: %d\n", run.QuestionsCompleted)
		fmt.Printf("Failed:    %d\n", run.QuestionsFailed)
		switch {
		case meta.AutoMode:
			fmt.Printf("Levels:    %d..%d (current %d)\n", meta.StartLevel, meta.EndLevel, meta.CurrentLevel)
		case len(meta.RetryIDs) > 0:
			fmt.Printf("Retrying:  %d questions\n", len(meta.RetryIDs))
		default:
			fmt.Printf("Level:     %s/%d\n", meta.Domain, meta.LevelNumber)
		}

		if !withTranscript {
			return nil
		}

		msgs, err := mgr.Transcript(ctx, run.ID)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(styleHeading.Render("Transcript"))
		for _, m := range msgs {
			line := fmt.Sprintf("%4d  %-7s  %s", m.Sequence, m.Role, m.Body)
			fmt.Println(roleStyle(string(m.Role)).Render(line))
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().Bool("transcript", false, "Print the full ordered message log")
}
