package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/opsdojo/internal/feedback"
	"github.com/abhisek/opsdojo/internal/runs"
)

var answerCmd = &cobra.Command{
	Use:   "answer <run-id> <question-id> <answer>",
	Short: "Submit an answer to a run's current question",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		runID, questionID, answerText := args[0], args[1], args[2]

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
		res, err := mgr.SubmitAnswer(ctx, runID, questionID, answerText)
		if err != nil {
			return err
		}

		fmt.Printf("%s attempt %d/%d\n", verdictLabel(res.Correct), res.AttemptNumber, res.MaxAttempts)
		fmt.Println(styleTeacher.Render(res.Feedback))

		if res.ShouldAdvance && res.RunState == "running" {
			q, idx, err := mgr.NextQuestion(ctx, runID)
			if err != nil {
				return err
			}
			fmt.Printf("\nNext question [%s #%d]:\n", q.ID, idx)
			fmt.Println(styleSystem.Render("? " + q.Prompt))
		}
		return nil
	},
}
