package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/opsdojo/internal/feedback"
	"github.com/abhisek/opsdojo/internal/runs"
)

var stopCmd = &cobra.Command{
	Use:   "stop <run-id>",
	Short: "Stop a running run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		mgr := runs.NewManager(s, feedback.New(), runs.Options{})
		run, err := mgr.StopRun(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Run %s stopped. completed=%d failed=%d\n",
			run.ID, run.QuestionsCompleted, run.QuestionsFailed)
		return nil
	},
}
