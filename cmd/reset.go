package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all run history",
	Long:  "Deletes runs, attempts, and transcripts. Seeded curriculum questions are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to delete run history without --force")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		client := s.Client()

		attempts, err := client.Attempt.Delete().Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		messages, err := client.Message.Delete().Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}
		runCount, err := client.Run.Delete().Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete runs: %w", err)
		}
		if _, err := s.DB().ExecContext(ctx, "DELETE FROM transcript_sequence"); err != nil {
			return fmt.Errorf("reset transcript sequences: %w", err)
		}

		fmt.Printf("Deleted %d runs, %d attempts, %d messages.\n", runCount, attempts, messages)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the data")
}
