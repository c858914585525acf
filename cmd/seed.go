package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/opsdojo/internal/curriculum"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the built-in curriculum into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := curriculum.Validate(); err != nil {
			return fmt.Errorf("curriculum invalid: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := curriculum.Seed(cmd.Context(), s)
		if err != nil {
			return fmt.Errorf("seed curriculum: %w", err)
		}

		// Report what the database ended up with, not what the bank holds.
		levels, err := s.QuestionRepo().Levels(cmd.Context(), curriculum.Domain)
		if err != nil {
			return fmt.Errorf("list seeded levels: %w", err)
		}

		if n == 0 {
			fmt.Printf("Curriculum already seeded (levels %v).\n", levels)
			return nil
		}
		fmt.Printf("Seeded %d questions across levels %v.\n", n, levels)
		return nil
	},
}
