package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/opsdojo/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("opsdojo", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		checker := selfupdate.NewChecker()
		result, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if result.UpdateAvailable {
			fmt.Printf("Update available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
			fmt.Printf("Release: %s\n", result.ReleaseURL)
			fmt.Println("Run 'opsdojo update' to install.")
		} else {
			fmt.Println("You are on the latest version.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
