package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "File loose notes into their category folders",
	Long: `Sweeps the configured source folders for markdown notes that are not yet
inside a category folder and moves each one: the category comes from the
note's front matter when present, otherwise from a fresh analysis.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		report := appInstance.Organizer.Run(cmd.Context())

		for _, m := range report.Moved {
			fmt.Printf("  %s %s -> %s\n", color.GreenString("Moved"), m.From, m.To)
		}
		for _, e := range report.Errors {
			fmt.Printf("  %s %s\n", color.RedString("ERROR"), e)
		}
		fmt.Printf("Moved %d, skipped %d, errors %d\n",
			len(report.Moved), report.Skipped, len(report.Errors))

		if len(report.Errors) > 0 {
			return fmt.Errorf("organize finished with %d errors", len(report.Errors))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(organizeCmd)
}
