package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"memofiler/internal/services"
)

var saveCmd = &cobra.Command{
	Use:   "save [input]",
	Short: "Analyze a memo and file it into the vault",
	Long: `Runs the analysis pipeline and writes the memo as a markdown note under
the inbox folder of the vault, in its category subfolder. Related notes
get a reverse link back to the new note.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		content, err := readInput(args[0])
		if err != nil {
			return err
		}

		result, path, err := appInstance.MemoService.Save(cmd.Context(), services.AnalyzeParams{
			Content:  content,
			Override: buildOverride(),
		})
		if err != nil {
			return err
		}

		printResult(result)
		fmt.Printf("%s %s\n", color.GreenString("Saved:"), path)
		return nil
	},
}

func init() {
	// Save shares the override flags with analyze.
	saveCmd.Flags().StringVar(&analyzeTitle, "title", "", "Override the generated title")
	saveCmd.Flags().StringVar(&analyzeCategory, "category", "", "Override the detected category")
	saveCmd.Flags().StringSliceVar(&analyzeTags, "tags", nil, "Override the generated tags")

	rootCmd.AddCommand(saveCmd)
}
