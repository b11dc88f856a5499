package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"memofiler/internal/models"
	"memofiler/internal/services"
)

var (
	analyzeTitle    string
	analyzeCategory string
	analyzeTags     []string
	analyzeQuick    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input]",
	Short: "Analyze a memo without saving it",
	Long: `Runs the full analysis pipeline on the given text and prints the result:
category, title, tags, related vault notes and a summary. The input is a
file path or a raw text string. Nothing is written to the vault.`,
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

		result := appInstance.MemoService.Analyze(cmd.Context(), services.AnalyzeParams{
			Content:       content,
			Override:      buildOverride(),
			SkipRelations: analyzeQuick,
		})
		if !result.Success {
			return fmt.Errorf("analysis failed: %s", result.Error)
		}

		printResult(result)
		return nil
	},
}

// readInput resolves the positional argument: an existing file is read,
// anything else is treated as the memo text itself.
func readInput(raw string) (string, error) {
	if info, err := os.Stat(raw); err == nil && !info.IsDir() {
		data, err := os.ReadFile(raw)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	return raw, nil
}

func buildOverride() *models.AnalysisOverride {
	o := &models.AnalysisOverride{
		Title:    analyzeTitle,
		Category: analyzeCategory,
		Tags:     analyzeTags,
	}
	if o.Empty() {
		return nil
	}
	return o
}

func printResult(result models.AnalysisResult) {
	fmt.Printf("%s %s\n", color.CyanString("Title:"), result.Title.Title)
	fmt.Printf("%s %s (%.0f%%)\n", color.CyanString("Category:"),
		result.Category.Name, result.Category.Confidence*100)
	if result.Category.SpecialRule != "" {
		fmt.Printf("  rule: %s\n", result.Category.SpecialRule)
	}
	if len(result.Tags.Tags) > 0 {
		fmt.Printf("%s %s\n", color.CyanString("Tags:"), strings.Join(result.Tags.Tags, " "))
	}
	if len(result.Relations.Relations) > 0 {
		fmt.Println(color.CyanString("Related:"))
		for _, rel := range result.Relations.Relations {
			fmt.Printf("  %s %s (%.2f)\n", rel.Stars(), rel.DisplayName, rel.Score)
		}
	}
	if len(result.Summary.Points) > 0 {
		fmt.Println(color.CyanString("Summary:"))
		for _, p := range result.Summary.Points {
			fmt.Printf("  - %s\n", p)
		}
	}
	if result.Oracle {
		fmt.Println(color.YellowString("(deep analysis)"))
	}
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Override the generated title")
	analyzeCmd.Flags().StringVar(&analyzeCategory, "category", "", "Override the detected category")
	analyzeCmd.Flags().StringSliceVar(&analyzeTags, "tags", nil, "Override the generated tags")
	analyzeCmd.Flags().BoolVar(&analyzeQuick, "quick", false, "Skip the related-note scan")

	rootCmd.AddCommand(analyzeCmd)
}
