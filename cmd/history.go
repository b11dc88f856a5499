package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	historyLimit     int
	historyPruneDays int
)

// historyCmd represents the base command for analysis history operations
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View analysis history",
	Long:  `Displays past analysis runs recorded by the application.`,
	Run: func(cmd *cobra.Command, args []string) {
		listHistoryCmd.Run(cmd, args)
	},
}

var listHistoryCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analysis runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		records, err := appInstance.MemoService.ListHistory(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("error listing analysis history: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No analysis history found.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Title", "Category", "Conf", "Tags", "Saved", "Created At"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, r := range records {
			saved := ""
			if r.Saved {
				saved = "yes"
			}
			table.Append([]string{
				r.Title,
				r.Category,
				fmt.Sprintf("%.2f", r.Confidence),
				strconv.Itoa(r.TagCount),
				saved,
				r.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		table.Render()
		return nil
	},
}

var statsHistoryCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-category analysis counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		counts, err := appInstance.MemoService.CategoryCounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("error counting categories: %w", err)
		}
		if len(counts) == 0 {
			fmt.Println("No analysis history found.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Category", "Count"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		// Stable row order: configured categories first, then the rest.
		seen := map[string]bool{}
		for _, name := range appInstance.Rules.CategoryNames() {
			if n, ok := counts[name]; ok {
				table.Append([]string{name, strconv.Itoa(n)})
				seen[name] = true
			}
		}
		for name, n := range counts {
			if !seen[name] {
				table.Append([]string{name, strconv.Itoa(n)})
			}
		}
		table.Render()
		return nil
	},
}

var pruneHistoryCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete history entries older than the given age",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		cutoff := time.Now().AddDate(0, 0, -historyPruneDays)
		n, err := appInstance.History.PruneAnalyses(cmd.Context(), cutoff)
		if err != nil {
			return fmt.Errorf("error pruning analysis history: %w", err)
		}
		fmt.Printf("Pruned %d history entries older than %d days.\n", n, historyPruneDays)
		return nil
	},
}

func init() {
	listHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of history entries to show")
	pruneHistoryCmd.Flags().IntVar(&historyPruneDays, "days", 90, "Age in days past which entries are deleted")

	historyCmd.AddCommand(listHistoryCmd)
	historyCmd.AddCommand(statsHistoryCmd)
	historyCmd.AddCommand(pruneHistoryCmd)

	rootCmd.AddCommand(historyCmd)
}
