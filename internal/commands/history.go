package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoval/backrep/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past report runs",
	Long:  "List recent report runs recorded in the local history database, newest first.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := db.Initialize(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := db.GetRecentRuns(limit)
		if err != nil {
			fmt.Printf("Error fetching history: %v\n", err)
			return
		}
		if len(runs) == 0 {
			fmt.Println("No report runs recorded yet. Generate one with 'backrep report'.")
			return
		}

		fmt.Printf("%-17s %-24s %-7s %5s %18s  %s\n", "WHEN", "RANGE", "FORMAT", "ROWS", "OK/WARN/FAIL", "OUTPUT")
		fmt.Println(strings.Repeat("-", 96))
		for _, run := range runs {
			format := run.Format
			if format == "" {
				format = "console"
			}
			output := run.OutputPath
			if output == "" {
				output = "-"
			}
			fmt.Printf("%-17s %-24s %-7s %5d %18s  %s\n",
				run.CreatedAt.Format("2006-01-02 15:04"),
				truncateLabel(run.Scope, 24),
				format,
				run.RowCount,
				fmt.Sprintf("%d/%d/%d", run.SuccessCount, run.WarningCount, run.FailedCount),
				output)
		}
	},
}

func truncateLabel(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")
}
