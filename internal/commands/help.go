package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for backrep",
	Long:  `Display detailed help for all backrep commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██████╗  █████╗  ██████╗██╗  ██╗██████╗ ███████╗██████╗
██╔══██╗██╔══██╗██╔════╝██║ ██╔╝██╔══██╗██╔════╝██╔══██╗
██████╔╝███████║██║     █████╔╝ ██████╔╝█████╗  ██████╔╝
██╔══██╗██╔══██║██║     ██╔═██╗ ██╔══██╗██╔══╝  ██╔═══╝
██████╔╝██║  ██║╚██████╗██║  ██╗██║  ██║███████╗██║
╚═════╝ ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝

backrep - Backup session reports

COMMANDS:

  report                  Generate a session report for a time window
    -s, --scope           Preset window: 24h | 7d | all
    --from, --to          Explicit range bounds (mutually exclusive with --scope)
    -f, --format          Export format: csv | html (omit for console output)
    -o, --out             Export directory (falls back to ~/backrep-reports
                          with a warning if it cannot be created)
    --no-open             Skip revealing the export folder after writing
    --ui                  Browse the report in an interactive table

  jobs                    List the platform's backup jobs and job types
  history                 List past report runs (-n to change the limit)
  version                 Show version information
  help                    Show this help

CONFIGURATION:

  ~/.backrep/config.yaml  base_url, token, timeout_seconds, export_dir
  BACKREP_TOKEN           Overrides the configured API token

Exported files are named SessionsReport.csv / SessionsReport.html and are
overwritten on every run.

`)
}
