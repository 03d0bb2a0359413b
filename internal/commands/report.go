package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkoval/backrep/internal/config"
	"github.com/dkoval/backrep/internal/db"
	"github.com/dkoval/backrep/internal/platform"
	"github.com/dkoval/backrep/internal/report"
	"github.com/dkoval/backrep/internal/tui"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a session report for a time window",
	Long: `Generate a report of backup job sessions inside a time window.

The window is either a preset scope or an explicit range:
  backrep report --scope 24h              # last 24 hours
  backrep report --scope 7d               # last 7 days
  backrep report --scope all              # everything the platform knows
  backrep report --from "2026-01-01" --to "2026-02-01 12:00"

Without --format the report prints to the console (add --ui for an
interactive browser). With --format it is written to --out:
  backrep report --scope 7d --format csv --out /srv/reports
  backrep report --scope 7d --format html --out /srv/reports

Timestamps accept RFC 3339, "2006-01-02 15:04:05", "2006-01-02 15:04"
or a bare date.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReport(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func runReport(cmd *cobra.Command) error {
	scope, _ := cmd.Flags().GetString("scope")
	format, _ := cmd.Flags().GetString("format")
	outDir, _ := cmd.Flags().GetString("out")
	noOpen, _ := cmd.Flags().GetBool("no-open")
	useUI, _ := cmd.Flags().GetBool("ui")

	from, err := parseTimeFlag(cmd, "from")
	if err != nil {
		return err
	}
	to, err := parseTimeFlag(cmd, "to")
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = cfg.ExportDir
	}

	opts := report.Options{
		Scope:  scope,
		From:   from,
		To:     to,
		Format: format,
		OutDir: outDir,
	}
	// Configuration errors abort here, before anything is fetched
	if err := opts.Validate(); err != nil {
		return err
	}

	client, err := newPlatformClient(cfg)
	if err != nil {
		return err
	}

	res, err := report.Run(client, opts, time.Now())
	if err != nil {
		return err
	}
	if res.FellBack {
		fmt.Printf("⚠️  Could not create export directory %s, writing to fallback %s\n",
			res.RequestedDir, res.OutPath)
	}

	if res.OutPath == "" {
		if useUI {
			return tui.RunBrowseTUI(res.Window, res.Rows)
		}
		report.PrintRows(res.Window, res.Rows)
	} else {
		fmt.Printf("✅ Report written to %s (%d rows)\n", res.OutPath, len(res.Rows))
		if !noOpen {
			// Best effort, useless on headless boxes
			_ = report.RevealFolder(filepath.Dir(res.OutPath))
		}
	}

	recordHistory(res, scope, format)
	return nil
}

// recordHistory stores the run in the local history database. Failures
// degrade to a warning, never to a failed report.
func recordHistory(res *report.Result, scope, format string) {
	if err := db.Initialize(); err != nil {
		fmt.Printf("⚠️  History not recorded: %v\n", err)
		return
	}
	if err := db.RecordRun(res, scope, format); err != nil {
		fmt.Printf("⚠️  History not recorded: %v\n", err)
	}
}

// newPlatformClient builds the API client from config, requiring a base URL
func newPlatformClient(cfg *config.Config) (*platform.Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("no platform base URL configured: set base_url in ~/.backrep/config.yaml")
	}
	return platform.NewClient(cfg.BaseURL, cfg.Token, cfg.Timeout()), nil
}

// timeLayouts are the accepted forms for --from and --to
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimeFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseTimestamp(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value %q (expected RFC 3339 or \"2006-01-02 15:04\")", name, raw)
	}
	return t, nil
}

func parseTimestamp(raw string) (*time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized timestamp %q", raw)
}

func init() {
	reportCmd.Flags().StringP("scope", "s", "", "Preset time window: 24h, 7d or all")
	reportCmd.Flags().String("from", "", "Explicit range start (mutually exclusive with --scope)")
	reportCmd.Flags().String("to", "", "Explicit range end (mutually exclusive with --scope)")
	reportCmd.Flags().StringP("format", "f", "", "Export format: csv or html (omit for console output)")
	reportCmd.Flags().StringP("out", "o", "", "Export directory for csv/html output")
	reportCmd.Flags().Bool("no-open", false, "Do not reveal the export folder after writing")
	reportCmd.Flags().Bool("ui", false, "Browse the report in an interactive table")
}
