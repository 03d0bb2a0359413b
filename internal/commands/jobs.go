package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoval/backrep/internal/config"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the platform's backup jobs",
	Long:  "List every job the backup-management platform knows about, with its job type.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		client, err := newPlatformClient(cfg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		jobs, err := client.Jobs()
		if err != nil {
			fmt.Printf("Error fetching jobs: %v\n", err)
			return
		}
		if len(jobs) == 0 {
			fmt.Println("No jobs found on the platform.")
			return
		}

		fmt.Printf("%-12s %-40s %s\n", "ID", "NAME", "TYPE")
		fmt.Println(strings.Repeat("-", 70))
		for _, job := range jobs {
			name := job.Name
			if len(name) > 38 {
				name = name[:35] + "..."
			}
			fmt.Printf("%-12s %-40s %s\n", job.ID, name, job.Type)
		}
	},
}
