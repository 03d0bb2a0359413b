package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVFileName is the fixed output name, overwritten on every run
const CSVFileName = "SessionsReport.csv"

// csvHeader is the fixed six-column order shared with the HTML table
var csvHeader = []string{"Name", "JobType", "StartTime", "EndTime", "Duration", "Result"}

// WriteCSV renders the rows to <dir>/SessionsReport.csv and returns the
// written path
func WriteCSV(dir string, rows []Row) (string, error) {
	path := filepath.Join(dir, CSVFileName)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.Name, r.JobType, r.StartTime, r.EndTime, r.Duration, string(r.Result)}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return path, nil
}
