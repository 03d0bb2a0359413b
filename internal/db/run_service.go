package db

import (
	"github.com/dkoval/backrep/internal/models"
	"github.com/dkoval/backrep/internal/report"
)

// RecordRun stores one generated report in the history
func RecordRun(res *report.Result, scope, format string) error {
	run := models.ReportRun{
		WindowStart: res.Window.Start,
		WindowEnd:   res.Window.End,
		Scope:       scope,
		Format:      format,
		OutputPath:  res.OutPath,
		RowCount:    len(res.Rows),
	}
	if run.Scope == "" {
		run.Scope = res.Window.Label
	}
	for _, row := range res.Rows {
		switch row.Result {
		case models.ResultSuccess:
			run.SuccessCount++
		case models.ResultWarning:
			run.WarningCount++
		case models.ResultFailed:
			run.FailedCount++
		}
	}
	return DB.Create(&run).Error
}

// GetRecentRuns returns the newest report runs, most recent first
func GetRecentRuns(limit int) ([]models.ReportRun, error) {
	var runs []models.ReportRun
	err := DB.Order("created_at DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
