package models

import (
	"time"
)

// ReportRun records one generated report in the local history database
type ReportRun struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	WindowStart time.Time `gorm:"not null" json:"window_start"`
	WindowEnd   time.Time `gorm:"not null" json:"window_end"`
	Scope       string    `json:"scope"` // preset label or the explicit range
	Format      string    `json:"format"`
	OutputPath  string    `json:"output_path"` // empty for console output

	RowCount     int `json:"row_count"`
	SuccessCount int `json:"success_count"`
	WarningCount int `json:"warning_count"`
	FailedCount  int `json:"failed_count"`
}
