package models

import (
	"time"
)

// Result is the outcome the platform reports for a session. The platform
// may emit values outside the known set; those pass through unstyled.
type Result string

const (
	ResultSuccess Result = "Success"
	ResultWarning Result = "Warning"
	ResultFailed  Result = "Failed"
)

// Session represents one recorded execution of a backup or replication job
type Session struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	JobType      string     `json:"jobType"`
	CreationTime time.Time  `json:"creationTime"`
	EndTime      *time.Time `json:"endTime"` // nil while the session is still running
	Result       Result     `json:"result"`
}
