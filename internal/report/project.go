package report

import (
	"fmt"
	"time"

	"github.com/dkoval/backrep/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// durationUnknown is shown when a session has no end time yet
const durationUnknown = "n/a"

// Row is the flattened, display-ready projection of one session
type Row struct {
	Name      string
	JobType   string
	StartTime string
	EndTime   string // empty while the session is still running
	Duration  string // H:MM:SS, or "n/a" without an end time
	Result    models.Result
}

// Class returns the CSS class for conditional row styling in HTML output
func (r Row) Class() string {
	switch r.Result {
	case models.ResultWarning:
		return "warning"
	case models.ResultFailed:
		return "failed"
	default:
		return ""
	}
}

// ProjectSession maps one session to one report row. Pure: same input,
// same row.
func ProjectSession(s models.Session) Row {
	row := Row{
		Name:      s.Name,
		JobType:   s.JobType,
		StartTime: s.CreationTime.Format(timestampLayout),
		Duration:  durationUnknown,
		Result:    s.Result,
	}
	if s.EndTime != nil {
		row.EndTime = s.EndTime.Format(timestampLayout)
		row.Duration = formatDuration(s.EndTime.Sub(s.CreationTime))
	}
	return row
}

// ProjectSessions maps a session slice in order
func ProjectSessions(sessions []models.Session) []Row {
	rows := make([]Row, len(sessions))
	for i, s := range sessions {
		rows[i] = ProjectSession(s)
	}
	return rows
}

// formatDuration renders a duration as H:MM:SS, truncated to whole seconds
func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d:%02d", int(h), int(m), int(s))
}
