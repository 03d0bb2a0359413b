package report

import (
	"github.com/dkoval/backrep/internal/models"
)

// FilterSessions keeps sessions whose creation time falls inside the
// window, inclusive on both ends. Upstream order is preserved, so a
// caller that sorted newest-first gets a newest-first result.
func FilterSessions(w TimeWindow, sessions []models.Session) []models.Session {
	var matched []models.Session
	for _, s := range sessions {
		if s.CreationTime.Before(w.Start) || s.CreationTime.After(w.End) {
			continue
		}
		matched = append(matched, s)
	}
	return matched
}
