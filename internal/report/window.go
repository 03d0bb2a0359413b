package report

import (
	"fmt"
	"time"
)

// TimeWindow is the inclusive [Start, End] range sessions are matched
// against. Label is what the HTML title and the history entry show.
type TimeWindow struct {
	Start time.Time
	End   time.Time
	Label string
}

// Scope presets accepted by the --scope flag
const (
	ScopeLast24h = "24h"
	ScopeLast7d  = "7d"
	ScopeAllTime = "all"
)

// allTimeLookback is large enough to cover any realistic session history
// while keeping plain time comparisons (no sentinel values).
const allTimeLookback = 100000 * 24 * time.Hour

var scopeLabels = map[string]string{
	ScopeLast24h: "last 24 hours",
	ScopeLast7d:  "last 7 days",
	ScopeAllTime: "all time",
}

// ResolveWindow turns a scope preset into a concrete window ending at now
func ResolveWindow(scope string, now time.Time) (TimeWindow, error) {
	label, ok := scopeLabels[scope]
	if !ok {
		return TimeWindow{}, fmt.Errorf("unknown scope %q (expected 24h, 7d or all)", scope)
	}

	var lookback time.Duration
	switch scope {
	case ScopeLast24h:
		lookback = 24 * time.Hour
	case ScopeLast7d:
		lookback = 7 * 24 * time.Hour
	case ScopeAllTime:
		lookback = allTimeLookback
	}

	return TimeWindow{Start: now.Add(-lookback), End: now, Label: label}, nil
}

// ExplicitWindow builds a window from caller-supplied bounds, unadjusted
func ExplicitWindow(from, to time.Time) (TimeWindow, error) {
	if from.After(to) {
		return TimeWindow{}, fmt.Errorf("start of range (%s) is after its end (%s)",
			from.Format("2006-01-02 15:04"), to.Format("2006-01-02 15:04"))
	}
	return TimeWindow{
		Start: from,
		End:   to,
		Label: fmt.Sprintf("%s - %s", from.Format("2006-01-02"), to.Format("2006-01-02")),
	}, nil
}
