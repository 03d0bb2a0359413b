package report

import (
	"fmt"
	"strings"
)

// PrintRows writes the report as a fixed-width table to stdout
func PrintRows(w TimeWindow, rows []Row) {
	if len(rows) == 0 {
		fmt.Printf("No sessions found for %s.\n", w.Label)
		return
	}

	nameWidth := columnWidth(rows, 20, 40, func(r Row) string { return r.Name })
	typeWidth := columnWidth(rows, 12, 20, func(r Row) string { return r.JobType })

	fmt.Printf("%-*s %-*s %-19s %-19s %-10s %s\n",
		nameWidth, "NAME", typeWidth, "TYPE", "START", "END", "DURATION", "RESULT")
	fmt.Println(strings.Repeat("-", nameWidth+typeWidth+64))

	for _, r := range rows {
		end := r.EndTime
		if end == "" {
			end = "-"
		}
		fmt.Printf("%-*s %-*s %-19s %-19s %-10s %s\n",
			nameWidth, truncate(r.Name, nameWidth),
			typeWidth, truncate(r.JobType, typeWidth),
			r.StartTime, end, r.Duration, r.Result)
	}

	fmt.Printf("\n%d session(s), %s\n", len(rows), w.Label)
}

func columnWidth(rows []Row, min, max int, field func(Row) string) int {
	width := min
	for _, r := range rows {
		if n := len(field(r)); n > width {
			width = n
		}
	}
	if width > max {
		width = max
	}
	return width
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
