package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dkoval/backrep/internal/models"
)

// Fetcher is the slice of the platform API the report needs
type Fetcher interface {
	Jobs() ([]models.Job, error)
	SessionIDs(jobType string) ([]string, error)
	Sessions(ids []string) ([]models.Session, error)
}

// Output formats accepted by the --format flag. An empty format means
// console output.
const (
	FormatCSV  = "csv"
	FormatHTML = "html"
)

// Options selects the window, format and destination for one run
type Options struct {
	Scope  string     // preset: 24h, 7d or all
	From   *time.Time // explicit bounds, mutually exclusive with Scope
	To     *time.Time
	Format string // "", csv or html
	OutDir string // required when Format is set
}

// Configuration errors, detected before anything is fetched
var (
	ErrNoTimeRange     = errors.New("no time range specified: use --scope, or both --from and --to")
	ErrAmbiguousRange  = errors.New("either a scope preset or explicit --from/--to bounds, not both")
	ErrIncompleteRange = errors.New("explicit range needs both --from and --to")
	ErrNoExportPath    = errors.New("an export format was requested without an export directory: use --out")
)

// Validate checks the option set before any external call is made
func (o Options) Validate() error {
	hasScope := o.Scope != ""
	hasFrom := o.From != nil
	hasTo := o.To != nil

	switch {
	case hasScope && (hasFrom || hasTo):
		return ErrAmbiguousRange
	case !hasScope && !hasFrom && !hasTo:
		return ErrNoTimeRange
	case !hasScope && (!hasFrom || !hasTo):
		return ErrIncompleteRange
	}
	if hasScope {
		if _, ok := scopeLabels[o.Scope]; !ok {
			return fmt.Errorf("unknown scope %q (expected 24h, 7d or all)", o.Scope)
		}
	}
	if hasFrom && hasTo && o.From.After(*o.To) {
		return fmt.Errorf("start of range (%s) is after its end (%s)",
			o.From.Format("2006-01-02 15:04"), o.To.Format("2006-01-02 15:04"))
	}

	switch o.Format {
	case "", FormatCSV, FormatHTML:
	default:
		return fmt.Errorf("unknown format %q (expected csv or html)", o.Format)
	}
	if o.Format != "" && o.OutDir == "" {
		return ErrNoExportPath
	}
	return nil
}

func (o Options) window(now time.Time) (TimeWindow, error) {
	if o.Scope != "" {
		return ResolveWindow(o.Scope, now)
	}
	return ExplicitWindow(*o.From, *o.To)
}

// Result is what one run produced
type Result struct {
	Window TimeWindow
	Rows   []Row

	// OutPath is the written file for csv/html formats, empty for console
	OutPath string
	// FellBack is set when the requested export directory could not be
	// created and the report went to the fallback directory instead
	FellBack     bool
	RequestedDir string
}

// Run executes the report procedure: validate, resolve the window, fetch
// every session the platform knows about, sort newest-first, filter into
// the window, project, and render to a file when a format was requested.
// Console rendering is left to the caller.
func Run(fetcher Fetcher, opts Options, now time.Time) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	window, err := opts.window(now)
	if err != nil {
		return nil, err
	}

	sessions, err := fetchAllSessions(fetcher)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreationTime.After(sessions[j].CreationTime)
	})

	rows := ProjectSessions(FilterSessions(window, sessions))
	res := &Result{Window: window, Rows: rows, RequestedDir: opts.OutDir}

	if opts.Format == "" {
		return res, nil
	}

	dir, fellBack, err := EnsureExportDir(opts.OutDir)
	if err != nil {
		return nil, err
	}
	res.FellBack = fellBack

	switch opts.Format {
	case FormatCSV:
		res.OutPath, err = WriteCSV(dir, rows)
	case FormatHTML:
		res.OutPath, err = WriteHTML(dir, window, rows)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// fetchAllSessions walks the platform's job catalog and collects the full
// session records across every job type, deduplicating types and IDs
func fetchAllSessions(fetcher Fetcher) ([]models.Session, error) {
	jobs, err := fetcher.Jobs()
	if err != nil {
		return nil, err
	}

	seenTypes := make(map[string]bool)
	var ids []string
	seenIDs := make(map[string]bool)
	for _, job := range jobs {
		if seenTypes[job.Type] {
			continue
		}
		seenTypes[job.Type] = true

		typeIDs, err := fetcher.SessionIDs(job.Type)
		if err != nil {
			return nil, err
		}
		for _, id := range typeIDs {
			if !seenIDs[id] {
				seenIDs[id] = true
				ids = append(ids, id)
			}
		}
	}

	return fetcher.Sessions(ids)
}
