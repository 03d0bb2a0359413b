package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/backrep/internal/models"
)

// fakeFetcher serves canned sessions and counts calls so tests can prove
// that configuration errors abort before any fetch
type fakeFetcher struct {
	sessions []models.Session
	calls    int
}

func (f *fakeFetcher) Jobs() ([]models.Job, error) {
	f.calls++
	seen := make(map[string]bool)
	var jobs []models.Job
	for _, s := range f.sessions {
		if !seen[s.JobType] {
			seen[s.JobType] = true
			jobs = append(jobs, models.Job{ID: s.ID, Name: s.Name, Type: s.JobType})
		}
	}
	return jobs, nil
}

func (f *fakeFetcher) SessionIDs(jobType string) ([]string, error) {
	f.calls++
	var ids []string
	for _, s := range f.sessions {
		if s.JobType == jobType {
			ids = append(ids, s.ID)
		}
	}
	return ids, nil
}

func (f *fakeFetcher) Sessions(ids []string) ([]models.Session, error) {
	f.calls++
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Session
	for _, s := range f.sessions {
		if want[s.ID] {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestOptionsValidate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"scope only", Options{Scope: ScopeLast24h}, nil},
		{"explicit pair", Options{From: &now, To: &now}, nil},
		{"nothing", Options{}, ErrNoTimeRange},
		{"scope and bounds", Options{Scope: ScopeLast7d, From: &now}, ErrAmbiguousRange},
		{"from without to", Options{From: &now}, ErrIncompleteRange},
		{"to without from", Options{To: &now}, ErrIncompleteRange},
		{"format without out dir", Options{Scope: ScopeLast24h, Format: FormatCSV}, ErrNoExportPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOptionsValidateRejectsBadValues(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)

	assert.Error(t, Options{Scope: "1y"}.Validate())
	assert.Error(t, Options{Scope: ScopeLast24h, Format: "pdf", OutDir: "/tmp"}.Validate())
	assert.Error(t, Options{From: &now, To: &earlier}.Validate())
}

func TestRunFailsFastWithoutFetching(t *testing.T) {
	fetcher := &fakeFetcher{}

	_, err := Run(fetcher, Options{}, time.Now())
	assert.ErrorIs(t, err, ErrNoTimeRange)
	assert.Zero(t, fetcher.calls, "nothing may be fetched on a configuration error")

	_, err = Run(fetcher, Options{Scope: ScopeLast24h, Format: FormatHTML}, time.Now())
	assert.ErrorIs(t, err, ErrNoExportPath)
	assert.Zero(t, fetcher.calls)
}

// The worked example from the report contract: with a 24h scope only the
// recent session survives the filter.
func TestRunLast24Hours(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{sessions: []models.Session{
		{
			ID: "a", Name: "JobA", JobType: "Backup",
			CreationTime: now.Add(-2 * time.Hour),
			EndTime:      timePtr(now.Add(-1 * time.Hour)),
			Result:       models.ResultSuccess,
		},
		{
			ID: "b", Name: "JobB", JobType: "Backup",
			CreationTime: now.Add(-30 * time.Hour),
			EndTime:      timePtr(now.Add(-29 * time.Hour)),
			Result:       models.ResultFailed,
		},
	}}

	res, err := Run(fetcher, Options{Scope: ScopeLast24h}, now)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "JobA", res.Rows[0].Name)
	assert.Equal(t, "1:00:00", res.Rows[0].Duration)
	assert.Empty(t, res.OutPath)
}

func TestRunSortsNewestFirst(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{sessions: []models.Session{
		{ID: "1", Name: "older", JobType: "Backup", CreationTime: now.Add(-5 * time.Hour), Result: models.ResultSuccess},
		{ID: "2", Name: "newest", JobType: "Replication", CreationTime: now.Add(-1 * time.Hour), Result: models.ResultSuccess},
		{ID: "3", Name: "middle", JobType: "Backup", CreationTime: now.Add(-3 * time.Hour), Result: models.ResultSuccess},
	}}

	res, err := Run(fetcher, Options{Scope: ScopeLast24h}, now)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, "newest", res.Rows[0].Name)
	assert.Equal(t, "middle", res.Rows[1].Name)
	assert.Equal(t, "older", res.Rows[2].Name)
}

func TestRunWritesCSVExport(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	dir := t.TempDir()
	fetcher := &fakeFetcher{sessions: []models.Session{
		{ID: "a", Name: "JobA", JobType: "Backup", CreationTime: now.Add(-2 * time.Hour), Result: models.ResultSuccess},
	}}

	res, err := Run(fetcher, Options{Scope: ScopeLast24h, Format: FormatCSV, OutDir: dir}, now)
	require.NoError(t, err)
	assert.False(t, res.FellBack)
	assert.Equal(t, filepath.Join(dir, CSVFileName), res.OutPath)

	_, err = os.Stat(res.OutPath)
	assert.NoError(t, err)
}

func TestRunExportFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{}

	res, err := Run(fetcher, Options{
		Scope:  ScopeLast24h,
		Format: FormatHTML,
		OutDir: filepath.Join(blocker, "reports"),
	}, now)
	require.NoError(t, err)
	assert.True(t, res.FellBack)
	assert.Equal(t, filepath.Join(home, fallbackDirName, HTMLFileName), res.OutPath)
}
