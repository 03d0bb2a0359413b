package platform

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/backrep/internal/models"
)

func TestClientJobs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Token"))
		json.NewEncoder(w).Encode([]models.Job{
			{ID: "j1", Name: "DC Backup", Type: "Backup"},
			{ID: "j2", Name: "SQL Replica", Type: "Replication"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", 5*time.Second)
	jobs, err := client.Jobs()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "DC Backup", jobs[0].Name)
	assert.Equal(t, "Replication", jobs[1].Type)
}

func TestClientSessionIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sessions", r.URL.Path)
		assert.Equal(t, "Backup", r.URL.Query().Get("jobType"))
		json.NewEncoder(w).Encode(map[string][]string{"ids": {"s1", "s2", "s3"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	ids, err := client.SessionIDs("Backup")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids)
}

func TestClientSessions(t *testing.T) {
	end := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sessions/lookup", r.URL.Path)

		var body struct {
			IDs []string `json:"ids"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"s1"}, body.IDs)

		json.NewEncoder(w).Encode([]models.Session{{
			ID:           "s1",
			Name:         "DC Backup",
			JobType:      "Backup",
			CreationTime: end.Add(-time.Hour),
			EndTime:      &end,
			Result:       models.ResultWarning,
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	sessions, err := client.Sessions([]string{"s1"})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, models.ResultWarning, sessions[0].Result)
	require.NotNil(t, sessions[0].EndTime)
	assert.True(t, sessions[0].EndTime.Equal(end))
}

func TestClientSessionsEmptyIDs(t *testing.T) {
	// No request should leave the process for an empty ID set
	client := NewClient("http://127.0.0.1:1", "", time.Second)
	sessions, err := client.Sessions(nil)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token", 5*time.Second)
	_, err := client.Jobs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
