package platform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dkoval/backrep/internal/models"
)

// Client talks to the backup-management platform's REST API. The API is
// treated as opaque: no ordering, pagination or latency guarantees.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a platform client for the given base URL and API token
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// Jobs returns the platform's job catalog
func (c *Client) Jobs() ([]models.Job, error) {
	var jobs []models.Job
	if err := c.get("/api/v1/jobs", nil, &jobs); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// SessionIDs returns the identifiers of all known sessions for a job type
func (c *Client) SessionIDs(jobType string) ([]string, error) {
	var out struct {
		IDs []string `json:"ids"`
	}
	query := url.Values{"jobType": {jobType}}
	if err := c.get("/api/v1/sessions", query, &out); err != nil {
		return nil, fmt.Errorf("failed to list sessions for job type %q: %w", jobType, err)
	}
	return out.IDs, nil
}

// Sessions fetches full session records for a set of identifiers
func (c *Client) Sessions(ids []string) ([]models.Session, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	body, err := json.Marshal(struct {
		IDs []string `json:"ids"`
	}{IDs: ids})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/v1/sessions/lookup", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var sessions []models.Session
	if err := c.do(req, &sessions); err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	return sessions, nil
}

func (c *Client) get(path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("X-Api-Token", c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("platform returned %s for %s", resp.Status, req.URL.Path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode platform response: %w", err)
	}
	return nil
}
