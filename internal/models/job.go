package models

// Job is one entry in the platform's job catalog
type Job struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
