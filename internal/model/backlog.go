package model

import "time"

// BacklogEntry records one successful document fetch. Entries are append-only
// and removed only when the referenced document is deleted.
type BacklogEntry struct {
	ID                  string    `json:"id"`
	DocumentRequestedID string    `json:"document_requested_id"`
	Owner               string    `json:"owner"`
	TimeRequested       time.Time `json:"time_requested"`
}
