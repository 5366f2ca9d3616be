package model

import (
	"encoding/json"
	"time"
)

// Document is a custody record owned by exactly one subject.
// This is a pure domain model with no database-specific dependencies or tags.
// Content and Metadata are opaque JSON payloads stored and returned verbatim;
// the service never inspects their structure.
type Document struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Owner       string          `json:"owner"`
	Content     json.RawMessage `json:"content"`
	Picture     *PicturePair    `json:"picture,omitempty"`
	IsCritical  bool            `json:"is_critical"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PicturePair holds the object-storage keys of the front/back scans of a
// document. The pair is always complete: both sides are uploaded together at
// creation time or not at all.
type PicturePair struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// DocumentSummary is the listing projection of a Document. Content, owner,
// picture, and metadata are deliberately stripped.
type DocumentSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCritical  bool      `json:"is_critical"`
	CreatedAt   time.Time `json:"created_at"`
}
