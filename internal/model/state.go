package model

import (
	"errors"
	"fmt"
	"time"
)

// State is the lifecycle state of a document. The set is closed; any state may
// move to any other state via an authenticated overwrite, and there is no
// terminal state.
type State string

const (
	StateStored  State = "Stored"
	StateUsing   State = "Using"
	StateLost    State = "Lost"
	StateExpired State = "Expired"
)

// ErrUnknownState is returned by ParseState for literals outside the closed set.
var ErrUnknownState = errors.New("unknown state")

// ParseState maps a literal to a State. The match is exact and case-sensitive.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StateStored, StateUsing, StateLost, StateExpired:
		return State(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
}

// DocumentState is the single live lifecycle record of a document. It is
// created alongside the document (initial state Stored), overwritten by state
// updates, and removed by the document's delete cascade.
type DocumentState struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Owner      string    `json:"owner"`
	State      State     `json:"state"`
	Time       time.Time `json:"time"`
}
