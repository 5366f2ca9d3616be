package repository

import (
	"context"
	"time"

	"custodyapi/internal/model"
)

// StateRepository defines data access for document lifecycle state records.
// There is at most one live state row per document; the create path runs once
// per document (no uniqueness constraint backs this, see DESIGN.md).
type StateRepository interface {
	// Create inserts the state record seeded at document creation.
	Create(ctx context.Context, st *model.DocumentState) (*model.DocumentState, error)

	// FindByDocumentID returns the owner's state record for the document.
	// Returns sql.ErrNoRows when absent.
	FindByDocumentID(ctx context.Context, owner, documentID string) (*model.DocumentState, error)

	// Update overwrites state and time unconditionally and returns the updated
	// row. Returns sql.ErrNoRows when no state record exists for this owner.
	Update(ctx context.Context, owner, documentID string, state model.State, at time.Time) (*model.DocumentState, error)

	// DeleteByDocumentID removes the owner's state record for the document.
	// Returns nil if the row was deleted or did not exist.
	DeleteByDocumentID(ctx context.Context, owner, documentID string) error
}
