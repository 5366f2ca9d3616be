package repository

import (
	"context"

	"custodyapi/internal/model"
)

// BacklogRepository defines data access for the document-fetch audit log.
// Entries are append-only; the only deletion path is the document cascade.
type BacklogRepository interface {
	// Create appends a fetch record.
	Create(ctx context.Context, entry *model.BacklogEntry) (*model.BacklogEntry, error)

	// ListByOwner returns all backlog entries of one owner.
	ListByOwner(ctx context.Context, owner string) ([]model.BacklogEntry, error)

	// DeleteByDocumentID removes all entries referencing the owner's document.
	DeleteByDocumentID(ctx context.Context, owner, documentID string) error
}
