package repository

import (
	"context"
	"encoding/json"

	"custodyapi/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns the document with the given id owned by owner.
	// Returns sql.ErrNoRows when no such row exists for this owner.
	FindByID(ctx context.Context, owner, id string) (*model.Document, error)

	// ListByOwner returns summary projections of all documents of one owner.
	ListByOwner(ctx context.Context, owner string) ([]model.DocumentSummary, error)

	// ExistsByContent reports whether the owner already has a document whose
	// content payload is identical (JSONB equality, so key order is ignored).
	ExistsByContent(ctx context.Context, owner string, content json.RawMessage) (bool, error)

	// Delete removes the owner's document by id. It returns nil if the row
	// was deleted or did not exist.
	Delete(ctx context.Context, owner, id string) error
}
