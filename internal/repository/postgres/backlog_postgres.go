package postgres

import (
	"context"
	"database/sql"

	"custodyapi/internal/model"
	"custodyapi/internal/repository"
)

// BacklogPostgres is a PostgreSQL implementation of repository.BacklogRepository.
type BacklogPostgres struct {
	db *sql.DB
}

// NewBacklogPostgres creates a new BacklogPostgres repository.
func NewBacklogPostgres(db *sql.DB) *BacklogPostgres {
	return &BacklogPostgres{db: db}
}

var _ repository.BacklogRepository = (*BacklogPostgres)(nil)

// Create appends a fetch record.
func (r *BacklogPostgres) Create(ctx context.Context, entry *model.BacklogEntry) (*model.BacklogEntry, error) {
	const q = `
		INSERT INTO backlog (id, document_requested_id, owner, time_requested)
		VALUES ($1, $2, $3, $4)
		RETURNING id, document_requested_id, owner, time_requested
	`
	row := r.db.QueryRowContext(ctx, q, entry.ID, entry.DocumentRequestedID, entry.Owner, entry.TimeRequested)
	var out model.BacklogEntry
	if err := row.Scan(&out.ID, &out.DocumentRequestedID, &out.Owner, &out.TimeRequested); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByOwner returns all backlog entries of one owner.
func (r *BacklogPostgres) ListByOwner(ctx context.Context, owner string) ([]model.BacklogEntry, error) {
	const q = `
		SELECT id, document_requested_id, owner, time_requested
		FROM backlog
		WHERE owner = $1
		ORDER BY time_requested DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BacklogEntry, 0)
	for rows.Next() {
		var e model.BacklogEntry
		if err := rows.Scan(&e.ID, &e.DocumentRequestedID, &e.Owner, &e.TimeRequested); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByDocumentID removes all entries referencing the owner's document.
func (r *BacklogPostgres) DeleteByDocumentID(ctx context.Context, owner, documentID string) error {
	const q = `DELETE FROM backlog WHERE document_requested_id = $1 AND owner = $2`
	res, err := r.db.ExecContext(ctx, q, documentID, owner)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
