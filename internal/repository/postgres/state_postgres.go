package postgres

import (
	"context"
	"database/sql"
	"time"

	"custodyapi/internal/model"
	"custodyapi/internal/repository"
)

// StatePostgres is a PostgreSQL implementation of repository.StateRepository.
type StatePostgres struct {
	db *sql.DB
}

// NewStatePostgres creates a new StatePostgres repository.
func NewStatePostgres(db *sql.DB) *StatePostgres {
	return &StatePostgres{db: db}
}

var _ repository.StateRepository = (*StatePostgres)(nil)

const stateColumns = `id, document_id, owner, state, time`

// Create inserts the state row seeded at document creation.
func (r *StatePostgres) Create(ctx context.Context, st *model.DocumentState) (*model.DocumentState, error) {
	const q = `
		INSERT INTO document_states (id, document_id, owner, state, time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + stateColumns

	row := r.db.QueryRowContext(ctx, q, st.ID, st.DocumentID, st.Owner, string(st.State), st.Time)
	return scanState(row)
}

// FindByDocumentID fetches the owner's state row for a document.
func (r *StatePostgres) FindByDocumentID(ctx context.Context, owner, documentID string) (*model.DocumentState, error) {
	const q = `
		SELECT ` + stateColumns + `
		FROM document_states
		WHERE document_id = $1 AND owner = $2
	`
	return scanState(r.db.QueryRowContext(ctx, q, documentID, owner))
}

// Update overwrites state and time unconditionally. sql.ErrNoRows surfaces
// when no state row exists for this owner and document.
func (r *StatePostgres) Update(ctx context.Context, owner, documentID string, state model.State, at time.Time) (*model.DocumentState, error) {
	const q = `
		UPDATE document_states
		SET state = $1, time = $2
		WHERE document_id = $3 AND owner = $4
		RETURNING ` + stateColumns

	row := r.db.QueryRowContext(ctx, q, string(state), at, documentID, owner)
	return scanState(row)
}

// DeleteByDocumentID removes the owner's state row for a document.
func (r *StatePostgres) DeleteByDocumentID(ctx context.Context, owner, documentID string) error {
	const q = `DELETE FROM document_states WHERE document_id = $1 AND owner = $2`
	res, err := r.db.ExecContext(ctx, q, documentID, owner)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func scanState(row rowScanner) (*model.DocumentState, error) {
	var (
		st      model.DocumentState
		literal string
	)
	if err := row.Scan(&st.ID, &st.DocumentID, &st.Owner, &literal, &st.Time); err != nil {
		return nil, err
	}
	st.State = model.State(literal)
	return &st, nil
}
