package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"custodyapi/internal/model"
	"custodyapi/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, title, description, owner, content, picture_front, picture_back, is_critical, metadata, created_at`

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, title, description, owner, content, picture_front, picture_back, is_critical, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + documentColumns

	var front, back sql.NullString
	if doc.Picture != nil {
		front = sql.NullString{String: doc.Picture.Front, Valid: true}
		back = sql.NullString{String: doc.Picture.Back, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.Description,
		doc.Owner,
		[]byte(doc.Content),
		front,
		back,
		doc.IsCritical,
		nullableJSON(doc.Metadata),
		doc.CreatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by id, scoped by owner.
func (r *DocumentPostgres) FindByID(ctx context.Context, owner, id string) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1 AND owner = $2
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id, owner))
}

// ListByOwner returns summary rows for all documents of one owner.
func (r *DocumentPostgres) ListByOwner(ctx context.Context, owner string) ([]model.DocumentSummary, error) {
	const q = `
		SELECT id, title, description, is_critical, created_at
		FROM documents
		WHERE owner = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentSummary, 0)
	for rows.Next() {
		var s model.DocumentSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.IsCritical, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsByContent probes for a document of this owner with an identical
// content payload. JSONB equality is semantic, not textual.
func (r *DocumentPostgres) ExistsByContent(ctx context.Context, owner string, content json.RawMessage) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM documents WHERE owner = $1 AND content = $2::jsonb)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, owner, []byte(content)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Delete removes the owner's document by id. It does not return an error if
// the row does not exist; existence checks belong to the service layer.
func (r *DocumentPostgres) Delete(ctx context.Context, owner, id string) error {
	const q = `DELETE FROM documents WHERE id = $1 AND owner = $2`
	res, err := r.db.ExecContext(ctx, q, id, owner)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.Document, error) {
	var (
		d        model.Document
		content  []byte
		metadata []byte
		front    sql.NullString
		back     sql.NullString
	)
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Description,
		&d.Owner,
		&content,
		&front,
		&back,
		&d.IsCritical,
		&metadata,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.Content = json.RawMessage(content)
	if metadata != nil {
		d.Metadata = json.RawMessage(metadata)
	}
	if front.Valid {
		d.Picture = &model.PicturePair{Front: front.String, Back: back.String}
	}
	return &d, nil
}

func nullableJSON(v json.RawMessage) any {
	if len(v) == 0 {
		return nil
	}
	return []byte(v)
}
