package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"custodyapi/internal/model"
)

var documentCols = []string{"id", "title", "description", "owner", "content", "picture_front", "picture_back", "is_critical", "metadata", "created_at"}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:          "test-uuid",
		Title:       "Passport",
		Description: "travel document",
		Owner:       "subject-1",
		Content:     json.RawMessage(`{"number":"X123"}`),
		IsCritical:  true,
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows(documentCols).
		AddRow(doc.ID, doc.Title, doc.Description, doc.Owner, []byte(doc.Content), nil, nil, doc.IsCritical, nil, doc.CreatedAt)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.Title, doc.Description, doc.Owner, []byte(doc.Content), sql.NullString{}, sql.NullString{}, doc.IsCritical, nil, doc.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, doc.Owner, result.Owner)
	assert.JSONEq(t, `{"number":"X123"}`, string(result.Content))
	assert.Nil(t, result.Picture)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Create_WithPicture(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:      "test-uuid",
		Owner:   "subject-1",
		Content: json.RawMessage(`{}`),
		Picture: &model.PicturePair{Front: "pictures/a-front", Back: "pictures/a-back"},
		Metadata: json.RawMessage(`{"source":"scanner"}`),
		CreatedAt: now,
	}

	rows := sqlmock.NewRows(documentCols).
		AddRow(doc.ID, "", "", doc.Owner, []byte(doc.Content), "pictures/a-front", "pictures/a-back", false, []byte(doc.Metadata), now)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, "", "", doc.Owner, []byte(doc.Content),
			sql.NullString{String: "pictures/a-front", Valid: true},
			sql.NullString{String: "pictures/a-back", Valid: true},
			false, []byte(doc.Metadata), now).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	if assert.NotNil(t, result.Picture) {
		assert.Equal(t, "pictures/a-front", result.Picture.Front)
		assert.Equal(t, "pictures/a-back", result.Picture.Back)
	}
	assert.JSONEq(t, `{"source":"scanner"}`, string(result.Metadata))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(documentCols).
			AddRow("test-id", "Passport", "travel document", "subject-1", []byte(`{"k":1}`), nil, nil, false, nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = \\$1 AND owner = \\$2").
			WithArgs("test-id", "subject-1").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "subject-1", "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, "test-id", doc.ID)
		assert.Equal(t, "subject-1", doc.Owner)
	})

	t.Run("wrong owner behaves like missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = \\$1 AND owner = \\$2").
			WithArgs("test-id", "subject-2").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "subject-2", "test-id")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "is_critical", "created_at"}).
		AddRow("id-2", "B", "second", true, time.Now()).
		AddRow("id-1", "A", "first", false, time.Now())

	mock.ExpectQuery("SELECT id, title, description, is_critical, created_at FROM documents WHERE owner = \\$1").
		WithArgs("subject-1").
		WillReturnRows(rows)

	items, err := repo.ListByOwner(ctx, "subject-1")

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "id-2", items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_ExistsByContent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("duplicate exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("subject-1", []byte(`{"k":1}`)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.ExistsByContent(ctx, "subject-1", json.RawMessage(`{"k":1}`))

		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("no duplicate", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("subject-2", []byte(`{"k":1}`)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.ExistsByContent(ctx, "subject-2", json.RawMessage(`{"k":1}`))

		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM documents WHERE id = \\$1 AND owner = \\$2").
		WithArgs("test-id", "subject-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "subject-1", "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
