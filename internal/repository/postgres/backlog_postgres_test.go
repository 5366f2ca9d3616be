package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"custodyapi/internal/model"
)

var backlogCols = []string{"id", "document_requested_id", "owner", "time_requested"}

func TestBacklogPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBacklogPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	entry := &model.BacklogEntry{
		ID:                  "entry-uuid",
		DocumentRequestedID: "doc-uuid",
		Owner:               "subject-1",
		TimeRequested:       now,
	}

	rows := sqlmock.NewRows(backlogCols).
		AddRow(entry.ID, entry.DocumentRequestedID, entry.Owner, entry.TimeRequested)

	mock.ExpectQuery("INSERT INTO backlog").
		WithArgs(entry.ID, entry.DocumentRequestedID, entry.Owner, entry.TimeRequested).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, entry)

	assert.NoError(t, err)
	assert.Equal(t, entry.ID, result.ID)
	assert.Equal(t, entry.DocumentRequestedID, result.DocumentRequestedID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBacklogPostgres_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBacklogPostgres(db)
	ctx := context.Background()

	t.Run("entries", func(t *testing.T) {
		rows := sqlmock.NewRows(backlogCols).
			AddRow("e2", "doc-1", "subject-1", time.Now()).
			AddRow("e1", "doc-1", "subject-1", time.Now().Add(-time.Hour))

		mock.ExpectQuery("SELECT (.+) FROM backlog WHERE owner = \\$1").
			WithArgs("subject-1").
			WillReturnRows(rows)

		items, err := repo.ListByOwner(ctx, "subject-1")

		assert.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("empty result is a slice, not nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM backlog WHERE owner = \\$1").
			WithArgs("subject-2").
			WillReturnRows(sqlmock.NewRows(backlogCols))

		items, err := repo.ListByOwner(ctx, "subject-2")

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Len(t, items, 0)
	})
}

func TestBacklogPostgres_DeleteByDocumentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBacklogPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM backlog WHERE document_requested_id = \\$1 AND owner = \\$2").
		WithArgs("doc-uuid", "subject-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = repo.DeleteByDocumentID(ctx, "subject-1", "doc-uuid")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
