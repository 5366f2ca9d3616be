package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"custodyapi/internal/model"
)

var stateCols = []string{"id", "document_id", "owner", "state", "time"}

func TestStatePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStatePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	st := &model.DocumentState{
		ID:         "state-uuid",
		DocumentID: "doc-uuid",
		Owner:      "subject-1",
		State:      model.StateStored,
		Time:       now,
	}

	rows := sqlmock.NewRows(stateCols).
		AddRow(st.ID, st.DocumentID, st.Owner, "Stored", st.Time)

	mock.ExpectQuery("INSERT INTO document_states").
		WithArgs(st.ID, st.DocumentID, st.Owner, "Stored", st.Time).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, st)

	assert.NoError(t, err)
	assert.Equal(t, model.StateStored, result.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatePostgres_FindByDocumentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStatePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(stateCols).
			AddRow("state-uuid", "doc-uuid", "subject-1", "Using", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM document_states WHERE document_id = \\$1 AND owner = \\$2").
			WithArgs("doc-uuid", "subject-1").
			WillReturnRows(rows)

		st, err := repo.FindByDocumentID(ctx, "subject-1", "doc-uuid")

		assert.NoError(t, err)
		assert.Equal(t, model.StateUsing, st.State)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM document_states WHERE document_id = \\$1 AND owner = \\$2").
			WithArgs("missing", "subject-1").
			WillReturnError(sql.ErrNoRows)

		st, err := repo.FindByDocumentID(ctx, "subject-1", "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, st)
	})
}

func TestStatePostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStatePostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("overwrite", func(t *testing.T) {
		rows := sqlmock.NewRows(stateCols).
			AddRow("state-uuid", "doc-uuid", "subject-1", "Expired", now)

		mock.ExpectQuery("UPDATE document_states SET state = \\$1, time = \\$2").
			WithArgs("Expired", now, "doc-uuid", "subject-1").
			WillReturnRows(rows)

		st, err := repo.Update(ctx, "subject-1", "doc-uuid", model.StateExpired, now)

		assert.NoError(t, err)
		assert.Equal(t, model.StateExpired, st.State)
		assert.Equal(t, now, st.Time)
	})

	t.Run("no state row", func(t *testing.T) {
		mock.ExpectQuery("UPDATE document_states SET state = \\$1, time = \\$2").
			WithArgs("Lost", now, "missing", "subject-1").
			WillReturnError(sql.ErrNoRows)

		st, err := repo.Update(ctx, "subject-1", "missing", model.StateLost, now)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, st)
	})
}

func TestStatePostgres_DeleteByDocumentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStatePostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM document_states WHERE document_id = \\$1 AND owner = \\$2").
		WithArgs("doc-uuid", "subject-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.DeleteByDocumentID(ctx, "subject-1", "doc-uuid")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
