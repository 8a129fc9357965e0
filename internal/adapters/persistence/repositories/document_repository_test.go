package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDocumentRepository_VisibleTo(t *testing.T) {
	ctx := context.Background()

	t.Run("visible", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDocumentRepository(db)

		// broadcast OR addressed, plus the document id filter
		mock.ExpectQuery("SELECT count(.+) FROM `documents`").
			WithArgs(true, 7, 1).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		visible, err := repo.VisibleTo(ctx, 1, 7)
		assert.NoError(t, err)
		assert.True(t, visible)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not visible", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDocumentRepository(db)

		mock.ExpectQuery("SELECT count(.+) FROM `documents`").
			WithArgs(true, 7, 99).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		visible, err := repo.VisibleTo(ctx, 99, 7)
		assert.NoError(t, err)
		assert.False(t, visible)
	})
}

func TestDocumentRepository_ListForRecipient(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewDocumentRepository(db)

	mock.ExpectQuery("SELECT count(.+) FROM `documents`").
		WithArgs(true, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	// Listing selects metadata columns only; the data column stays in the row
	mock.ExpectQuery("SELECT (.+)`documents`(.+)broadcast = (.+) OR id IN").
		WithArgs(true, 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_name", "content_type", "uploaded_by", "broadcast"}).
			AddRow(1, "direct.pdf", "application/pdf", "Admin", false).
			AddRow(2, "everyone.txt", "text/plain", "Admin", true))

	// Recipient rows preload
	mock.ExpectQuery("SELECT (.+) FROM `document_recipients`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "document_id", "user_id", "name"}).
			AddRow(10, 1, 7, "Jane"))

	docs, total, err := repo.ListForRecipient(ctx, 7, 0, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, docs, 2)
	assert.Equal(t, "Jane", docs[0].Recipients[0].Name)
	assert.True(t, docs[1].Broadcast)
	assert.Empty(t, docs[0].Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewDocumentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `documents`").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(ctx, 42)
	assert.Error(t, err)
}
