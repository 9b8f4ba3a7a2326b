package webhooklogrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Entry stored and log trimmed", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(51)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO webhook_logs")).
			WithArgs(`{"order_id":"DEP-1"}`, `{"transaction":{"status":"completed"}}`).
			WillReturnRows(rows)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM webhook_logs")).
			WithArgs(50).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		entry := &domain.WebhookLog{
			Payload:      `{"order_id":"DEP-1"}`,
			Verification: `{"transaction":{"status":"completed"}}`,
		}
		err := repo.Append(context.Background(), entry)
		assert.NoError(t, err)
		assert.Equal(t, 51, entry.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO webhook_logs")).
			WithArgs("{}", "{}").
			WillReturnError(errors.New("database error"))

		err := repo.Append(context.Background(), &domain.WebhookLog{Payload: "{}", Verification: "{}"})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Trim failure", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(52)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO webhook_logs")).
			WithArgs("{}", "{}").
			WillReturnRows(rows)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM webhook_logs")).
			WithArgs(50).
			WillReturnError(errors.New("database error"))

		err := repo.Append(context.Background(), &domain.WebhookLog{Payload: "{}", Verification: "{}"})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Entries newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "payload", "verification", "received_at"}).
			AddRow(2, `{"order_id":"DEP-2"}`, `{"transaction":null}`, now).
			AddRow(1, `{"order_id":"DEP-1"}`, `{"transaction":{"status":"completed"}}`, now.Add(-time.Minute))
		mock.ExpectQuery(regexp.QuoteMeta("FROM webhook_logs")).
			WillReturnRows(rows)

		entries, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, 2, entries[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM webhook_logs")).
			WillReturnError(errors.New("database error"))

		entries, err := repo.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
