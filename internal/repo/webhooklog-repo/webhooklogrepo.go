package webhooklogrepo

import (
	"context"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/pg"
	"go.uber.org/zap"
)

// maxEntries caps the diagnostic log at the most recent payloads.
const maxEntries = 50

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Append stores one verified webhook payload and trims the log to the cap.
// Diagnostic only: callers treat failures as non-fatal.
func (r *Repository) Append(ctx context.Context, entry *domain.WebhookLog) error {
	insert := `
        INSERT INTO webhook_logs (payload, verification)
        VALUES ($1, $2)
        RETURNING id
    `
	if err := r.db.QueryRow(ctx, insert, entry.Payload, entry.Verification).Scan(&entry.ID); err != nil {
		zap.L().Warn("failed to append webhook log", zap.Error(err))
		return err
	}

	trim := `
        DELETE FROM webhook_logs
        WHERE id NOT IN (
            SELECT id FROM webhook_logs ORDER BY id DESC LIMIT $1
        )
    `
	if _, err := r.db.Exec(ctx, trim, maxEntries); err != nil {
		zap.L().Warn("failed to trim webhook log", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.WebhookLog, error) {
	query := `
        SELECT id, payload, verification, received_at
        FROM webhook_logs
        ORDER BY id DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get webhook logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WebhookLog
	for rows.Next() {
		var entry domain.WebhookLog
		if err := rows.Scan(&entry.ID, &entry.Payload, &entry.Verification, &entry.ReceivedAt); err != nil {
			zap.L().Error("can't scan webhook log row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
