package depositrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const depositColumns = `id, user_id, amount, total_pay, payment_method, status, created_at`

func (r *Repository) scanDeposit(ctx context.Context, query string, args ...any) (*domain.Deposit, error) {
	var d domain.Deposit
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&d.ID, &d.UserID, &d.Amount, &d.TotalPay, &d.PaymentMethod, &d.Status, &d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find deposit", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE id = $1
    `
	return r.scanDeposit(ctx, query, id)
}

// FindByIDForUpdate locks the deposit row for the duration of the
// surrounding transaction. Must be called inside a TXManager callback.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanDeposit(ctx, query, id)
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `
        UPDATE deposits
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update deposit status", zap.String("depositID", id), zap.Error(err))
		return err
	}
	return nil
}
