package userrepo

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, email, name, balance, created_at
        FROM users
        WHERE id = $1
    `
	return r.scanUser(ctx, query, id)
}

// FindByIDForUpdate locks the user row, serializing concurrent balance
// mutations for the same user. Must be called inside a TXManager callback.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, email, name, balance, created_at
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanUser(ctx, query, id)
}

func (r *Repository) scanUser(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.Name, &user.Balance, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, userID int, balance float64) error {
	query := `
        UPDATE users
        SET balance = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, balance, userID)
	if err != nil {
		zap.L().Error("failed to update user balance", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}
