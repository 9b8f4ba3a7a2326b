package walletrepo

import (
	"context"

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

// CreateTransaction appends one immutable ledger record. Rows are never
// updated or deleted.
func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	query := `
        INSERT INTO wallet_transactions (user_id, type, amount, balance_before, balance_after, reference_id, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		tx.UserID, tx.Type, tx.Amount, tx.BalanceBefore, tx.BalanceAfter, tx.ReferenceID, tx.Description,
	)
	if err := row.Scan(&tx.ID, &tx.CreatedAt); err != nil {
		zap.L().Error("failed to create wallet transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, user_id, type, amount, balance_before, balance_after, reference_id, description, created_at
        FROM wallet_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.WalletTransaction
	for rows.Next() {
		var tx domain.WalletTransaction
		err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.BalanceBefore,
			&tx.BalanceAfter, &tx.ReferenceID, &tx.Description, &tx.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// SumDeltas sums every ledger delta for a user. The result must equal the
// user's balance column.
func (r *Repository) SumDeltas(ctx context.Context, userID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM wallet_transactions
        WHERE user_id = $1
    `
	var sum float64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		zap.L().Error("failed to sum wallet deltas", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// CountByReference reports how many ledger records reference one causing
// entity. Used to assert at-most-once crediting.
func (r *Repository) CountByReference(ctx context.Context, referenceID string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM wallet_transactions
        WHERE reference_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, referenceID).Scan(&count); err != nil {
		zap.L().Error("failed to count wallet transactions by reference", zap.Error(err))
		return 0, err
	}
	return count, nil
}
