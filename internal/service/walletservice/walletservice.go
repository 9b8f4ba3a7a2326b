package walletservice

import (
	"context"
	"errors"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=walletservice.go -destination=walletservice_mock.go -package=walletservice

type UserRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	UpdateBalance(ctx context.Context, userID int, balance float64) error
}

type WalletRepo interface {
	CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidAmount = errors.New("credit amount must be positive")
)

// Service is the only writer of users.balance. It is a dumb atomic
// primitive: idempotency is the caller's responsibility, layered on the
// owning entity's status field.
type Service struct {
	userRepo   UserRepo
	walletRepo WalletRepo
	txManager  pg.TXManager
}

func New(userRepo UserRepo, walletRepo WalletRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		txManager:  txManager,
	}
}

// Credit applies one balance mutation as a single atomic unit: locked
// balance read, balance write, ledger append. The row lock serializes
// concurrent credits for the same user.
func (s *Service) Credit(ctx context.Context, userID int, amount float64, referenceID, description string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		newBalance := user.Balance + amount
		if err := s.userRepo.UpdateBalance(ctx, userID, newBalance); err != nil {
			return err
		}

		_, err = s.walletRepo.CreateTransaction(ctx, &domain.WalletTransaction{
			UserID:        userID,
			Type:          domain.TransactionTypeDeposit,
			Amount:        amount,
			BalanceBefore: user.Balance,
			BalanceAfter:  newBalance,
			ReferenceID:   referenceID,
			Description:   description,
		})
		if err != nil {
			return err
		}

		zap.L().Info("balance credited",
			zap.Int("userID", userID),
			zap.Float64("amount", amount),
			zap.String("referenceID", referenceID),
		)
		return nil
	})
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	transactions, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
