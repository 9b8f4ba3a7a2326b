package webhookservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/payment/pakasir"
	"github.com/ardiansah/digistore/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=webhookservice.go -destination=webhookservice_mock.go -package=webhookservice

// amountTolerance absorbs provider-side rounding, in minor currency units.
const amountTolerance = 100

type ConfigRepo interface {
	GetGatewayConfig(ctx context.Context, name string) (*domain.PaymentGatewayConfig, error)
}

type OrderRepo interface {
	FindByInvoiceCode(ctx context.Context, invoiceCode string) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
}

type DepositRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Deposit, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Deposit, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

type Wallet interface {
	Credit(ctx context.Context, userID int, amount float64, referenceID, description string) error
}

type Verifier interface {
	Verify(ctx context.Context, cfg *domain.PaymentGatewayConfig, orderID string, amount float64) (*pakasir.VerifiedTransaction, error)
}

type Fulfiller interface {
	FulfillOrder(ctx context.Context, orderID int) error
}

type LogRepo interface {
	Append(ctx context.Context, entry *domain.WebhookLog) error
	List(ctx context.Context) ([]domain.WebhookLog, error)
}

var (
	ErrConfigMissing      = errors.New("payment gateway config missing or inactive")
	ErrVerificationFailed = errors.New("webhook verification failed")
	ErrAmountMismatch     = errors.New("amount mismatch")
	ErrNotFound           = errors.New("no order or deposit for correlation id")
)

// Notification is the untrusted inbound webhook payload. It only triggers
// re-verification; none of its fields drive a state change directly.
type Notification struct {
	OrderID string  `json:"order_id"`
	Status  string  `json:"status"`
	Amount  float64 `json:"amount"`
}

type Result struct {
	Type             string
	Status           string
	AlreadyProcessed bool
	Ignored          bool
	Message          string
}

type Service struct {
	configRepo  ConfigRepo
	orderRepo   OrderRepo
	depositRepo DepositRepo
	wallet      Wallet
	verifier    Verifier
	fulfiller   Fulfiller
	logRepo     LogRepo
	txManager   pg.TXManager
}

func New(
	configRepo ConfigRepo,
	orderRepo OrderRepo,
	depositRepo DepositRepo,
	wallet Wallet,
	verifier Verifier,
	fulfiller Fulfiller,
	logRepo LogRepo,
	txManager pg.TXManager,
) *Service {
	return &Service{
		configRepo:  configRepo,
		orderRepo:   orderRepo,
		depositRepo: depositRepo,
		wallet:      wallet,
		verifier:    verifier,
		fulfiller:   fulfiller,
		logRepo:     logRepo,
		txManager:   txManager,
	}
}

// Process drives the verify -> resolve -> amount gate -> idempotency gate ->
// mutate pipeline. Verification happens before any transaction begins; the
// idempotency gate and the mutation share one transaction with the aggregate
// row locked, so concurrent deliveries for the same correlation id
// serialize and the loser short-circuits.
func (s *Service) Process(ctx context.Context, n Notification) (*Result, error) {
	cfg, err := s.configRepo.GetGatewayConfig(ctx, pakasir.GatewayName)
	if err != nil {
		return nil, err
	}
	if cfg == nil || !cfg.IsActive {
		zap.L().Error("gateway config missing or inactive")
		return nil, ErrConfigMissing
	}

	verified, err := s.verifier.Verify(ctx, cfg, n.OrderID, n.Amount)
	if err != nil {
		if errors.Is(err, pakasir.ErrNoTransaction) {
			zap.L().Warn("webhook rejected: gateway has no such transaction", zap.String("orderID", n.OrderID))
			return nil, ErrVerificationFailed
		}
		return nil, err
	}

	if verified.Status() != n.Status {
		zap.L().Warn("webhook rejected: status mismatch",
			zap.String("orderID", n.OrderID),
			zap.String("claimed", n.Status),
			zap.String("authoritative", verified.Status()),
		)
		return nil, ErrVerificationFailed
	}

	s.appendLog(ctx, n, verified)

	order, err := s.orderRepo.FindByInvoiceCode(ctx, n.OrderID)
	if err != nil {
		return nil, err
	}
	if order != nil {
		return s.processOrder(ctx, order, verified)
	}

	deposit, err := s.depositRepo.FindByID(ctx, n.OrderID)
	if err != nil {
		return nil, err
	}
	if deposit != nil {
		return s.processDeposit(ctx, deposit, verified)
	}

	return nil, ErrNotFound
}

// appendLog keeps a bounded diagnostic trail of verified payloads.
// Best-effort: a failure here never aborts reconciliation.
func (s *Service) appendLog(ctx context.Context, n Notification, verified *pakasir.VerifiedTransaction) {
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	if err := s.logRepo.Append(ctx, &domain.WebhookLog{
		Payload:      string(payload),
		Verification: verified.Raw(),
	}); err != nil {
		zap.L().Warn("webhook log append failed", zap.Error(err))
	}
}

// Logs exposes the recent webhook trail for inspection.
func (s *Service) Logs(ctx context.Context) ([]domain.WebhookLog, error) {
	return s.logRepo.List(ctx)
}

func withinTolerance(expected, actual float64) bool {
	return math.Abs(expected-actual) <= amountTolerance
}

func (s *Service) processOrder(ctx context.Context, order *domain.Order, verified *pakasir.VerifiedTransaction) (*Result, error) {
	if !withinTolerance(order.TotalAmount, verified.Amount()) {
		zap.L().Warn("order amount mismatch",
			zap.String("invoiceCode", order.InvoiceCode),
			zap.Float64("expected", order.TotalAmount),
			zap.Float64("actual", verified.Amount()),
		)
		return nil, ErrAmountMismatch
	}

	switch verified.Status() {
	case pakasir.StatusCompleted:
		return s.completeOrder(ctx, order.ID)
	case pakasir.StatusCanceled, pakasir.StatusFailed, pakasir.StatusExpired:
		return s.cancelOrder(ctx, order.ID)
	default:
		return &Result{Type: "ORDER", Ignored: true, Message: "ignored status for order"}, nil
	}
}

func (s *Service) completeOrder(ctx context.Context, orderID int) (*Result, error) {
	result := &Result{Type: "ORDER", Status: domain.OrderStatusProcessing}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrNotFound
		}
		if order.Status != domain.OrderStatusPending {
			result.AlreadyProcessed = true
			result.Status = order.Status
			return nil
		}
		return s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusProcessing)
	})
	if err != nil {
		return nil, err
	}
	if result.AlreadyProcessed {
		return result, nil
	}

	// Fulfillment failures are surfaced, not rolled back: the payment is
	// real, so the order must stay PROCESSING and be retried or alerted.
	if err := s.fulfiller.FulfillOrder(ctx, orderID); err != nil {
		zap.L().Error("fulfillment failed for paid order", zap.Int("orderID", orderID), zap.Error(err))
		result.Message = "order paid, fulfillment pending retry"
	}
	return result, nil
}

func (s *Service) cancelOrder(ctx context.Context, orderID int) (*Result, error) {
	result := &Result{Type: "ORDER", Status: domain.OrderStatusCanceled}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrNotFound
		}
		if order.Status != domain.OrderStatusPending {
			result.AlreadyProcessed = true
			result.Status = order.Status
			return nil
		}
		return s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusCanceled)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) processDeposit(ctx context.Context, deposit *domain.Deposit, verified *pakasir.VerifiedTransaction) (*Result, error) {
	if !withinTolerance(deposit.TotalPay, verified.Amount()) {
		zap.L().Warn("deposit amount mismatch",
			zap.String("depositID", deposit.ID),
			zap.Float64("expected", deposit.TotalPay),
			zap.Float64("actual", verified.Amount()),
		)
		return nil, ErrAmountMismatch
	}

	switch verified.Status() {
	case pakasir.StatusCompleted:
		return s.completeDeposit(ctx, deposit.ID)
	case pakasir.StatusCanceled, pakasir.StatusFailed, pakasir.StatusExpired:
		return s.cancelDeposit(ctx, deposit.ID)
	default:
		return &Result{Type: "DEPOSIT", Ignored: true, Message: "ignored status for deposit"}, nil
	}
}

// completeDeposit marks the deposit PAID and credits the wallet inside one
// transaction. The nested wallet credit joins this transaction, so the
// status flip and the balance mutation commit or roll back together.
func (s *Service) completeDeposit(ctx context.Context, depositID string) (*Result, error) {
	result := &Result{Type: "DEPOSIT", Status: domain.DepositStatusPaid}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		deposit, err := s.depositRepo.FindByIDForUpdate(ctx, depositID)
		if err != nil {
			return err
		}
		if deposit == nil {
			return ErrNotFound
		}
		if deposit.Status != domain.DepositStatusPending {
			result.AlreadyProcessed = true
			result.Status = deposit.Status
			return nil
		}

		if err := s.depositRepo.UpdateStatus(ctx, depositID, domain.DepositStatusPaid); err != nil {
			return err
		}

		// The fee (totalPay - amount) is consumed by the gateway; the user
		// is credited the requested amount.
		description := fmt.Sprintf("Deposit via %s", deposit.PaymentMethod)
		return s.wallet.Credit(ctx, deposit.UserID, deposit.Amount, deposit.ID, description)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) cancelDeposit(ctx context.Context, depositID string) (*Result, error) {
	result := &Result{Type: "DEPOSIT", Status: domain.DepositStatusCanceled}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		deposit, err := s.depositRepo.FindByIDForUpdate(ctx, depositID)
		if err != nil {
			return err
		}
		if deposit == nil {
			return ErrNotFound
		}
		if deposit.Status != domain.DepositStatusPending {
			result.AlreadyProcessed = true
			result.Status = deposit.Status
			return nil
		}
		return s.depositRepo.UpdateStatus(ctx, depositID, domain.DepositStatusCanceled)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
