package webhookservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/payment/pakasir"
	"github.com/ardiansah/digistore/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	configRepo  *MockConfigRepo
	orderRepo   *MockOrderRepo
	depositRepo *MockDepositRepo
	wallet      *MockWallet
	verifier    *MockVerifier
	fulfiller   *MockFulfiller
	logRepo     *MockLogRepo
	txManager   *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		configRepo:  NewMockConfigRepo(ctrl),
		orderRepo:   NewMockOrderRepo(ctrl),
		depositRepo: NewMockDepositRepo(ctrl),
		wallet:      NewMockWallet(ctrl),
		verifier:    NewMockVerifier(ctrl),
		fulfiller:   NewMockFulfiller(ctrl),
		logRepo:     NewMockLogRepo(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
	}
	service := New(m.configRepo, m.orderRepo, m.depositRepo, m.wallet, m.verifier, m.fulfiller, m.logRepo, m.txManager)
	defer ctrl.Finish()
	return service, m
}

// stubGateway feeds a canned transaction-detail response through the real
// verifier so tests can hold a genuine VerifiedTransaction.
type stubGateway struct {
	body string
}

func (s *stubGateway) Do(*http.Request) (*http.Response, error) { return nil, nil }

func (s *stubGateway) Get(context.Context, string, http.Header) (int, []byte, error) {
	return http.StatusOK, []byte(s.body), nil
}

func (s *stubGateway) PostJSON(context.Context, string, []byte) (int, []byte, error) {
	return 0, nil, errors.New("unexpected call")
}

func (s *stubGateway) PostForm(context.Context, string, url.Values) (int, []byte, error) {
	return 0, nil, errors.New("unexpected call")
}

func verifiedTx(t *testing.T, status string, amount float64) *pakasir.VerifiedTransaction {
	t.Helper()
	body := fmt.Sprintf(`{"transaction":{"status":%q,"amount":%v}}`, status, amount)
	client := pakasir.New("https://gateway.test", &stubGateway{body: body})
	tx, err := client.Verify(context.Background(), activeConfig(), "any", amount)
	assert.NoError(t, err)
	return tx
}

func activeConfig() *domain.PaymentGatewayConfig {
	return &domain.PaymentGatewayConfig{Name: pakasir.GatewayName, Slug: "store", APIKey: "key", IsActive: true}
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	)
}

func pendingDeposit() *domain.Deposit {
	return &domain.Deposit{
		ID:            "DEP-1",
		UserID:        1,
		Amount:        150000,
		TotalPay:      151000,
		PaymentMethod: "qris",
		Status:        domain.DepositStatusPending,
	}
}

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:          10,
		UserID:      1,
		InvoiceCode: "INV-10",
		TotalAmount: 75000,
		Status:      domain.OrderStatusPending,
	}
}

func TestProcess_Gates(t *testing.T) {
	service, m := NewMock(t)
	notification := Notification{OrderID: "DEP-1", Status: pakasir.StatusCompleted, Amount: 151000}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Config missing",
			prepareMock: func() {
				m.configRepo.EXPECT().GetGatewayConfig(gomock.Any(), pakasir.GatewayName).Return(nil, nil)
			},
			expectedError: ErrConfigMissing,
		},
		{
			name: "Config inactive",
			prepareMock: func() {
				cfg := activeConfig()
				cfg.IsActive = false
				m.configRepo.EXPECT().GetGatewayConfig(gomock.Any(), pakasir.GatewayName).Return(cfg, nil)
			},
			expectedError: ErrConfigMissing,
		},
		{
			name: "Gateway has no transaction",
			prepareMock: func() {
				m.configRepo.EXPECT().GetGatewayConfig(gomock.Any(), pakasir.GatewayName).Return(activeConfig(), nil)
				m.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), "DEP-1", 151000.0).Return(nil, pakasir.ErrNoTransaction)
			},
			expectedError: ErrVerificationFailed,
		},
		{
			name: "Claimed status contradicts gateway",
			prepareMock: func() {
				m.configRepo.EXPECT().GetGatewayConfig(gomock.Any(), pakasir.GatewayName).Return(activeConfig(), nil)
				m.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), "DEP-1", 151000.0).
					Return(verifiedTx(t, pakasir.StatusExpired, 151000), nil)
			},
			expectedError: ErrVerificationFailed,
		},
		{
			name: "Verification transport error propagates",
			prepareMock: func() {
				m.configRepo.EXPECT().GetGatewayConfig(gomock.Any(), pakasir.GatewayName).Return(activeConfig(), nil)
				m.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), "DEP-1", 151000.0).
					Return(nil, errors.New("connection refused"))
			},
			expectedError: errors.New("gateway verification: connection refused"),
		},
		{
			name: "No order or deposit matches",
			prepareMock: func() {
				m.configRepo.EXPECT().GetGatewayConfig(gomock.Any(), pakasir.GatewayName).Return(activeConfig(), nil)
				m.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), "DEP-1", 151000.0).
					Return(verifiedTx(t, pakasir.StatusCompleted, 151000), nil)
				m.logRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				m.orderRepo.EXPECT().FindByInvoiceCode(gomock.Any(), "DEP-1").Return(nil, nil)
				m.depositRepo.EXPECT().FindByID(gomock.Any(), "DEP-1").Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Process(context.Background(), notification)
			assert.Nil(t, result)
			assert.Error(t, err)
			if tt.expectedError != nil {
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			}
		})
	}
}

func TestProcess_Deposit(t *testing.T) {
	notification := Notification{OrderID: "DEP-1", Status: pakasir.StatusCompleted, Amount: 151000}

	resolveDeposit := func(m *mocks, status string, amount float64) {
		m.configRepo.EXPECT().GetGatewayConfig(gomock.Any(), pakasir.GatewayName).Return(activeConfig(), nil)
		m.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), "DEP-1", gomock.Any()).
			Return(verifiedTx(t, status, amount), nil)
		m.logRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.orderRepo.EXPECT().FindByInvoiceCode(gomock.Any(), "DEP-1").Return(nil, nil)
		m.depositRepo.EXPECT().FindByID(gomock.Any(), "DEP-1").Return(pendingDeposit(), nil)
	}

	t.Run("Completed deposit credits requested amount", func(t *testing.T) {
		service, m := NewMock(t)
		resolveDeposit(m, pakasir.StatusCompleted, 151000)
		passthroughTx(m.txManager)
		m.depositRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "DEP-1").Return(pendingDeposit(), nil)
		m.depositRepo.EXPECT().UpdateStatus(gomock.Any(), "DEP-1", domain.DepositStatusPaid).Return(nil)
		m.wallet.EXPECT().Credit(gomock.Any(), 1, 150000.0, "DEP-1", "Deposit via qris").Return(nil)

		result, err := service.Process(context.Background(), notification)
		assert.NoError(t, err)
		assert.Equal(t, "DEPOSIT", result.Type)
		assert.Equal(t, domain.DepositStatusPaid, result.Status)
		assert.False(t, result.AlreadyProcessed)
	})

	t.Run("Second delivery is acknowledged without mutation", func(t *testing.T) {
		service, m := NewMock(t)
		resolveDeposit(m, pakasir.StatusCompleted, 151000)
		passthroughTx(m.txManager)
		paid := pendingDeposit()
		paid.Status = domain.DepositStatusPaid
		m.depositRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "DEP-1").Return(paid, nil)

		result, err := service.Process(context.Background(), notification)
		assert.NoError(t, err)
		assert.True(t, result.AlreadyProcessed)
		assert.Equal(t, domain.DepositStatusPaid, result.Status)
	})

	t.Run("Amount off by exactly the tolerance is accepted", func(t *testing.T) {
		service, m := NewMock(t)
		resolveDeposit(m, pakasir.StatusCompleted, 151100)
		passthroughTx(m.txManager)
		m.depositRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "DEP-1").Return(pendingDeposit(), nil)
		m.depositRepo.EXPECT().UpdateStatus(gomock.Any(), "DEP-1", domain.DepositStatusPaid).Return(nil)
		m.wallet.EXPECT().Credit(gomock.Any(), 1, 150000.0, "DEP-1", "Deposit via qris").Return(nil)

		result, err := service.Process(context.Background(), notification)
		assert.NoError(t, err)
		assert.Equal(t, domain.DepositStatusPaid, result.Status)
	})

	t.Run("Amount past the tolerance is rejected", func(t *testing.T) {
		service, m := NewMock(t)
		resolveDeposit(m, pakasir.StatusCompleted, 151101)

		result, err := service.Process(context.Background(), notification)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrAmountMismatch)
	})

	t.Run("Expired deposit is canceled", func(t *testing.T) {
		service, m := NewMock(t)
		expired := Notification{OrderID: "DEP-1", Status: pakasir.StatusExpired, Amount: 151000}
		resolveDeposit(m, pakasir.StatusExpired, 151000)
		passthroughTx(m.txManager)
		m.depositRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "DEP-1").Return(pendingDeposit(), nil)
		m.depositRepo.EXPECT().UpdateStatus(gomock.Any(), "DEP-1", domain.DepositStatusCanceled).Return(nil)

		result, err := service.Process(context.Background(), expired)
		assert.NoError(t, err)
		assert.Equal(t, domain.DepositStatusCanceled, result.Status)
	})

	t.Run("Unknown gateway status is ignored", func(t *testing.T) {
		service, m := NewMock(t)
		pendingNote := Notification{OrderID: "DEP-1", Status: "process", Amount: 151000}
		resolveDeposit(m, "process", 151000)

		result, err := service.Process(context.Background(), pendingNote)
		assert.NoError(t, err)
		assert.True(t, result.Ignored)
	})
}

func TestProcess_Order(t *testing.T) {
	notification := Notification{OrderID: "INV-10", Status: pakasir.StatusCompleted, Amount: 75000}

	resolveOrder := func(m *mocks, status string, amount float64) {
		m.configRepo.EXPECT().GetGatewayConfig(gomock.Any(), pakasir.GatewayName).Return(activeConfig(), nil)
		m.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), "INV-10", gomock.Any()).
			Return(verifiedTx(t, status, amount), nil)
		m.logRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.orderRepo.EXPECT().FindByInvoiceCode(gomock.Any(), "INV-10").Return(pendingOrder(), nil)
	}

	t.Run("Completed order moves to processing and is fulfilled", func(t *testing.T) {
		service, m := NewMock(t)
		resolveOrder(m, pakasir.StatusCompleted, 75000)
		passthroughTx(m.txManager)
		m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 10).Return(pendingOrder(), nil)
		m.orderRepo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderStatusProcessing).Return(nil)
		m.fulfiller.EXPECT().FulfillOrder(gomock.Any(), 10).Return(nil)

		result, err := service.Process(context.Background(), notification)
		assert.NoError(t, err)
		assert.Equal(t, "ORDER", result.Type)
		assert.Equal(t, domain.OrderStatusProcessing, result.Status)
		assert.Empty(t, result.Message)
	})

	t.Run("Fulfillment failure keeps the order paid", func(t *testing.T) {
		service, m := NewMock(t)
		resolveOrder(m, pakasir.StatusCompleted, 75000)
		passthroughTx(m.txManager)
		m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 10).Return(pendingOrder(), nil)
		m.orderRepo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderStatusProcessing).Return(nil)
		m.fulfiller.EXPECT().FulfillOrder(gomock.Any(), 10).Return(errors.New("provider down"))

		result, err := service.Process(context.Background(), notification)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusProcessing, result.Status)
		assert.Equal(t, "order paid, fulfillment pending retry", result.Message)
	})

	t.Run("Replayed webhook does not refulfill", func(t *testing.T) {
		service, m := NewMock(t)
		resolveOrder(m, pakasir.StatusCompleted, 75000)
		passthroughTx(m.txManager)
		processing := pendingOrder()
		processing.Status = domain.OrderStatusProcessing
		m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 10).Return(processing, nil)

		result, err := service.Process(context.Background(), notification)
		assert.NoError(t, err)
		assert.True(t, result.AlreadyProcessed)
		assert.Equal(t, domain.OrderStatusProcessing, result.Status)
	})

	t.Run("Failed payment cancels the order", func(t *testing.T) {
		service, m := NewMock(t)
		failed := Notification{OrderID: "INV-10", Status: pakasir.StatusFailed, Amount: 75000}
		resolveOrder(m, pakasir.StatusFailed, 75000)
		passthroughTx(m.txManager)
		m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 10).Return(pendingOrder(), nil)
		m.orderRepo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderStatusCanceled).Return(nil)

		result, err := service.Process(context.Background(), failed)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCanceled, result.Status)
	})

	t.Run("Order amount mismatch is rejected before any mutation", func(t *testing.T) {
		service, m := NewMock(t)
		resolveOrder(m, pakasir.StatusCompleted, 75101)

		result, err := service.Process(context.Background(), notification)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrAmountMismatch)
	})
}

func TestLogs(t *testing.T) {
	service, m := NewMock(t)
	entries := []domain.WebhookLog{{ID: 2, Payload: `{"order_id":"DEP-1"}`}}
	m.logRepo.EXPECT().List(gomock.Any()).Return(entries, nil)

	result, err := service.Logs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, entries, result)
}
