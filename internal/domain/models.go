package domain

import "time"

// Order statuses. DELIVERED and CANCELED are terminal.
const (
	OrderStatusPending    string = "PENDING"
	OrderStatusProcessing string = "PROCESSING"
	OrderStatusDelivered  string = "DELIVERED"
	OrderStatusCanceled   string = "CANCELED"
)

// Deposit statuses. PAID and CANCELED are terminal.
const (
	DepositStatusPending  string = "PENDING"
	DepositStatusPaid     string = "PAID"
	DepositStatusCanceled string = "CANCELED"
)

const TransactionTypeDeposit string = "DEPOSIT"

type User struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Balance   float64   `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

type Order struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	InvoiceCode string    `db:"invoice_code"`
	TotalAmount float64   `db:"total_amount"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`

	Items []OrderItem
}

type OrderItem struct {
	ID              int     `db:"id"`
	OrderID         int     `db:"order_id"`
	VariantID       int     `db:"variant_id"`
	Quantity        int     `db:"quantity"`
	Price           float64 `db:"price"`
	Target          string  `db:"target"`
	ProviderCode    string  `db:"provider_code"`
	ProviderOrderID string  `db:"provider_order_id"`
	ProviderStatus  string  `db:"provider_status"`
}

// Deposit identity doubles as the payment gateway correlation key.
type Deposit struct {
	ID            string    `db:"id"`
	UserID        int       `db:"user_id"`
	Amount        float64   `db:"amount"`
	TotalPay      float64   `db:"total_pay"`
	PaymentMethod string    `db:"payment_method"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

type WalletTransaction struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	Type          string    `db:"type"`
	Amount        float64   `db:"amount"`
	BalanceBefore float64   `db:"balance_before"`
	BalanceAfter  float64   `db:"balance_after"`
	ReferenceID   string    `db:"reference_id"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
}

type Category struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Slug    string `db:"slug"`
	Type    string `db:"type"`
	IconKey string `db:"icon_key"`
}

type Product struct {
	ID          int    `db:"id"`
	CategoryID  int    `db:"category_id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
}

type ProductVariant struct {
	ID           int     `db:"id"`
	ProductID    int     `db:"product_id"`
	Name         string  `db:"name"`
	Price        float64 `db:"price"`
	Stock        int     `db:"stock"`
	IsActive     bool    `db:"is_active"`
	BestProvider string  `db:"best_provider"`
}

// VariantProvider binds a local variant to a remote catalog entry.
// (ProviderCode, ProviderSku) is unique within the owning product's variants.
type VariantProvider struct {
	ID             int     `db:"id"`
	VariantID      int     `db:"variant_id"`
	ProviderCode   string  `db:"provider_code"`
	ProviderSku    string  `db:"provider_sku"`
	ProviderPrice  float64 `db:"provider_price"`
	ProviderStatus bool    `db:"provider_status"`
}

type PaymentGatewayConfig struct {
	Name     string `db:"name"`
	Slug     string `db:"slug"`
	APIKey   string `db:"api_key"`
	IsActive bool   `db:"is_active"`
}

type WebhookLog struct {
	ID           int       `db:"id"`
	Payload      string    `db:"payload"`
	Verification string    `db:"verification"`
	ReceivedAt   time.Time `db:"received_at"`
}
