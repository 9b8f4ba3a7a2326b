package provider

import (
	"context"
	"errors"
)

// Status is the canonical order state every upstream vocabulary is
// normalized into. ERROR means the call itself failed (transport or parse)
// and the remote state is unknown, which is retryable; FAILED means the
// upstream explicitly rejected the order, which is terminal.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusSuccess    Status = "SUCCESS"
	StatusFailed     Status = "FAILED"
	StatusError      Status = "ERROR"
)

// ErrUnsupported is returned for operations a provider does not offer.
var ErrUnsupported = errors.New("operation not supported by provider")

type OrderRequest struct {
	// RefID is the caller-supplied idempotency token, unique per attempt.
	RefID string
	// SKU identifies the remote service or product code.
	SKU string
	// Target is the account, link or number the service is delivered to.
	Target   string
	Quantity int
	ServerID string
}

type OrderResult struct {
	Status          Status
	ProviderOrderID string
	SerialNumber    string
	Message         string
}

type StatusResult struct {
	Status         Status
	OriginalStatus string
	SerialNumber   string
	StartCount     int
	Remains        int
	Message        string
}

type RefillResult struct {
	RefillID string
	Message  string
}

// Client is the single interface the rest of the system sees for every
// upstream provider.
type Client interface {
	Code() string
	PlaceOrder(ctx context.Context, req OrderRequest) (*OrderResult, error)
	CheckStatus(ctx context.Context, providerOrderID string) (*StatusResult, error)
	CheckBalance(ctx context.Context) (float64, error)
	RequestRefill(ctx context.Context, providerOrderID string) (*RefillResult, error)
}
