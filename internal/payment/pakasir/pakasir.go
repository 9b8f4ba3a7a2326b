package pakasir

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/pkg/clients"
	"go.uber.org/zap"
)

// GatewayName is the payment_gateway_configs row the reconciler loads.
const GatewayName = "pakasir"

// Gateway-reported transaction statuses.
const (
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
	StatusFailed    = "failed"
	StatusExpired   = "expired"
)

var ErrNoTransaction = errors.New("gateway reported no transaction")

// VerifiedTransaction is the authoritative state of one gateway
// transaction. It cannot be constructed outside this package: holding one
// proves the verification query succeeded.
type VerifiedTransaction struct {
	status string
	amount float64
	raw    string
}

func (t *VerifiedTransaction) Status() string  { return t.status }
func (t *VerifiedTransaction) Amount() float64 { return t.amount }

// Raw returns the verification response body for diagnostic logging.
func (t *VerifiedTransaction) Raw() string { return t.raw }

type Client struct {
	baseURL string
	client  clients.HTTPClientI
}

func New(baseURL string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type detailResponse struct {
	Transaction *struct {
		Status string      `json:"status"`
		Amount json.Number `json:"amount"`
	} `json:"transaction"`
}

// Verify re-queries the gateway's transaction-detail endpoint. The inbound
// webhook is only a trigger; this response is the state that gets trusted.
func (c *Client) Verify(ctx context.Context, cfg *domain.PaymentGatewayConfig, orderID string, amount float64) (*VerifiedTransaction, error) {
	q := url.Values{}
	q.Set("project", cfg.Slug)
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	q.Set("order_id", orderID)
	q.Set("api_key", cfg.APIKey)

	_, body, err := c.client.Get(ctx, c.baseURL+"/api/transactiondetail?"+q.Encode(), nil)
	if err != nil {
		zap.L().Error("gateway verification request failed", zap.String("orderID", orderID), zap.Error(err))
		return nil, fmt.Errorf("gateway verification: %w", err)
	}

	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("gateway verification parse: %w", err)
	}
	if resp.Transaction == nil {
		return nil, ErrNoTransaction
	}

	realAmount, err := resp.Transaction.Amount.Float64()
	if err != nil {
		return nil, fmt.Errorf("gateway verification invalid amount %q: %w", resp.Transaction.Amount.String(), err)
	}

	return &VerifiedTransaction{
		status: resp.Transaction.Status,
		amount: realAmount,
		raw:    string(body),
	}, nil
}
