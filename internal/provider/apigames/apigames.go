package apigames

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ardiansah/digistore/internal/provider"
	"github.com/ardiansah/digistore/pkg/clients"
	"go.uber.org/zap"
)

const Code = "APIGAMES"

const (
	merchantIDSlug = "apigames_merchant_id"
	secretKeySlug  = "apigames_secret_key"
)

var ErrCredentialsMissing = errors.New("apigames credentials missing")

type CredentialsRepo interface {
	GetContent(ctx context.Context, slug string) (string, error)
}

type Client struct {
	baseURL string
	creds   CredentialsRepo
	client  clients.HTTPClientI
}

func New(baseURL string, creds CredentialsRepo, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		client:  client,
	}
}

func (c *Client) Code() string { return Code }

type orderPayload struct {
	RefID      string `json:"ref_id"`
	MerchantID string `json:"merchant_id"`
	Produk     string `json:"produk"`
	Tujuan     string `json:"tujuan"`
	ServerID   string `json:"server_id"`
	Signature  string `json:"signature"`
}

type orderResponse struct {
	Status   int    `json:"status"`
	ErrorMsg string `json:"error_msg"`
	Data     struct {
		Status  string `json:"status"`
		SN      string `json:"sn"`
		Message string `json:"message"`
		TrxID   string `json:"trx_id"`
	} `json:"data"`
}

// statusResponse tolerates both known response shapes: the status either
// nested under data or at the top level.
type statusResponse struct {
	Status  string `json:"status"`
	SN      string `json:"sn"`
	Message string `json:"message"`
	Data    struct {
		Status  string `json:"status"`
		SN      string `json:"sn"`
		Message string `json:"message"`
	} `json:"data"`
}

type profileResponse struct {
	Status int `json:"status"`
	Data   struct {
		Balance float64 `json:"saldo"`
	} `json:"data"`
}

// sign builds the transaction signature md5(merchantID:secretKey:refID).
// The scheme is mandated by the upstream API.
func sign(parts ...string) string {
	sum := md5.Sum([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])
}

func (c *Client) credentials(ctx context.Context) (merchantID, secretKey string, err error) {
	merchantID, err = c.creds.GetContent(ctx, merchantIDSlug)
	if err != nil {
		return "", "", err
	}
	secretKey, err = c.creds.GetContent(ctx, secretKeySlug)
	if err != nil {
		return "", "", err
	}
	if merchantID == "" || secretKey == "" {
		return "", "", ErrCredentialsMissing
	}
	return merchantID, secretKey, nil
}

func (c *Client) PlaceOrder(ctx context.Context, req provider.OrderRequest) (*provider.OrderResult, error) {
	merchantID, secretKey, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(orderPayload{
		RefID:      req.RefID,
		MerchantID: merchantID,
		Produk:     req.SKU,
		Tujuan:     req.Target,
		ServerID:   req.ServerID,
		Signature:  sign(merchantID, secretKey, req.RefID),
	})
	if err != nil {
		return nil, fmt.Errorf("can't marshal order payload: %w", err)
	}

	_, body, err := c.client.PostJSON(ctx, c.baseURL+"/v2/transaksi", payload)
	if err != nil {
		zap.L().Error("apigames transport failure", zap.String("refID", req.RefID), zap.Error(err))
		return &provider.OrderResult{Status: provider.StatusError, Message: err.Error()},
			fmt.Errorf("apigames place order: %w", err)
	}

	var resp orderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &provider.OrderResult{Status: provider.StatusError, Message: err.Error()},
			fmt.Errorf("apigames parse response: %w", err)
	}

	result := &provider.OrderResult{
		ProviderOrderID: resp.Data.TrxID,
		SerialNumber:    resp.Data.SN,
		Message:         resp.Data.Message,
	}
	if result.Message == "" {
		result.Message = resp.ErrorMsg
	}

	if resp.Status != 1 {
		result.Status = provider.StatusFailed
		return result, nil
	}
	result.Status = mapUpstreamStatus(resp.Data.Status)
	return result, nil
}

func (c *Client) CheckStatus(ctx context.Context, providerOrderID string) (*provider.StatusResult, error) {
	merchantID, secretKey, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("merchant_id", merchantID)
	q.Set("ref_id", providerOrderID)
	q.Set("signature", sign(merchantID, secretKey, providerOrderID))

	_, body, err := c.client.Get(ctx, c.baseURL+"/v2/transaksi/status?"+q.Encode(), nil)
	if err != nil {
		return &provider.StatusResult{Status: provider.StatusError, Message: err.Error()},
			fmt.Errorf("apigames check status: %w", err)
	}

	var resp statusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &provider.StatusResult{Status: provider.StatusError, Message: err.Error()},
			fmt.Errorf("apigames parse status response: %w", err)
	}

	rawStatus := resp.Data.Status
	if rawStatus == "" {
		rawStatus = resp.Status
	}
	sn := resp.Data.SN
	if sn == "" {
		sn = resp.SN
	}
	message := resp.Data.Message
	if message == "" {
		message = resp.Message
	}

	return &provider.StatusResult{
		Status:         mapUpstreamStatus(rawStatus),
		OriginalStatus: rawStatus,
		SerialNumber:   sn,
		Message:        message,
	}, nil
}

func (c *Client) CheckBalance(ctx context.Context) (float64, error) {
	merchantID, secretKey, err := c.credentials(ctx)
	if err != nil {
		return 0, err
	}

	q := url.Values{}
	q.Set("merchant_id", merchantID)
	q.Set("signature", sign(merchantID, secretKey))

	_, body, err := c.client.Get(ctx, c.baseURL+"/v2/profile?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("apigames check balance: %w", err)
	}

	var resp profileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("apigames parse profile response: %w", err)
	}
	if resp.Status != 1 {
		return 0, errors.New("apigames profile request rejected")
	}
	return resp.Data.Balance, nil
}

func (c *Client) RequestRefill(ctx context.Context, providerOrderID string) (*provider.RefillResult, error) {
	return nil, provider.ErrUnsupported
}

// mapUpstreamStatus normalizes the apigames vocabulary. Anything that is not
// an explicit final state (sukses/gagal) is still moving through the
// provider's pipeline.
func mapUpstreamStatus(raw string) provider.Status {
	switch strings.ToLower(raw) {
	case "sukses":
		return provider.StatusSuccess
	case "gagal":
		return provider.StatusFailed
	default:
		return provider.StatusProcessing
	}
}
