package medanpedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ardiansah/digistore/internal/provider"
	"github.com/ardiansah/digistore/pkg/clients"
	"go.uber.org/zap"
)

const Code = "MEDANPEDIA"

const (
	apiIDSlug   = "medanpedia_api_id"
	apiKeySlug  = "medanpedia_api_key"
	marginSlug  = "medanpedia_margin_percent"
	defaultMarg = 10.0
)

var ErrCredentialsMissing = errors.New("medanpedia credentials missing")

type CredentialsRepo interface {
	GetContent(ctx context.Context, slug string) (string, error)
}

// Service is one entry of the remote catalog. Numeric fields use
// json.Number because the upstream is not consistent about emitting them as
// numbers or strings.
type Service struct {
	ID       json.Number `json:"id"`
	Category string      `json:"category"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
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

// apiResponse is the generic envelope. The payload shape varies per
// endpoint, so data stays raw until the caller decodes it. The status field
// itself is raw too: it is a bool on most endpoints but the status-check
// endpoint has been observed returning the order status text there instead
// of under data.
type apiResponse struct {
	Status json.RawMessage `json:"status"`
	Msg    string          `json:"msg"`
	Data   json.RawMessage `json:"data"`
}

func (r *apiResponse) ok() bool {
	var b bool
	if err := json.Unmarshal(r.Status, &b); err == nil {
		return b
	}
	// A string status means the call itself went through.
	return r.statusText() != ""
}

func (r *apiResponse) statusText() string {
	var s string
	if err := json.Unmarshal(r.Status, &s); err == nil {
		return s
	}
	return ""
}

func (c *Client) credentials(ctx context.Context) (apiID, apiKey string, err error) {
	apiID, err = c.creds.GetContent(ctx, apiIDSlug)
	if err != nil {
		return "", "", err
	}
	apiKey, err = c.creds.GetContent(ctx, apiKeySlug)
	if err != nil {
		return "", "", err
	}
	if apiID == "" || apiKey == "" {
		return "", "", ErrCredentialsMissing
	}
	return apiID, apiKey, nil
}

// MarginPercent returns the configured resale margin, defaulting to 10.
func (c *Client) MarginPercent(ctx context.Context) (float64, error) {
	raw, err := c.creds.GetContent(ctx, marginSlug)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return defaultMarg, nil
	}
	margin, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid margin percent %q: %w", raw, err)
	}
	return margin, nil
}

func (c *Client) post(ctx context.Context, endpoint string, form url.Values) ([]byte, *apiResponse, error) {
	apiID, apiKey, err := c.credentials(ctx)
	if err != nil {
		return nil, nil, err
	}
	form.Set("api_id", apiID)
	form.Set("api_key", apiKey)

	_, body, err := c.client.PostForm(ctx, c.baseURL+endpoint, form)
	if err != nil {
		zap.L().Error("medanpedia transport failure", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, nil, fmt.Errorf("medanpedia %s: %w", endpoint, err)
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, fmt.Errorf("medanpedia parse %s response: %w", endpoint, err)
	}
	return body, &resp, nil
}

func (c *Client) PlaceOrder(ctx context.Context, req provider.OrderRequest) (*provider.OrderResult, error) {
	form := url.Values{}
	form.Set("service", req.SKU)
	form.Set("target", req.Target)
	form.Set("quantity", strconv.Itoa(req.Quantity))

	_, resp, err := c.post(ctx, "/order", form)
	if err != nil {
		return &provider.OrderResult{Status: provider.StatusError, Message: err.Error()}, err
	}

	if !resp.ok() {
		return &provider.OrderResult{Status: provider.StatusFailed, Message: resp.Msg}, nil
	}

	var data struct {
		ID json.Number `json:"id"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil || data.ID.String() == "" {
		return &provider.OrderResult{Status: provider.StatusError, Message: resp.Msg},
			fmt.Errorf("medanpedia order response missing id")
	}

	return &provider.OrderResult{
		Status:          provider.StatusProcessing,
		ProviderOrderID: data.ID.String(),
		Message:         resp.Msg,
	}, nil
}

// statusPayload tolerates both known shapes: the status nested under data or
// at the top level of the response body.
type statusPayload struct {
	Status     string      `json:"status"`
	StartCount json.Number `json:"start_count"`
	Remains    json.Number `json:"remains"`
}

func (c *Client) CheckStatus(ctx context.Context, providerOrderID string) (*provider.StatusResult, error) {
	form := url.Values{}
	form.Set("id", providerOrderID)

	_, resp, err := c.post(ctx, "/status", form)
	if err != nil {
		return &provider.StatusResult{Status: provider.StatusError, Message: err.Error()}, err
	}

	var nested statusPayload
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &nested); err != nil {
			return &provider.StatusResult{Status: provider.StatusError, Message: resp.Msg},
				fmt.Errorf("medanpedia parse status payload: %w", err)
		}
	}

	rawStatus := nested.Status
	if rawStatus == "" {
		// Fallback shape: status text at the top level instead of data.status.
		rawStatus = resp.statusText()
	}

	startCount, _ := nested.StartCount.Int64()
	remains, _ := nested.Remains.Int64()

	return &provider.StatusResult{
		Status:         MapStatus(rawStatus),
		OriginalStatus: rawStatus,
		StartCount:     int(startCount),
		Remains:        int(remains),
		Message:        resp.Msg,
	}, nil
}

func (c *Client) CheckBalance(ctx context.Context) (float64, error) {
	_, resp, err := c.post(ctx, "/profile", url.Values{})
	if err != nil {
		return 0, err
	}
	if !resp.ok() {
		return 0, fmt.Errorf("medanpedia profile rejected: %s", resp.Msg)
	}

	var data struct {
		Balance json.Number `json:"balance"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return 0, fmt.Errorf("medanpedia parse profile payload: %w", err)
	}
	balance, err := data.Balance.Float64()
	if err != nil {
		return 0, fmt.Errorf("medanpedia invalid balance %q: %w", data.Balance.String(), err)
	}
	return balance, nil
}

func (c *Client) RequestRefill(ctx context.Context, providerOrderID string) (*provider.RefillResult, error) {
	form := url.Values{}
	form.Set("id_order", providerOrderID)

	_, resp, err := c.post(ctx, "/refill", form)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, fmt.Errorf("medanpedia refill rejected: %s", resp.Msg)
	}

	var data struct {
		IDRefill json.Number `json:"id_refill"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil || data.IDRefill.String() == "" {
		return nil, errors.New("medanpedia refill response missing id_refill")
	}

	return &provider.RefillResult{RefillID: data.IDRefill.String(), Message: resp.Msg}, nil
}

func (c *Client) CheckRefillStatus(ctx context.Context, refillID string) (*provider.StatusResult, error) {
	form := url.Values{}
	form.Set("id_refill", refillID)

	_, resp, err := c.post(ctx, "/refill_status", form)
	if err != nil {
		return &provider.StatusResult{Status: provider.StatusError, Message: err.Error()}, err
	}

	var data struct {
		Status string `json:"status"`
	}
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			return &provider.StatusResult{Status: provider.StatusError, Message: resp.Msg},
				fmt.Errorf("medanpedia parse refill status payload: %w", err)
		}
	}

	return &provider.StatusResult{
		Status:         MapStatus(data.Status),
		OriginalStatus: data.Status,
		Message:        resp.Msg,
	}, nil
}

// GetServices fetches the full remote catalog. An error means the fetch was
// incomplete and the result must not be used for destructive reconciliation.
func (c *Client) GetServices(ctx context.Context) ([]Service, error) {
	_, resp, err := c.post(ctx, "/services", url.Values{})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, fmt.Errorf("medanpedia services rejected: %s", resp.Msg)
	}

	var services []Service
	if err := json.Unmarshal(resp.Data, &services); err != nil {
		return nil, fmt.Errorf("medanpedia parse services payload: %w", err)
	}
	return services, nil
}

// MapStatus normalizes the medanpedia vocabulary into the canonical
// taxonomy. Unrecognized values stay PENDING rather than guessing a final
// state.
func MapStatus(raw string) provider.Status {
	switch strings.ToLower(raw) {
	case "sukses":
		return provider.StatusSuccess
	case "gagal":
		return provider.StatusFailed
	case "proses", "validasi provider", "pending":
		return provider.StatusProcessing
	default:
		return provider.StatusPending
	}
}
