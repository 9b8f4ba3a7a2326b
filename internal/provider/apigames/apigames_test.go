package apigames

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/ardiansah/digistore/internal/provider"
	"github.com/stretchr/testify/assert"
)

type stubCreds map[string]string

func (s stubCreds) GetContent(_ context.Context, slug string) (string, error) {
	return s[slug], nil
}

type fakeHTTP struct {
	body []byte
	err  error

	lastURL  string
	lastJSON []byte
}

func (f *fakeHTTP) Do(*http.Request) (*http.Response, error) { return nil, nil }

func (f *fakeHTTP) Get(_ context.Context, u string, _ http.Header) (int, []byte, error) {
	f.lastURL = u
	return http.StatusOK, f.body, f.err
}

func (f *fakeHTTP) PostJSON(_ context.Context, u string, body []byte) (int, []byte, error) {
	f.lastURL = u
	f.lastJSON = body
	return http.StatusOK, f.body, f.err
}

func (f *fakeHTTP) PostForm(_ context.Context, u string, _ url.Values) (int, []byte, error) {
	return 0, nil, errors.New("unexpected call")
}

func creds() stubCreds {
	return stubCreds{
		"apigames_merchant_id": "M123",
		"apigames_secret_key":  "secret",
	}
}

func TestPlaceOrder(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		transportErr   error
		expectedStatus provider.Status
		expectErr      bool
	}{
		{
			name:           "Accepted and completed",
			body:           `{"status":1,"data":{"status":"sukses","sn":"SN-1","trx_id":"T-1","message":"ok"}}`,
			expectedStatus: provider.StatusSuccess,
		},
		{
			name:           "Accepted and still moving",
			body:           `{"status":1,"data":{"status":"proses","trx_id":"T-2"}}`,
			expectedStatus: provider.StatusProcessing,
		},
		{
			name:           "Explicitly rejected",
			body:           `{"status":0,"error_msg":"saldo tidak cukup"}`,
			expectedStatus: provider.StatusFailed,
		},
		{
			name:           "Transport failure is retryable",
			transportErr:   errors.New("timeout"),
			expectedStatus: provider.StatusError,
			expectErr:      true,
		},
		{
			name:           "Unparseable body is retryable",
			body:           `<html>bad gateway</html>`,
			expectedStatus: provider.StatusError,
			expectErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient := &fakeHTTP{body: []byte(tt.body), err: tt.transportErr}
			client := New("https://v1.apigames.id", creds(), httpClient)

			result, err := client.PlaceOrder(context.Background(), provider.OrderRequest{
				RefID:  "ref-1",
				SKU:    "ML86",
				Target: "12345",
			})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedStatus, result.Status)
		})
	}
}

func TestPlaceOrder_Payload(t *testing.T) {
	httpClient := &fakeHTTP{body: []byte(`{"status":1,"data":{"status":"sukses"}}`)}
	client := New("https://v1.apigames.id", creds(), httpClient)

	_, err := client.PlaceOrder(context.Background(), provider.OrderRequest{
		RefID:  "ref-1",
		SKU:    "ML86",
		Target: "12345",
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://v1.apigames.id/v2/transaksi", httpClient.lastURL)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(httpClient.lastJSON, &payload))
	assert.Equal(t, "M123", payload["merchant_id"])
	assert.Equal(t, "ML86", payload["produk"])
	assert.Equal(t, "12345", payload["tujuan"])
	assert.Equal(t, sign("M123", "secret", "ref-1"), payload["signature"])
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus provider.Status
		expectedRaw    string
	}{
		{
			name:           "Nested data shape",
			body:           `{"data":{"status":"sukses","sn":"SN-1"}}`,
			expectedStatus: provider.StatusSuccess,
			expectedRaw:    "sukses",
		},
		{
			name:           "Flat legacy shape",
			body:           `{"status":"gagal","message":"produk kosong"}`,
			expectedStatus: provider.StatusFailed,
			expectedRaw:    "gagal",
		},
		{
			name:           "Unknown vocabulary keeps moving",
			body:           `{"data":{"status":"antri"}}`,
			expectedStatus: provider.StatusProcessing,
			expectedRaw:    "antri",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient := &fakeHTTP{body: []byte(tt.body)}
			client := New("https://v1.apigames.id", creds(), httpClient)

			result, err := client.CheckStatus(context.Background(), "ref-1")
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, tt.expectedRaw, result.OriginalStatus)
		})
	}

	t.Run("Transport failure", func(t *testing.T) {
		httpClient := &fakeHTTP{err: errors.New("timeout")}
		client := New("https://v1.apigames.id", creds(), httpClient)

		result, err := client.CheckStatus(context.Background(), "ref-1")
		assert.Error(t, err)
		assert.Equal(t, provider.StatusError, result.Status)
	})
}

func TestCheckBalance(t *testing.T) {
	t.Run("Balance returned", func(t *testing.T) {
		httpClient := &fakeHTTP{body: []byte(`{"status":1,"data":{"saldo":250000.5}}`)}
		client := New("https://v1.apigames.id", creds(), httpClient)

		balance, err := client.CheckBalance(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 250000.5, balance)
	})

	t.Run("Rejected profile request", func(t *testing.T) {
		httpClient := &fakeHTTP{body: []byte(`{"status":0}`)}
		client := New("https://v1.apigames.id", creds(), httpClient)

		_, err := client.CheckBalance(context.Background())
		assert.Error(t, err)
	})
}

func TestCredentialsMissing(t *testing.T) {
	client := New("https://v1.apigames.id", stubCreds{}, &fakeHTTP{})

	_, err := client.PlaceOrder(context.Background(), provider.OrderRequest{RefID: "r"})
	assert.ErrorIs(t, err, ErrCredentialsMissing)

	_, err = client.CheckStatus(context.Background(), "r")
	assert.ErrorIs(t, err, ErrCredentialsMissing)

	_, err = client.CheckBalance(context.Background())
	assert.ErrorIs(t, err, ErrCredentialsMissing)
}

func TestRequestRefill(t *testing.T) {
	client := New("https://v1.apigames.id", creds(), &fakeHTTP{})

	_, err := client.RequestRefill(context.Background(), "ref-1")
	assert.ErrorIs(t, err, provider.ErrUnsupported)
}
