package configrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetGatewayConfig(t *testing.T) {
	repo, mock := NewMock(t)
	tests := []struct {
		name        string
		gatewayName string
		mockSetup   func()
		expectErr   bool
		result      *domain.PaymentGatewayConfig
	}{
		{
			name:        "Config exists",
			gatewayName: "pakasir",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"name", "slug", "api_key", "is_active"}).
					AddRow("pakasir", "digistore", "secret-key", true)
				mock.ExpectQuery(regexp.QuoteMeta("FROM payment_gateway_configs")).
					WithArgs("pakasir").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.PaymentGatewayConfig{
				Name:     "pakasir",
				Slug:     "digistore",
				APIKey:   "secret-key",
				IsActive: true,
			},
		},
		{
			name:        "Config does not exist",
			gatewayName: "unknown",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM payment_gateway_configs")).
					WithArgs("unknown").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:        "Database error",
			gatewayName: "pakasir",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM payment_gateway_configs")).
					WithArgs("pakasir").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			cfg, err := repo.GetGatewayConfig(context.Background(), tt.gatewayName)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, cfg)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetContent(t *testing.T) {
	repo, mock := NewMock(t)
	tests := []struct {
		name      string
		slug      string
		mockSetup func()
		expectErr bool
		result    string
	}{
		{
			name: "Content exists",
			slug: "medanpedia_api_key",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"content"}).AddRow("key")
				mock.ExpectQuery(regexp.QuoteMeta("FROM site_contents")).
					WithArgs("medanpedia_api_key").
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    "key",
		},
		{
			name: "Missing slug is empty, not an error",
			slug: "unset_key",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM site_contents")).
					WithArgs("unset_key").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    "",
		},
		{
			name: "Database error",
			slug: "medanpedia_api_key",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM site_contents")).
					WithArgs("medanpedia_api_key").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			content, err := repo.GetContent(context.Background(), tt.slug)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, content)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
