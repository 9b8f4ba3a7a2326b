package configrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetGatewayConfig(ctx context.Context, name string) (*domain.PaymentGatewayConfig, error) {
	query := `
        SELECT name, slug, api_key, is_active
        FROM payment_gateway_configs
        WHERE name = $1
    `
	row := r.db.QueryRow(ctx, query, name)
	var cfg domain.PaymentGatewayConfig
	err := row.Scan(&cfg.Name, &cfg.Slug, &cfg.APIKey, &cfg.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get gateway config", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &cfg, nil
}

// GetContent returns a keyed configuration value. A missing row is an empty
// string, not an error, so callers decide whether the key is mandatory.
func (r *Repository) GetContent(ctx context.Context, slug string) (string, error) {
	query := `
        SELECT content
        FROM site_contents
        WHERE slug = $1
    `
	row := r.db.QueryRow(ctx, query, slug)
	var content string
	err := row.Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		zap.L().Error("failed to get site content", zap.String("slug", slug), zap.Error(err))
		return "", err
	}
	return content, nil
}
