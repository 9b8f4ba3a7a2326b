package catalogrepo

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

func (r *Repository) FindCategoryByTypeAndName(ctx context.Context, categoryType, name string) (*domain.Category, error) {
	query := `
        SELECT id, name, slug, type, icon_key
        FROM categories
        WHERE type = $1 AND name = $2
    `
	var c domain.Category
	err := r.db.QueryRow(ctx, query, categoryType, name).Scan(&c.ID, &c.Name, &c.Slug, &c.Type, &c.IconKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find category", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	query := `
        INSERT INTO categories (name, slug, type, icon_key)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	if err := r.db.QueryRow(ctx, query, c.Name, c.Slug, c.Type, c.IconKey).Scan(&c.ID); err != nil {
		zap.L().Error("failed to create category", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) scanProduct(ctx context.Context, query string, args ...any) (*domain.Product, error) {
	var p domain.Product
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.IsActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// FindProductBySlug looks a product up by slug within one category type.
func (r *Repository) FindProductBySlug(ctx context.Context, categoryType, slug string) (*domain.Product, error) {
	query := `
        SELECT p.id, p.category_id, p.name, p.slug, p.description, p.is_active
        FROM products p
        JOIN categories c ON c.id = p.category_id
        WHERE c.type = $1 AND p.slug = $2
    `
	return r.scanProduct(ctx, query, categoryType, slug)
}

func (r *Repository) FindProductByName(ctx context.Context, categoryType, name string) (*domain.Product, error) {
	query := `
        SELECT p.id, p.category_id, p.name, p.slug, p.description, p.is_active
        FROM products p
        JOIN categories c ON c.id = p.category_id
        WHERE c.type = $1 AND p.name = $2
    `
	return r.scanProduct(ctx, query, categoryType, name)
}

func (r *Repository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (category_id, name, slug, description, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, p.CategoryID, p.Name, p.Slug, p.Description, p.IsActive).Scan(&p.ID)
	if err != nil {
		zap.L().Error("failed to create product", zap.String("name", p.Name), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) UpdateProductCategory(ctx context.Context, productID, categoryID int) error {
	query := `
        UPDATE products
        SET category_id = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, categoryID, productID)
	if err != nil {
		zap.L().Error("failed to update product category", zap.Int("productID", productID), zap.Error(err))
		return err
	}
	return nil
}

// DeleteProductsNotIn removes every product under a category whose name is
// not in keep, returning the deleted names. Destructive: callers must gate
// this on a complete remote fetch.
func (r *Repository) DeleteProductsNotIn(ctx context.Context, categoryID int, keep []string) ([]string, error) {
	query := `
        DELETE FROM products
        WHERE category_id = $1 AND NOT (name = ANY($2))
        RETURNING name
    `
	rows, err := r.db.Query(ctx, query, categoryID, keep)
	if err != nil {
		zap.L().Error("failed to delete obsolete products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deleted []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			zap.L().Error("can't scan deleted product name", zap.Error(err))
			return nil, err
		}
		deleted = append(deleted, name)
	}
	return deleted, nil
}

func (r *Repository) CreateVariant(ctx context.Context, v *domain.ProductVariant) (*domain.ProductVariant, error) {
	query := `
        INSERT INTO product_variants (product_id, name, price, stock, is_active, best_provider)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, v.ProductID, v.Name, v.Price, v.Stock, v.IsActive, v.BestProvider).Scan(&v.ID)
	if err != nil {
		zap.L().Error("failed to create product variant", zap.String("name", v.Name), zap.Error(err))
		return nil, err
	}
	return v, nil
}

func (r *Repository) UpdateVariant(ctx context.Context, v *domain.ProductVariant) error {
	query := `
        UPDATE product_variants
        SET name = $1, price = $2, stock = $3, is_active = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, v.Name, v.Price, v.Stock, v.IsActive, v.ID)
	if err != nil {
		zap.L().Error("failed to update product variant", zap.Int("variantID", v.ID), zap.Error(err))
		return err
	}
	return nil
}

// FindBinding resolves a remote identity (providerCode, providerSku) to its
// local binding within one product's variant set.
func (r *Repository) FindBinding(ctx context.Context, productID int, providerCode, providerSku string) (*domain.VariantProvider, error) {
	query := `
        SELECT vp.id, vp.variant_id, vp.provider_code, vp.provider_sku, vp.provider_price, vp.provider_status
        FROM variant_providers vp
        JOIN product_variants v ON v.id = vp.variant_id
        WHERE v.product_id = $1 AND vp.provider_code = $2 AND vp.provider_sku = $3
    `
	var b domain.VariantProvider
	err := r.db.QueryRow(ctx, query, productID, providerCode, providerSku).Scan(
		&b.ID, &b.VariantID, &b.ProviderCode, &b.ProviderSku, &b.ProviderPrice, &b.ProviderStatus,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find variant binding", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) FindBindingsByVariant(ctx context.Context, variantID int) ([]domain.VariantProvider, error) {
	query := `
        SELECT id, variant_id, provider_code, provider_sku, provider_price, provider_status
        FROM variant_providers
        WHERE variant_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, variantID)
	if err != nil {
		zap.L().Error("can't get variant bindings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bindings []domain.VariantProvider
	for rows.Next() {
		var b domain.VariantProvider
		err := rows.Scan(&b.ID, &b.VariantID, &b.ProviderCode, &b.ProviderSku, &b.ProviderPrice, &b.ProviderStatus)
		if err != nil {
			zap.L().Error("can't scan variant binding row", zap.Error(err))
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

func (r *Repository) CreateBinding(ctx context.Context, b *domain.VariantProvider) (*domain.VariantProvider, error) {
	query := `
        INSERT INTO variant_providers (variant_id, provider_code, provider_sku, provider_price, provider_status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, b.VariantID, b.ProviderCode, b.ProviderSku, b.ProviderPrice, b.ProviderStatus).Scan(&b.ID)
	if err != nil {
		zap.L().Error("failed to create variant binding", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *Repository) UpdateBinding(ctx context.Context, bindingID int, providerPrice float64, providerStatus bool) error {
	query := `
        UPDATE variant_providers
        SET provider_price = $1, provider_status = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, providerPrice, providerStatus, bindingID)
	if err != nil {
		zap.L().Error("failed to update variant binding", zap.Int("bindingID", bindingID), zap.Error(err))
		return err
	}
	return nil
}
