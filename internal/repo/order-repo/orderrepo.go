package orderrepo

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

const orderColumns = `id, user_id, invoice_code, total_amount, status, created_at`

func (r *Repository) scanOrder(ctx context.Context, query string, args ...any) (*domain.Order, error) {
	var order domain.Order
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&order.ID, &order.UserID, &order.InvoiceCode, &order.TotalAmount, &order.Status, &order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindByInvoiceCode(ctx context.Context, invoiceCode string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE invoice_code = $1
    `
	return r.scanOrder(ctx, query, invoiceCode)
}

// FindByIDForUpdate locks the order row for the duration of the surrounding
// transaction. Must be called inside a TXManager callback.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanOrder(ctx, query, id)
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int, status string) error {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, orderID)
	if err != nil {
		zap.L().Error("failed to update order status", zap.Int("orderID", orderID), zap.Error(err))
		return err
	}
	return nil
}

const itemColumns = `id, order_id, variant_id, quantity, price, target, provider_code, provider_order_id, provider_status`

func (r *Repository) scanItems(rows pgx.Rows) ([]domain.OrderItem, error) {
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.VariantID, &item.Quantity,
			&item.Price, &item.Target, &item.ProviderCode, &item.ProviderOrderID, &item.ProviderStatus,
		)
		if err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) FindItemsByOrderID(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM order_items
        WHERE order_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return nil, err
	}
	return r.scanItems(rows)
}

// FindItemsForTracking returns items that have been placed with a provider
// but have not reached a terminal canonical status yet.
func (r *Repository) FindItemsForTracking(ctx context.Context, limit uint32) ([]domain.OrderItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM order_items
        WHERE provider_order_id <> ''
          AND provider_status IN ('PENDING', 'PROCESSING')
        ORDER BY id ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get order items for tracking", zap.Error(err))
		return nil, err
	}
	return r.scanItems(rows)
}

func (r *Repository) UpdateItemProvider(ctx context.Context, itemID int, providerCode, providerOrderID, providerStatus string) error {
	query := `
        UPDATE order_items
        SET provider_code = $1, provider_order_id = $2, provider_status = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, providerCode, providerOrderID, providerStatus, itemID)
	if err != nil {
		zap.L().Error("failed to update order item provider state", zap.Int("itemID", itemID), zap.Error(err))
		return err
	}
	return nil
}

// CountUnfinishedItems counts items of an order that have not reached
// SUCCESS. Zero means the order is fully delivered.
func (r *Repository) CountUnfinishedItems(ctx context.Context, orderID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM order_items
        WHERE order_id = $1 AND provider_status <> 'SUCCESS'
    `
	var count int
	err := r.db.QueryRow(ctx, query, orderID).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count unfinished items", zap.Int("orderID", orderID), zap.Error(err))
		return 0, err
	}
	return count, nil
}
