package fulfillment

import (
	"context"
	"fmt"
	"time"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/provider"
	"go.uber.org/zap"
)

//go:generate mockgen -source=fulfillment.go -destination=fulfillment_mock.go -package=fulfillment

type OrderRepo interface {
	FindItemsByOrderID(ctx context.Context, orderID int) ([]domain.OrderItem, error)
	UpdateItemProvider(ctx context.Context, itemID int, providerCode, providerOrderID, providerStatus string) error
}

type CatalogRepo interface {
	FindBindingsByVariant(ctx context.Context, variantID int) ([]domain.VariantProvider, error)
}

// Service places provider orders for the items of a paid order. Idempotent
// per order: items that already carry a provider order id are skipped, so
// redelivery or retry only touches what is still unplaced.
type Service struct {
	orderRepo   OrderRepo
	catalogRepo CatalogRepo
	providers   map[string]provider.Client
}

func New(orderRepo OrderRepo, catalogRepo CatalogRepo, providerClients ...provider.Client) *Service {
	providers := make(map[string]provider.Client, len(providerClients))
	for _, client := range providerClients {
		providers[client.Code()] = client
	}
	return &Service{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		providers:   providers,
	}
}

func (s *Service) FulfillOrder(ctx context.Context, orderID int) error {
	items, err := s.orderRepo.FindItemsByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	var pending int
	for _, item := range items {
		if item.ProviderOrderID != "" {
			continue
		}
		if err := s.placeItem(ctx, orderID, item); err != nil {
			// Transport failures are retryable; leave the item unplaced.
			zap.L().Error("item placement failed, will retry",
				zap.Int("orderID", orderID),
				zap.Int("itemID", item.ID),
				zap.Error(err),
			)
			pending++
		}
	}

	if pending > 0 {
		return fmt.Errorf("%d of %d items not placed yet", pending, len(items))
	}
	return nil
}

func (s *Service) placeItem(ctx context.Context, orderID int, item domain.OrderItem) error {
	bindings, err := s.catalogRepo.FindBindingsByVariant(ctx, item.VariantID)
	if err != nil {
		return err
	}

	var binding *domain.VariantProvider
	for i := range bindings {
		if bindings[i].ProviderStatus {
			binding = &bindings[i]
			break
		}
	}
	if binding == nil {
		return fmt.Errorf("no active provider binding for variant %d", item.VariantID)
	}

	client, ok := s.providers[binding.ProviderCode]
	if !ok {
		return fmt.Errorf("no client registered for provider %s", binding.ProviderCode)
	}

	// Fresh idempotency token per placement attempt.
	refID := fmt.Sprintf("%d-%d-%d", orderID, item.ID, time.Now().UnixNano())

	result, err := client.PlaceOrder(ctx, provider.OrderRequest{
		RefID:    refID,
		SKU:      binding.ProviderSku,
		Target:   item.Target,
		Quantity: item.Quantity,
	})
	if err != nil {
		return err
	}

	if result.Status == provider.StatusFailed {
		// Explicit upstream rejection is terminal for this item.
		zap.L().Warn("provider rejected item",
			zap.Int("itemID", item.ID),
			zap.String("provider", binding.ProviderCode),
			zap.String("message", result.Message),
		)
		return s.orderRepo.UpdateItemProvider(ctx, item.ID, binding.ProviderCode, "", string(provider.StatusFailed))
	}

	providerOrderID := result.ProviderOrderID
	if providerOrderID == "" {
		// Some providers track by the submitted ref id instead of issuing
		// their own.
		providerOrderID = refID
	}

	return s.orderRepo.UpdateItemProvider(ctx, item.ID, binding.ProviderCode, providerOrderID, string(result.Status))
}
