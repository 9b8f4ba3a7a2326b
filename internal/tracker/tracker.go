package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/provider"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=tracker.go -destination=tracker_mock.go -package=tracker

type OrderRepo interface {
	FindItemsForTracking(ctx context.Context, limit uint32) ([]domain.OrderItem, error)
	UpdateItemProvider(ctx context.Context, itemID int, providerCode, providerOrderID, providerStatus string) error
	CountUnfinishedItems(ctx context.Context, orderID int) (int, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
}

var inFlightItems sync.Map

// Service polls upstream providers for the state of placed order items and
// folds the canonical status back into local records. When every item of an
// order reaches SUCCESS the order itself is delivered.
type Service struct {
	orderRepo    OrderRepo
	providers    map[string]provider.Client
	limit        uint32
	workerPool   WorkerPoolI
	pollInterval time.Duration
}

func New(orderRepo OrderRepo, pollInterval time.Duration, providerClients ...provider.Client) *Service {
	providers := make(map[string]provider.Client, len(providerClients))
	for _, client := range providerClients {
		providers[client.Code()] = client
	}
	return &Service{
		orderRepo:    orderRepo,
		providers:    providers,
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		pollInterval: pollInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Provider status tracker started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping tracker")
			return
		case <-ticker.C:
			s.processItems(ctx)
		}
	}
}

func (s *Service) processItems(ctx context.Context) {
	items, err := s.orderRepo.FindItemsForTracking(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch items for tracking", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, item := range items {
		item := item

		if _, loaded := inFlightItems.LoadOrStore(item.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlightItems.Delete(item.ID)
				return s.handleItem(ctx, item)
			})
			if err != nil {
				inFlightItems.Delete(item.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error tracking items", zap.Error(err))
	}
}

func (s *Service) handleItem(ctx context.Context, item domain.OrderItem) error {
	client, ok := s.providers[item.ProviderCode]
	if !ok {
		return fmt.Errorf("no client registered for provider %s", item.ProviderCode)
	}

	result, err := client.CheckStatus(ctx, item.ProviderOrderID)
	if err != nil {
		// Transport failure: remote state unknown, keep the item for the
		// next tick instead of guessing a final status.
		return fmt.Errorf("status check for item %d: %w", item.ID, err)
	}

	switch result.Status {
	case provider.StatusSuccess:
		if err := s.orderRepo.UpdateItemProvider(ctx, item.ID, item.ProviderCode, item.ProviderOrderID, string(result.Status)); err != nil {
			return err
		}
		return s.maybeDeliverOrder(ctx, item.OrderID)
	case provider.StatusFailed:
		zap.L().Warn("provider reported item failed",
			zap.Int("itemID", item.ID),
			zap.String("originalStatus", result.OriginalStatus),
		)
		return s.orderRepo.UpdateItemProvider(ctx, item.ID, item.ProviderCode, item.ProviderOrderID, string(result.Status))
	default:
		return s.orderRepo.UpdateItemProvider(ctx, item.ID, item.ProviderCode, item.ProviderOrderID, string(result.Status))
	}
}

func (s *Service) maybeDeliverOrder(ctx context.Context, orderID int) error {
	unfinished, err := s.orderRepo.CountUnfinishedItems(ctx, orderID)
	if err != nil {
		return err
	}
	if unfinished > 0 {
		return nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusDelivered); err != nil {
		return err
	}
	zap.L().Info("order fully delivered", zap.Int("orderID", orderID))
	return nil
}
