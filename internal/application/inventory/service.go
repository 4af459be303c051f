package inventory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/inventory"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// Service exposes the portal's inventory table and stock adjustments
type Service struct {
	repo      inventory.Repository
	threshold int64
	logger    *zap.Logger
}

// NewService creates a new inventory Service. threshold is the
// available-stock level at or below which items count as low stock.
func NewService(repo inventory.Repository, threshold int64, logger *zap.Logger) *Service {
	if threshold <= 0 {
		threshold = inventory.DefaultLowStockThreshold
	}
	return &Service{
		repo:      repo,
		threshold: threshold,
		logger:    logger.Named("inventory_service"),
	}
}

// List returns every inventory row sorted by product name, along with
// whole-inventory statistics computed in the same pass.
func (s *Service) List(ctx context.Context) ([]ItemView, Stats, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load inventory", zap.Error(err))
		return nil, Stats{}, shared.ErrFetchFailed
	}

	views := make([]ItemView, len(items))
	stats := Stats{TotalValue: decimal.Zero}
	for i := range items {
		view := NewItemView(&items[i], s.threshold)
		views[i] = view

		stats.TotalUnits += view.Quantity
		stats.TotalValue = stats.TotalValue.Add(view.Value)
		switch view.Status {
		case inventory.StockStatusLowStock:
			stats.LowStockCount++
		case inventory.StockStatusOutOfStock:
			stats.OutOfStock++
		}
	}

	sort.SliceStable(views, func(i, j int) bool {
		return strings.ToLower(views[i].ProductName) < strings.ToLower(views[j].ProductName)
	})
	return views, stats, nil
}

// Adjust applies one stock adjustment and persists the clamped result.
// The returned view reflects the stored quantity.
func (s *Service) Adjust(ctx context.Context, id uuid.UUID, input AdjustInput) (*ItemView, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Adjust(input.Mode, input.Amount); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateQuantity(ctx, id, item.Quantity); err != nil {
		s.logger.Error("Failed to store stock adjustment",
			zap.String("item_id", id.String()),
			zap.Error(err))
		return nil, shared.ErrWriteFailed
	}

	s.logger.Info("Stock adjusted",
		zap.String("item_id", id.String()),
		zap.String("mode", string(input.Mode)),
		zap.Int64("amount", input.Amount),
		zap.Int64("quantity", item.Quantity))

	view := NewItemView(item, s.threshold)
	return &view, nil
}
