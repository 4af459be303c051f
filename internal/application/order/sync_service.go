package order

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shopadmin/backend/internal/domain/order"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// SyncService keeps the portal's order table in sync with the store.
// It holds the last successfully loaded collection and replaces it
// wholesale on each load; a failed load leaves the previous collection
// untouched. Concurrent loads are serialized by a generation counter so
// only the newest load may publish its result.
type SyncService struct {
	repo     order.Repository
	pageSize int
	logger   *zap.Logger

	gen  atomic.Int64
	mu   sync.RWMutex
	view []OrderView
}

// NewSyncService creates a new SyncService. pageSize caps how many of
// the newest orders one load fetches.
func NewSyncService(repo order.Repository, pageSize int, logger *zap.Logger) *SyncService {
	return &SyncService{
		repo:     repo,
		pageSize: pageSize,
		logger:   logger.Named("order_sync"),
	}
}

// Load fetches the newest orders with their item counts and publishes
// the result as the current collection. The item-count fan-out is all
// or nothing: if any count fails, the whole load fails and the
// published collection is left as it was.
func (s *SyncService) Load(ctx context.Context) ([]OrderView, error) {
	generation := s.gen.Add(1)

	orders, err := s.repo.FindRecent(ctx, s.pageSize)
	if err != nil {
		s.logger.Error("Failed to load orders", zap.Error(err))
		return nil, shared.ErrFetchFailed
	}

	counts := make([]int64, len(orders))
	g, gctx := errgroup.WithContext(ctx)
	for i := range orders {
		g.Go(func() error {
			count, err := s.repo.CountItems(gctx, orders[i].ID)
			if err != nil {
				return err
			}
			counts[i] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to count order items", zap.Error(err))
		return nil, shared.ErrFetchFailed
	}

	view := make([]OrderView, len(orders))
	for i := range orders {
		view[i] = NewOrderView(&orders[i], counts[i])
	}

	s.publish(generation, view)
	return view, nil
}

// publish replaces the current collection unless a newer load has
// started since this one began.
func (s *SyncService) publish(generation int64, view []OrderView) {
	if s.gen.Load() != generation {
		s.logger.Debug("Discarding stale order load",
			zap.Int64("generation", generation))
		return
	}
	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
}

// Current returns the last successfully published collection. The
// returned slice is a copy; callers may not see partial loads.
func (s *SyncService) Current() []OrderView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	view := make([]OrderView, len(s.view))
	copy(view, s.view)
	return view
}

// SetStatus writes a new status for one order, then reloads the
// collection regardless of the write outcome so the table always
// reflects the store. The write error wins over any reload error.
func (s *SyncService) SetStatus(ctx context.Context, id uuid.UUID, status order.Status) ([]OrderView, error) {
	if !status.IsValid() {
		return s.Current(), shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}

	writeErr := s.repo.UpdateStatus(ctx, id, status)
	if writeErr != nil {
		s.logger.Warn("Order status write failed",
			zap.String("order_id", id.String()),
			zap.String("status", status.String()),
			zap.Error(writeErr))
	}

	view, loadErr := s.Load(ctx)
	if writeErr != nil {
		return view, writeErr
	}
	if loadErr != nil {
		return s.Current(), loadErr
	}
	return view, nil
}

// Detail loads one order with its line items for the detail pane
func (s *SyncService) Detail(ctx context.Context, id uuid.UUID) (*DetailView, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindItems(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load order items",
			zap.String("order_id", id.String()),
			zap.Error(err))
		return nil, shared.ErrFetchFailed
	}

	detail := &DetailView{
		OrderView:      NewOrderView(o, int64(len(items))),
		Subtotal:       o.Subtotal,
		DiscountAmount: o.DiscountAmount,
		TaxAmount:      o.TaxAmount,
		Items:          make([]ItemView, len(items)),
	}
	for i, item := range items {
		detail.Items[i] = ItemView{
			ID:        item.ID.String(),
			VariantID: item.VariantID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return detail, nil
}
