package partner

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shopadmin/backend/internal/domain/order"
	"github.com/shopadmin/backend/internal/domain/partner"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// CustomerView is one row of the portal's customer table: the customer
// joined with their order count and lifetime value.
type CustomerView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Initials      string          `json:"initials"`
	OrderCount    int64           `json:"order_count"`
	LifetimeValue decimal.Decimal `json:"lifetime_value"`
	JoinedAt      time.Time       `json:"joined_at"`
}

// Service exposes the portal's read-only customer directory
type Service struct {
	customers partner.CustomerRepository
	orders    order.Repository
	logger    *zap.Logger
}

// NewService creates a new customer Service
func NewService(customers partner.CustomerRepository, orders order.Repository, logger *zap.Logger) *Service {
	return &Service{
		customers: customers,
		orders:    orders,
		logger:    logger.Named("customer_service"),
	}
}

// List returns one page of customers, each enriched with their order
// count and lifetime value. The enrichment fan-out is all or nothing,
// matching the order table's loading behavior.
func (s *Service) List(ctx context.Context, filter shared.Filter) (shared.Paginated[CustomerView], error) {
	var zero shared.Paginated[CustomerView]

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	customers, err := s.customers.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to load customers", zap.Error(err))
		return zero, shared.ErrFetchFailed
	}

	total, err := s.customers.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count customers", zap.Error(err))
		return zero, shared.ErrFetchFailed
	}

	views := make([]CustomerView, len(customers))
	g, gctx := errgroup.WithContext(ctx)
	for i := range customers {
		g.Go(func() error {
			customer := &customers[i]

			count, err := s.orders.CountByCustomer(gctx, customer.ID)
			if err != nil {
				return err
			}
			value, err := s.orders.SumRevenueByCustomer(gctx, customer.ID)
			if err != nil {
				return err
			}

			views[i] = CustomerView{
				ID:            customer.ID.String(),
				Name:          customer.DisplayName(),
				Email:         customer.Email,
				Phone:         customer.Phone,
				Initials:      customer.Initials(),
				OrderCount:    count,
				LifetimeValue: value,
				JoinedAt:      customer.CreatedAt,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to enrich customers", zap.Error(err))
		return zero, shared.ErrFetchFailed
	}

	return shared.NewPaginated(views, total, filter.Page, filter.PageSize), nil
}
