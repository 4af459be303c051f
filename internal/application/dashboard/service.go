package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	appOrder "github.com/shopadmin/backend/internal/application/order"
	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/order"
	"github.com/shopadmin/backend/internal/domain/partner"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// Window is the reporting period for dashboard metrics. Growth compares
// this window against the one immediately before it.
const Window = 30 * 24 * time.Hour

const recentOrderCount = 4

// RevenueMetric is a money tile with its growth against the previous window
type RevenueMetric struct {
	Value     decimal.Decimal `json:"value"`
	GrowthPct float64         `json:"growth_pct"`
}

// CountMetric is a count tile with its growth against the previous window
type CountMetric struct {
	Value     int64   `json:"value"`
	GrowthPct float64 `json:"growth_pct"`
}

// Summary is everything the dashboard page renders
type Summary struct {
	Revenue      RevenueMetric        `json:"revenue"`
	Orders       CountMetric          `json:"orders"`
	Customers    CountMetric          `json:"customers"`
	Products     CountMetric          `json:"products"`
	RecentOrders []appOrder.OrderView `json:"recent_orders"`
}

// Service aggregates the dashboard summary from every bounded context
type Service struct {
	orders    order.Repository
	customers partner.CustomerRepository
	products  catalog.ProductRepository
	logger    *zap.Logger

	now func() time.Time
}

// NewService creates a new dashboard Service
func NewService(orders order.Repository, customers partner.CustomerRepository, products catalog.ProductRepository, logger *zap.Logger) *Service {
	return &Service{
		orders:    orders,
		customers: customers,
		products:  products,
		logger:    logger.Named("dashboard_service"),
		now:       time.Now,
	}
}

// Summarize runs every dashboard aggregate in parallel and joins the
// results. Any failed aggregate fails the summary.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	now := s.now()
	windowStart := now.Add(-Window)
	previousStart := windowStart.Add(-Window)

	var revenue, previousRevenue decimal.Decimal
	var orderTotal, ordersNow, ordersPrev int64
	var customerTotal, customersNow, customersPrev int64
	var productTotal, productsNow, productsPrev int64
	var recentOrders []order.Order
	var recentCounts []int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		revenue, err = s.orders.SumRevenueBetween(gctx, order.StatusDelivered, windowStart, now)
		return err
	})
	g.Go(func() (err error) {
		previousRevenue, err = s.orders.SumRevenueBetween(gctx, order.StatusDelivered, previousStart, windowStart)
		return err
	})
	g.Go(func() (err error) {
		orderTotal, err = s.orders.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		ordersNow, err = s.orders.CountCreatedBetween(gctx, windowStart, now)
		return err
	})
	g.Go(func() (err error) {
		ordersPrev, err = s.orders.CountCreatedBetween(gctx, previousStart, windowStart)
		return err
	})
	g.Go(func() (err error) {
		customerTotal, err = s.customers.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		customersNow, err = s.customers.CountCreatedBetween(gctx, windowStart, now)
		return err
	})
	g.Go(func() (err error) {
		customersPrev, err = s.customers.CountCreatedBetween(gctx, previousStart, windowStart)
		return err
	})
	g.Go(func() (err error) {
		productTotal, err = s.products.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		productsNow, err = s.products.CountCreatedBetween(gctx, windowStart, now)
		return err
	})
	g.Go(func() (err error) {
		productsPrev, err = s.products.CountCreatedBetween(gctx, previousStart, windowStart)
		return err
	})
	g.Go(func() error {
		orders, err := s.orders.FindRecent(gctx, recentOrderCount)
		if err != nil {
			return err
		}
		counts := make([]int64, len(orders))
		for i := range orders {
			if counts[i], err = s.orders.CountItems(gctx, orders[i].ID); err != nil {
				return err
			}
		}
		recentOrders = orders
		recentCounts = counts
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Dashboard aggregation failed", zap.Error(err))
		return nil, shared.ErrFetchFailed
	}

	recent := make([]appOrder.OrderView, len(recentOrders))
	for i := range recentOrders {
		recent[i] = appOrder.NewOrderView(&recentOrders[i], recentCounts[i])
	}

	return &Summary{
		Revenue: RevenueMetric{
			Value:     revenue,
			GrowthPct: revenueGrowth(revenue, previousRevenue),
		},
		Orders:       CountMetric{Value: orderTotal, GrowthPct: countGrowth(ordersNow, ordersPrev)},
		Customers:    CountMetric{Value: customerTotal, GrowthPct: countGrowth(customersNow, customersPrev)},
		Products:     CountMetric{Value: productTotal, GrowthPct: countGrowth(productsNow, productsPrev)},
		RecentOrders: recent,
	}, nil
}

// revenueGrowth returns the percentage change against the previous
// window. A zero previous window reports 100% when anything was earned
// and 0% otherwise.
func revenueGrowth(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	pct, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	return pct
}

func countGrowth(current, previous int64) float64 {
	return revenueGrowth(decimal.NewFromInt(current), decimal.NewFromInt(previous))
}
