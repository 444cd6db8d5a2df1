package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/egannguyen/seller-dashboard/internal/entity"
	"github.com/egannguyen/seller-dashboard/internal/messaging"
	"github.com/egannguyen/seller-dashboard/internal/money"
	"github.com/egannguyen/seller-dashboard/internal/repository"
)

// DefaultTopLimit is the size of the highest selling products table.
const DefaultTopLimit = 5

// DashboardService builds the seller dashboard.
type DashboardService struct {
	productRepo repository.ProductRepository
	publisher   messaging.Publisher
	topic       string
	topLimit    int
	now         func() time.Time
}

// DashboardOption customises a DashboardService.
type DashboardOption func(*DashboardService)

// WithTopLimit overrides the number of highest selling products shown.
func WithTopLimit(n int) DashboardOption {
	return func(s *DashboardService) {
		if n > 0 {
			s.topLimit = n
		}
	}
}

// WithRevenueTopic sets the topic ProductRevenueUpdated events go to.
func WithRevenueTopic(topic string) DashboardOption {
	return func(s *DashboardService) {
		if topic != "" {
			s.topic = topic
		}
	}
}

func NewDashboardService(productRepo repository.ProductRepository, publisher messaging.Publisher, opts ...DashboardOption) *DashboardService {
	if publisher == nil {
		publisher = messaging.Nop{}
	}
	s := &DashboardService{
		productRepo: productRepo,
		publisher:   publisher,
		topic:       "products.revenue",
		topLimit:    DefaultTopLimit,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build loads the seller's products, rewrites the cached revenue of each one and
// folds the totals shown on the dashboard.
//
// Build has no failure mode: storage errors are logged and the affected rows are
// left out. Totals for revenue and sales only cover products whose update succeeded.
func (s *DashboardService) Build(ctx context.Context, sellerID string) *entity.Dashboard {
	products, err := s.productRepo.FindByOwner(ctx, sellerID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load seller products", "seller_id", sellerID, "err", err)
		products = nil
	}

	if len(products) == 0 {
		return &entity.Dashboard{SellerID: sellerID, Empty: true}
	}

	updated := s.recomputeRevenue(ctx, sellerID, products)

	top, err := s.productRepo.TopSelling(ctx, sellerID, s.topLimit)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load highest selling products", "seller_id", sellerID, "err", err)
		top = nil
	}

	rows := make([]entity.TopProduct, 0, len(top))
	for _, p := range top {
		rows = append(rows, entity.NewTopProduct(p))
	}

	return &entity.Dashboard{
		SellerID:     sellerID,
		ProductCount: len(products),
		UpdatedCount: len(updated),
		TotalRevenue: entity.TotalRevenue(updated),
		TotalSales:   entity.TotalSales(updated),
		TotalInCarts: entity.TotalInCarts(products),
		TopLimit:     s.topLimit,
		TopProducts:  rows,
	}
}

// recomputeRevenue writes sales * price back to every product, one statement per row.
func (s *DashboardService) recomputeRevenue(ctx context.Context, sellerID string, products []entity.Product) []entity.Product {
	updated := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if err := ctx.Err(); err != nil {
			slog.WarnContext(ctx, "Revenue recomputation interrupted", "seller_id", sellerID,
				"done", len(updated), "total", len(products), "err", err)
			break
		}

		revenue := money.Revenue(p.Price, p.Sales).InexactFloat64()
		row, err := s.productRepo.UpdateRevenue(ctx, p.ID, revenue)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to update product revenue", "product_id", p.ID, "err", err)
			continue
		}
		updated = append(updated, row)

		event := entity.ProductRevenueUpdated{
			ProductID:      row.ID,
			SellerID:       sellerID,
			Sales:          row.Sales,
			Price:          row.Price,
			ProductRevenue: row.ProductRevenue,
			UpdatedAt:      s.now(),
		}
		if err := s.publisher.PublishEvent(ctx, s.topic, row.ID, event); err != nil {
			slog.WarnContext(ctx, "Failed to publish ProductRevenueUpdated", "product_id", row.ID, "err", err)
		}
	}
	return updated
}
