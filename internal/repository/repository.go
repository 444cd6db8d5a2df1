package repository

import (
	"context"
	"errors"

	"github.com/egannguyen/seller-dashboard/internal/entity"
)

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("not found")

// ProductRepository handles persistence for Products.
type ProductRepository interface {
	// FindByOwner returns the seller's products together with their cart lines.
	FindByOwner(ctx context.Context, ownerID string) ([]entity.Product, error)
	// UpdateRevenue rewrites the cached revenue of one product and returns the stored row.
	UpdateRevenue(ctx context.Context, productID string, revenue float64) (entity.Product, error)
	TopSelling(ctx context.Context, ownerID string, limit int) ([]entity.Product, error)
	FindAll(ctx context.Context) ([]entity.Product, error)
	// Seed inserts initial products and cart lines if none exist.
	Seed(ctx context.Context, products []entity.Product, items []entity.CartItem) error
}
