package seed

import (
	"github.com/google/uuid"

	"github.com/egannguyen/seller-dashboard/internal/entity"
)

// otherSellerID owns a couple of products so dashboards can be checked for leakage.
const otherSellerID = "seller-002"

func demoSeller(sellerID string) entity.User {
	return entity.User{
		ID:        sellerID,
		Email:     "seller@example.com",
		FirstName: "Demo",
		LastName:  "Seller",
		Role:      entity.RoleSeller,
	}
}

// demoData returns the demo catalogue. Revenue is left at zero; the first dashboard
// load fills it in.
func demoData(sellerID string) ([]entity.Product, []entity.CartItem) {
	products := []entity.Product{
		{ID: "prod-001", Name: "Wireless Noise-Cancelling Headphones", Description: "Premium over-ear headphones with active noise cancellation and 30-hour battery life.", Price: 349.99, ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400", Category: "Electronics", StockQuantity: 50, Sales: 42, PostedByID: sellerID},
		{ID: "prod-002", Name: "Mechanical Keyboard RGB", Description: "Cherry MX switches with per-key RGB lighting and aluminum frame.", Price: 179.99, ImageURL: "https://images.unsplash.com/photo-1618384887929-16ec33fab9ef?w=400", Category: "Electronics", StockQuantity: 120, Sales: 87, PostedByID: sellerID},
		{ID: "prod-003", Name: "Ultrawide Curved Monitor 34\"", Description: "UWQHD 3440x1440 144Hz IPS panel with USB-C connectivity.", Price: 699.99, ImageURL: "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=400", Category: "Electronics", StockQuantity: 30, Sales: 12, PostedByID: sellerID},
		{ID: "prod-004", Name: "Ergonomic Office Chair", Description: "Adjustable lumbar support, breathable mesh, and 4D armrests.", Price: 549.99, ImageURL: "https://images.unsplash.com/photo-1592078615290-033ee584e267?w=400", Category: "Furniture", StockQuantity: 25, Sales: 19, PostedByID: sellerID},
		{ID: "prod-005", Name: "Smart LED Desk Lamp", Description: "Adjustable color temperature, brightness levels, and USB charging port.", Price: 89.99, ImageURL: "https://images.unsplash.com/photo-1507473885765-e6ed057ab6fe?w=400", Category: "Home", StockQuantity: 200, Sales: 130, PostedByID: sellerID},
		{ID: "prod-006", Name: "Premium Laptop Backpack", Description: "Water-resistant 17\" laptop compartment with anti-theft design.", Price: 129.99, ImageURL: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400", Category: "Accessories", StockQuantity: 80, Sales: 64, PostedByID: sellerID},
		{ID: "prod-007", Name: "Standing Desk Converter", Description: "Gas-spring lift with two tiers for monitor and keyboard.", Price: 259.99, ImageURL: "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=400", Category: "Furniture", StockQuantity: 40, Sales: 23, PostedByID: otherSellerID},
		{ID: "prod-008", Name: "USB-C Docking Station", Description: "Dual 4K output, 100W passthrough charging and gigabit ethernet.", Price: 199.99, ImageURL: "https://images.unsplash.com/photo-1625842268584-8f3296236761?w=400", Category: "Electronics", StockQuantity: 60, Sales: 51, PostedByID: otherSellerID},
	}

	carts := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
	lines := []struct {
		cart      int
		productID string
		quantity  int
	}{
		{0, "prod-001", 1},
		{0, "prod-005", 2},
		{1, "prod-002", 1},
		{1, "prod-001", 1},
		{2, "prod-006", 3},
		{2, "prod-008", 1},
	}

	items := make([]entity.CartItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.CartItem{
			ID:        uuid.NewString(),
			CartID:    carts[l.cart],
			ProductID: l.productID,
			Quantity:  l.quantity,
		})
	}
	return products, items
}
