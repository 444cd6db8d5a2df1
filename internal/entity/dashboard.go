package entity

import (
	"github.com/shopspring/decimal"

	"github.com/egannguyen/seller-dashboard/internal/money"
)

// Dashboard is the seller dashboard view model.
type Dashboard struct {
	SellerID     string          `json:"seller_id"`
	Empty        bool            `json:"empty"`
	ProductCount int             `json:"product_count"`
	UpdatedCount int             `json:"updated_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalSales   int             `json:"total_sales"`
	TotalInCarts int             `json:"total_in_carts"`
	TopLimit     int             `json:"top_limit"`
	TopProducts  []TopProduct    `json:"top_products"`
}

// TopProduct is a row of the highest selling products table. Like TotalRevenue,
// ProductRevenue encodes as a JSON string.
type TopProduct struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Sales          int             `json:"sales"`
	ProductRevenue decimal.Decimal `json:"product_revenue"`
	StockQuantity  int             `json:"stock_quantity"`
}

// NewTopProduct projects a product onto a table row.
func NewTopProduct(p Product) TopProduct {
	return TopProduct{
		ID:             p.ID,
		Name:           p.Name,
		Sales:          p.Sales,
		ProductRevenue: decimal.NewFromFloat(p.ProductRevenue),
		StockQuantity:  p.StockQuantity,
	}
}

// TotalInCarts sums the cart quantities of every product.
func TotalInCarts(products []Product) int {
	var total int
	for _, p := range products {
		total += p.InCartQuantity()
	}
	return total
}

// TotalSales sums the sales counters.
func TotalSales(products []Product) int {
	var total int
	for _, p := range products {
		total += p.Sales
	}
	return total
}

// TotalRevenue sums the cached revenue of the products.
func TotalRevenue(products []Product) decimal.Decimal {
	values := make([]decimal.Decimal, 0, len(products))
	for _, p := range products {
		values = append(values, decimal.NewFromFloat(p.ProductRevenue))
	}
	return money.Sum(values...)
}
