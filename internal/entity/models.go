package entity

import (
	"time"
)

// RoleSeller is the identity-provider role given to users who post products.
const RoleSeller = "SELLER"

// Product represents a product in the store.
type Product struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Price          float64    `json:"price"`
	ImageURL       string     `json:"image_url"`
	Category       string     `json:"category"`
	StockQuantity  int        `json:"stock_quantity"`
	Sales          int        `json:"sales"`
	ProductRevenue float64    `json:"product_revenue"`
	PostedByID     string     `json:"posted_by_id"`
	InCarts        []CartItem `json:"in_carts,omitempty"`
}

// InCartQuantity returns how many units of the product sit in shopping carts.
func (p Product) InCartQuantity() int {
	var total int
	for _, item := range p.InCarts {
		total += item.Quantity
	}
	return total
}

// CartItem is a cart line referencing a product.
type CartItem struct {
	ID        string `json:"id"`
	CartID    string `json:"cart_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// User is the signed-in user as reported by the identity provider.
// It is never persisted by this service.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"image_url"`
	Role      string `json:"role"`
}

// IsSeller reports whether the user has the seller role.
func (u *User) IsSeller() bool {
	return u != nil && u.Role == RoleSeller
}

// DisplayName returns the name shown in the user menu.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}

// --- Events ---

// Event represents a domain event published to the message broker.
type Event interface {
	EventType() string
}

// ProductRevenueUpdated is emitted after the cached revenue of a product was rewritten.
type ProductRevenueUpdated struct {
	ProductID      string    `json:"product_id"`
	SellerID       string    `json:"seller_id"`
	Sales          int       `json:"sales"`
	Price          float64   `json:"price"`
	ProductRevenue float64   `json:"product_revenue"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (e ProductRevenueUpdated) EventType() string { return "ProductRevenueUpdated" }
