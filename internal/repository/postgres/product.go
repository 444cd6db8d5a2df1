package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/egannguyen/seller-dashboard/internal/entity"
	"github.com/egannguyen/seller-dashboard/internal/repository"
)

const productColumns = "id, name, description, price, image_url, category, stock_quantity, sales, product_revenue, posted_by_id"

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository backed by Postgres.
func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category,
		&p.StockQuantity, &p.Sales, &p.ProductRevenue, &p.PostedByID)
	return p, err
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]entity.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func (r *productRepository) FindByOwner(ctx context.Context, ownerID string) ([]entity.Product, error) {
	products, err := r.queryProducts(ctx,
		"SELECT "+productColumns+" FROM products WHERE posted_by_id = $1 ORDER BY name",
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return products, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.cart_id, c.product_id, c.quantity
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE p.posted_by_id = $1`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	byProduct := make(map[string][]entity.CartItem)
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		byProduct[item.ProductID] = append(byProduct[item.ProductID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart item rows: %w", err)
	}

	for i := range products {
		products[i].InCarts = byProduct[products[i].ID]
	}
	return products, nil
}

func (r *productRepository) UpdateRevenue(ctx context.Context, productID string, revenue float64) (entity.Product, error) {
	row := r.db.QueryRowContext(ctx,
		"UPDATE products SET product_revenue = $1 WHERE id = $2 RETURNING "+productColumns,
		revenue, productID,
	)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Product{}, fmt.Errorf("product %s: %w", productID, repository.ErrNotFound)
	}
	if err != nil {
		return entity.Product{}, fmt.Errorf("failed to update revenue of product %s: %w", productID, err)
	}
	return p, nil
}

func (r *productRepository) TopSelling(ctx context.Context, ownerID string, limit int) ([]entity.Product, error) {
	return r.queryProducts(ctx,
		"SELECT "+productColumns+" FROM products WHERE posted_by_id = $1 ORDER BY sales DESC, id LIMIT $2",
		ownerID, limit,
	)
}

func (r *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	return r.queryProducts(ctx, "SELECT "+productColumns+" FROM products ORDER BY name")
}

func (r *productRepository) Seed(ctx context.Context, products []entity.Product, items []entity.CartItem) error {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil // already seeded
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range products {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO products ("+productColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
			p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.Category,
			p.StockQuantity, p.Sales, p.ProductRevenue, p.PostedByID,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	for _, item := range items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO cart_items (id, cart_id, product_id, quantity) VALUES ($1, $2, $3, $4)",
			item.ID, item.CartID, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to seed cart item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
