// AngelaMos | 2026
// repository.go

package shop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/isiolocityfc/backend/internal/core"
)

type Repository interface {
	ListProducts(ctx context.Context, p ListParams, limit int) ([]Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ProductsByID(ctx context.Context, ids []string) (map[string]Product, error)
	CreateOrder(ctx context.Context, order *Order, items []OrderItem) error
	GetOrder(ctx context.Context, id string) (*Order, error)
	ListOrdersForUser(ctx context.Context, userID string) ([]Order, error)
	ListOrderItems(ctx context.Context, orderID string) ([]OrderItem, error)
}

const productColumns = `
	id, name, slug, description, price, compare_price, category, stock, sku,
	featured, is_active, sizes, colors, image_urls, created_at, updated_at`

const orderColumns = `
	id, user_id, order_number, status, total_amount, shipping_address,
	payment_method, payment_status, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListProducts(
	ctx context.Context,
	p ListParams,
	limit int,
) ([]Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE
		  AND ($1::text IS NULL OR category = $1)
		  AND ($2::boolean IS NULL OR featured = $2)
		ORDER BY created_at DESC
		LIMIT $3`

	var products []Product
	err := r.db.SelectContext(ctx, &products, query, p.Category, p.Featured, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (r *repository) GetProductBySlug(
	ctx context.Context,
	slug string,
) (*Product, error) {
	return r.getProduct(ctx, "slug", slug)
}

func (r *repository) GetProduct(ctx context.Context, id string) (*Product, error) {
	return r.getProduct(ctx, "id", id)
}

func (r *repository) getProduct(
	ctx context.Context,
	column, value string,
) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + column + ` = $1`

	var p Product
	err := r.db.GetContext(ctx, &p, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &p, nil
}

func (r *repository) ProductsByID(
	ctx context.Context,
	ids []string,
) (map[string]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`

	var products []Product
	err := r.db.SelectContext(ctx, &products, query, core.StringArray(ids))
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	out := make(map[string]Product, len(products))
	for _, p := range products {
		out[p.ID] = p
	}

	return out, nil
}

// CreateOrder writes the order and all of its items in one transaction.
func (r *repository) CreateOrder(
	ctx context.Context,
	order *Order,
	items []OrderItem,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO orders (
				id, user_id, order_number, status, total_amount,
				shipping_address, payment_method, payment_status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at, updated_at`

		err := tx.QueryRowxContext(ctx, query,
			order.ID,
			order.UserID,
			order.OrderNumber,
			order.Status,
			order.TotalAmount,
			order.ShippingAddress,
			order.PaymentMethod,
			order.PaymentStatus,
		).Scan(&order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			if core.IsUniqueViolation(err) {
				return fmt.Errorf("create order: %w", core.ErrDuplicateKey)
			}
			return fmt.Errorf("create order: %w", err)
		}

		itemQuery := `
			INSERT INTO order_items (
				id, order_id, product_id, quantity, price, size, color
			) VALUES (:id, :order_id, :product_id, :quantity, :price, :size, :color)`

		for _, item := range items {
			if _, err := tx.NamedExecContext(ctx, itemQuery, item); err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
		}

		return nil
	})
}

func (r *repository) GetOrder(ctx context.Context, id string) (*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var o Order
	err := r.db.GetContext(ctx, &o, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return &o, nil
}

func (r *repository) ListOrdersForUser(
	ctx context.Context,
	userID string,
) ([]Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	orders := []Order{}
	if err := r.db.SelectContext(ctx, &orders, query, userID); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (r *repository) ListOrderItems(
	ctx context.Context,
	orderID string,
) ([]OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price, size, color
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	items := []OrderItem{}
	if err := r.db.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}

	return items, nil
}
