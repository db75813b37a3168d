// AngelaMos | 2026
// entity.go

package shop

import (
	"time"

	"github.com/isiolocityfc/backend/internal/core"
)

type Product struct {
	ID           string           `db:"id"`
	Name         string           `db:"name"`
	Slug         string           `db:"slug"`
	Description  string           `db:"description"`
	Price        float64          `db:"price"`
	ComparePrice *float64         `db:"compare_price"`
	Category     string           `db:"category"`
	Stock        int              `db:"stock"`
	SKU          string           `db:"sku"`
	Featured     bool             `db:"featured"`
	IsActive     bool             `db:"is_active"`
	Sizes        core.StringArray `db:"sizes"`
	Colors       core.StringArray `db:"colors"`
	ImageURLs    core.StringArray `db:"image_urls"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at"`
}

type Order struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	OrderNumber     string    `db:"order_number"`
	Status          string    `db:"status"`
	TotalAmount     float64   `db:"total_amount"`
	ShippingAddress string    `db:"shipping_address"`
	PaymentMethod   string    `db:"payment_method"`
	PaymentStatus   string    `db:"payment_status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type OrderItem struct {
	ID        string  `db:"id"`
	OrderID   string  `db:"order_id"`
	ProductID string  `db:"product_id"`
	Quantity  int     `db:"quantity"`
	Price     float64 `db:"price"`
	Size      *string `db:"size"`
	Color     *string `db:"color"`
}

const (
	OrderPending    = "PENDING"
	OrderProcessing = "PROCESSING"
	OrderShipped    = "SHIPPED"
	OrderDelivered  = "DELIVERED"
	OrderCancelled  = "CANCELLED"
	OrderRefunded   = "REFUNDED"
)

const PaymentPending = "PENDING"
