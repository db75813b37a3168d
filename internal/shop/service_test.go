// AngelaMos | 2026
// service_test.go

package shop

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isiolocityfc/backend/internal/core"
)

type memRepo struct {
	mu            sync.Mutex
	products      map[string]Product
	orders        map[string]Order
	items         []OrderItem
	orderNumbers  map[string]bool
	duplicateNext int
}

func newMemRepo(products ...Product) *memRepo {
	m := &memRepo{
		products:     map[string]Product{},
		orders:       map[string]Order{},
		orderNumbers: map[string]bool{},
	}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memRepo) ListProducts(_ context.Context, p ListParams, limit int) ([]Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Product
	for _, prod := range m.products {
		if !prod.IsActive {
			continue
		}
		if p.Category != nil && prod.Category != *p.Category {
			continue
		}
		if p.Featured != nil && prod.Featured != *p.Featured {
			continue
		}
		out = append(out, prod)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) GetProductBySlug(_ context.Context, slug string) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
}

func (m *memRepo) GetProduct(_ context.Context, id string) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	return &p, nil
}

func (m *memRepo) ProductsByID(_ context.Context, ids []string) (map[string]Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := map[string]Product{}
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *memRepo) CreateOrder(_ context.Context, o *Order, items []OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.duplicateNext > 0 {
		m.duplicateNext--
		return fmt.Errorf("create order: %w", core.ErrDuplicateKey)
	}
	if m.orderNumbers[o.OrderNumber] {
		return fmt.Errorf("create order: %w", core.ErrDuplicateKey)
	}
	now := time.Now()
	o.CreatedAt, o.UpdatedAt = now, now
	m.orders[o.ID] = *o
	m.orderNumbers[o.OrderNumber] = true
	m.items = append(m.items, items...)
	return nil
}

func (m *memRepo) GetOrder(_ context.Context, id string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	return &o, nil
}

func (m *memRepo) ListOrdersForUser(_ context.Context, userID string) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Order{}
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memRepo) ListOrderItems(_ context.Context, orderID string) ([]OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []OrderItem{}
	for _, it := range m.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

var (
	homeJersey = Product{
		ID: "icfc_product_home", Slug: "home-jersey", Name: "Home Jersey",
		Price: 2500, Category: "JERSEYS", IsActive: true, Featured: true,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	scarf = Product{
		ID: "icfc_product_scarf", Slug: "scarf", Name: "Scarf",
		Price: 800, Category: "ACCESSORIES", IsActive: true,
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	retiredKit = Product{
		ID: "icfc_product_old", Slug: "old-kit", Name: "Old Kit",
		Price: 1000, Category: "JERSEYS", IsActive: false,
	}
)

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func orderInput(items ...OrderItemInput) CreateOrderInput {
	return CreateOrderInput{
		Items:           items,
		ShippingAddress: "P.O. Box 1, Isiolo",
		PaymentMethod:   "MPESA",
	}
}

func TestCreateOrderPricesFromCatalogue(t *testing.T) {
	repo := newMemRepo(homeJersey, scarf)
	svc := newTestService(repo)
	ctx := context.Background()

	size := "L"
	order, err := svc.CreateOrder(ctx, "icfc_user_1", orderInput(
		OrderItemInput{ProductID: homeJersey.ID, Quantity: 2, Size: &size},
		OrderItemInput{ProductID: scarf.ID, Quantity: 1},
	))
	require.NoError(t, err)

	assert.InDelta(t, 5800.0, order.TotalAmount, 0.001)
	assert.Equal(t, OrderPending, order.Status)
	assert.Equal(t, PaymentPending, order.PaymentStatus)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ICFC-"))

	items, err := svc.OrderItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.InDelta(t, 2500.0, items[0].Price, 0.001)
	assert.Equal(t, "L", *items[0].Size)
}

func TestCreateOrderRejectsUnavailableProducts(t *testing.T) {
	tests := []struct {
		name      string
		productID string
	}{
		{"unknown product", "icfc_product_missing"},
		{"inactive product", retiredKit.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo(homeJersey, retiredKit)
			svc := newTestService(repo)

			_, err := svc.CreateOrder(context.Background(), "icfc_user_1", orderInput(
				OrderItemInput{ProductID: homeJersey.ID, Quantity: 1},
				OrderItemInput{ProductID: tt.productID, Quantity: 1},
			))
			appErr, ok := core.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, core.CodeBadUserInput, appErr.Code)
			assert.Empty(t, repo.orders)
			assert.Empty(t, repo.items)
		})
	}
}

func TestCreateOrderValidatesItems(t *testing.T) {
	svc := newTestService(newMemRepo(homeJersey))

	_, err := svc.CreateOrder(context.Background(), "icfc_user_1", orderInput())
	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, core.CodeBadUserInput, appErr.Code)

	_, err = svc.CreateOrder(context.Background(), "icfc_user_1", orderInput(
		OrderItemInput{ProductID: homeJersey.ID, Quantity: 0},
	))
	appErr, ok = core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, core.CodeBadUserInput, appErr.Code)
}

func TestCreateOrderRetriesOrderNumberCollision(t *testing.T) {
	repo := newMemRepo(scarf)
	repo.duplicateNext = 1
	svc := newTestService(repo)

	order, err := svc.CreateOrder(context.Background(), "icfc_user_1", orderInput(
		OrderItemInput{ProductID: scarf.ID, Quantity: 3},
	))
	require.NoError(t, err)
	assert.Len(t, repo.orders, 1)
	assert.InDelta(t, 2400.0, order.TotalAmount, 0.001)
}

func TestCreateOrderExhaustedCollisionsAreInternal(t *testing.T) {
	repo := newMemRepo(scarf)
	repo.duplicateNext = orderNumberAttempts
	svc := newTestService(repo)

	_, err := svc.CreateOrder(context.Background(), "icfc_user_1", orderInput(
		OrderItemInput{ProductID: scarf.ID, Quantity: 1},
	))
	require.Error(t, err)
	assert.Equal(t, core.CodeInternal, core.Classify(err).Code)
	assert.Empty(t, repo.orders)
}

func TestMyOrdersScopedToUser(t *testing.T) {
	repo := newMemRepo(scarf)
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, "icfc_user_a", orderInput(OrderItemInput{ProductID: scarf.ID, Quantity: 1}))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = svc.CreateOrder(ctx, "icfc_user_b", orderInput(OrderItemInput{ProductID: scarf.ID, Quantity: 1}))
	require.NoError(t, err)

	mine, err := svc.MyOrders(ctx, "icfc_user_a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "icfc_user_a", mine[0].UserID)
}

func TestListProductsActiveNewestFirst(t *testing.T) {
	svc := newTestService(newMemRepo(homeJersey, scarf, retiredKit))
	ctx := context.Background()

	all, err := svc.ListProducts(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, scarf.ID, all[0].ID)

	featured := true
	onlyFeatured, err := svc.ListProducts(ctx, ListParams{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, onlyFeatured, 1)
	assert.Equal(t, homeJersey.ID, onlyFeatured[0].ID)

	one := 1
	limited, err := svc.ListProducts(ctx, ListParams{Limit: &one})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGetProductBySlug(t *testing.T) {
	svc := newTestService(newMemRepo(homeJersey))
	ctx := context.Background()

	p, err := svc.GetProduct(ctx, "home-jersey")
	require.NoError(t, err)
	assert.Equal(t, homeJersey.ID, p.ID)

	_, err = svc.GetProduct(ctx, "missing")
	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Product not found", appErr.Message)
}
