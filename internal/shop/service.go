// AngelaMos | 2026
// service.go

package shop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
)

// Order numbers are derived from the clock, so two orders in the same
// millisecond collide on the unique index and are retried.
const orderNumberAttempts = 3

type Service struct {
	repo     Repository
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		now:      time.Now,
	}
}

// ListProducts returns active catalogue entries, newest first.
func (s *Service) ListProducts(ctx context.Context, p ListParams) ([]Product, error) {
	limit := DefaultListLimit
	if p.Limit != nil && *p.Limit > 0 {
		limit = min(*p.Limit, MaxListLimit)
	}

	return s.repo.ListProducts(ctx, p, limit)
}

func (s *Service) GetProduct(ctx context.Context, slug string) (*Product, error) {
	p, err := s.repo.GetProductBySlug(ctx, slug)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("Product")
	}
	return p, err
}

func (s *Service) ProductByID(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("Product")
	}
	return p, err
}

// CreateOrder prices every line from the catalogue and stores the order
// with its items atomically.
func (s *Service) CreateOrder(
	ctx context.Context,
	userID string,
	in CreateOrderInput,
) (*Order, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	productIDs := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	catalogue, err := s.repo.ProductsByID(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	order := &Order{
		ID:              ids.For("order"),
		UserID:          userID,
		Status:          OrderPending,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   PaymentPending,
	}

	items := make([]OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		product, ok := catalogue[line.ProductID]
		if !ok || !product.IsActive {
			return nil, core.BadInputError(
				fmt.Sprintf("Product %s is not available", line.ProductID),
			)
		}

		items = append(items, OrderItem{
			ID:        ids.For("orderitem"),
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
			Size:      line.Size,
			Color:     line.Color,
		})
		order.TotalAmount += product.Price * float64(line.Quantity)
	}

	for attempt := 1; ; attempt++ {
		order.OrderNumber = fmt.Sprintf("ICFC-%d", s.now().UnixMilli())

		err = s.repo.CreateOrder(ctx, order, items)
		if err == nil {
			break
		}
		if !errors.Is(err, core.ErrDuplicateKey) {
			return nil, err
		}
		if attempt == orderNumberAttempts {
			return nil, core.InternalError(
				fmt.Errorf("allocate order number: %w", err),
			)
		}
		time.Sleep(time.Millisecond)
	}

	s.logger.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"items", len(items),
	)

	return order, nil
}

func (s *Service) MyOrders(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListOrdersForUser(ctx, userID)
}

func (s *Service) OrderItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	return s.repo.ListOrderItems(ctx, orderID)
}
