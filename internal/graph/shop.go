// AngelaMos | 2026
// shop.go

package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/isiolocityfc/backend/internal/shop"
)

type productResolver struct {
	p *shop.Product
}

func (r *productResolver) ID() graphql.ID { return graphql.ID(r.p.ID) }
func (r *productResolver) Name() string { return r.p.Name }
func (r *productResolver) Slug() string { return r.p.Slug }
func (r *productResolver) Description() string { return r.p.Description }
func (r *productResolver) Price() float64 { return r.p.Price }
func (r *productResolver) ComparePrice() *float64 { return r.p.ComparePrice }
func (r *productResolver) Category() string { return r.p.Category }
func (r *productResolver) Stock() int32 { return int32(r.p.Stock) }
func (r *productResolver) SKU() string { return r.p.SKU }
func (r *productResolver) Featured() bool { return r.p.Featured }
func (r *productResolver) IsActive() bool { return r.p.IsActive }
func (r *productResolver) Sizes() []string { return nonNil(r.p.Sizes) }
func (r *productResolver) Colors() []string { return nonNil(r.p.Colors) }
func (r *productResolver) ImageURLs() []string { return nonNil(r.p.ImageURLs) }
func (r *productResolver) CreatedAt() DateTime { return newDateTime(r.p.CreatedAt) }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type orderResolver struct {
	root *Resolver
	o    *shop.Order
}

func (r *orderResolver) ID() graphql.ID { return graphql.ID(r.o.ID) }
func (r *orderResolver) OrderNumber() string { return r.o.OrderNumber }
func (r *orderResolver) Status() string { return r.o.Status }
func (r *orderResolver) TotalAmount() float64 { return r.o.TotalAmount }
func (r *orderResolver) ShippingAddress() string { return r.o.ShippingAddress }
func (r *orderResolver) PaymentMethod() string { return r.o.PaymentMethod }
func (r *orderResolver) PaymentStatus() string { return r.o.PaymentStatus }
func (r *orderResolver) CreatedAt() DateTime { return newDateTime(r.o.CreatedAt) }

func (r *orderResolver) User(ctx context.Context) (*userResolver, error) {
	return r.root.userByID(ctx, r.o.UserID)
}

func (r *orderResolver) Items(ctx context.Context) ([]*orderItemResolver, error) {
	items, err := r.root.svc.Shop.OrderItems(ctx, r.o.ID)
	if err != nil {
		return nil, r.root.fail(ctx, err)
	}

	out := make([]*orderItemResolver, 0, len(items))
	for i := range items {
		out = append(out, &orderItemResolver{root: r.root, item: &items[i]})
	}
	return out, nil
}

type orderItemResolver struct {
	root *Resolver
	item *shop.OrderItem
}

func (r *orderItemResolver) ID() graphql.ID { return graphql.ID(r.item.ID) }
func (r *orderItemResolver) Quantity() int32 { return int32(r.item.Quantity) }
func (r *orderItemResolver) Price() float64 { return r.item.Price }
func (r *orderItemResolver) Size() *string { return r.item.Size }
func (r *orderItemResolver) Color() *string { return r.item.Color }

func (r *orderItemResolver) Product(ctx context.Context) (*productResolver, error) {
	p, err := r.root.svc.Shop.ProductByID(ctx, r.item.ProductID)
	if err != nil {
		return nil, r.root.fail(ctx, err)
	}
	return &productResolver{p: p}, nil
}

func (r *Resolver) Products(ctx context.Context, args struct {
	Category *string
	Featured *bool
	Limit    *int32
}) ([]*productResolver, error) {
	list, err := r.svc.Shop.ListProducts(ctx, shop.ListParams{
		Category: args.Category,
		Featured: args.Featured,
		Limit:    intPtr(args.Limit),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	out := make([]*productResolver, 0, len(list))
	for i := range list {
		out = append(out, &productResolver{p: &list[i]})
	}
	return out, nil
}

func (r *Resolver) Product(
	ctx context.Context,
	args struct{ Slug string },
) (*productResolver, error) {
	p, err := r.svc.Shop.GetProduct(ctx, args.Slug)
	if err != nil {
		return nil, r.lookup(ctx, err)
	}
	return &productResolver{p: p}, nil
}

func (r *Resolver) MyOrders(ctx context.Context) ([]*orderResolver, error) {
	id, err := r.requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := r.svc.Shop.MyOrders(ctx, id.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	out := make([]*orderResolver, 0, len(orders))
	for i := range orders {
		out = append(out, &orderResolver{root: r, o: &orders[i]})
	}
	return out, nil
}

type orderItemInput struct {
	ProductID graphql.ID
	Quantity  int32
	Size      *string
	Color     *string
}

type createOrderInput struct {
	Items           []orderItemInput
	ShippingAddress string
	PaymentMethod   string
}

func (r *Resolver) CreateOrder(
	ctx context.Context,
	args struct{ Input createOrderInput },
) (*orderResolver, error) {
	id, err := r.requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]shop.OrderItemInput, 0, len(args.Input.Items))
	for _, item := range args.Input.Items {
		items = append(items, shop.OrderItemInput{
			ProductID: string(item.ProductID),
			Quantity:  int(item.Quantity),
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	o, err := r.svc.Shop.CreateOrder(ctx, id.ID, shop.CreateOrderInput{
		Items:           items,
		ShippingAddress: args.Input.ShippingAddress,
		PaymentMethod:   args.Input.PaymentMethod,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &orderResolver{root: r, o: o}, nil
}
