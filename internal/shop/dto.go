// AngelaMos | 2026
// dto.go

package shop

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type ListParams struct {
	Category *string
	Featured *bool
	Limit    *int
}

type OrderItemInput struct {
	ProductID string  `validate:"required"`
	Quantity  int     `validate:"gt=0,lte=100"`
	Size      *string `validate:"omitempty,max=20"`
	Color     *string `validate:"omitempty,max=30"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput `validate:"required,min=1,dive"`
	ShippingAddress string           `validate:"required,max=500"`
	PaymentMethod   string           `validate:"required,max=50"`
}
