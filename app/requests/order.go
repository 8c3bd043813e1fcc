package requests

type OrderItem struct {
	ProductID Int   `json:"product_id" validate:"required,gt=0"`
	Quantity  Int   `json:"quantity" validate:"required,gt=0"`
	Price     Float `json:"price" validate:"required,gt=0"`
}

type ShippingAddress struct {
	StreetAddress string `json:"street_address" validate:"required,max=255"`
	City          string `json:"city" validate:"required,max=120"`
	PostalCode    string `json:"postal_code" validate:"required,max=20"`
	Country       string `json:"country" validate:"required,max=120"`
}

type Order struct {
	UserEmail       string           `json:"user_email" validate:"required,email"`
	Status          string           `json:"status" validate:"required,min=3,max=50"`
	TotalPrice      Float            `json:"total_price" validate:"required,gt=0"`
	PaymentMethodID Int              `json:"payment_method_id" validate:"required,gt=0"`
	Items           []OrderItem      `json:"items" validate:"required"`
	ShippingAddress *ShippingAddress `json:"shipping_address" validate:"required"`
}

// OrderPatch updates only the fields that are present.
type OrderPatch struct {
	Status          *string `json:"status" validate:"min=3,max=50"`
	TotalPrice      *Float  `json:"total_price" validate:"gt=0"`
	PaymentMethodID *Int    `json:"payment_method_id" validate:"gt=0"`
}

// Columns translates the patch into an explicit assignment list.
func (p OrderPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.TotalPrice != nil {
		cols["total_price"] = float64(*p.TotalPrice)
	}
	if p.PaymentMethodID != nil {
		cols["payment_method_id"] = int64(*p.PaymentMethodID)
	}
	return cols
}
