package requests

type CartItem struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	ProductID Int    `json:"product_id" validate:"required,gt=0"`
	Quantity  Int    `json:"quantity" validate:"required,gt=0"`
}

type CartKey struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	ProductID Int    `json:"product_id" validate:"required,gt=0"`
}

type CartOwner struct {
	UserEmail string `json:"user_email" validate:"required,email"`
}

type PaymentMethod struct {
	MethodName string `json:"method_name" validate:"required,min=2,max=100"`
}

type Payment struct {
	OrderID         Int   `json:"order_id" validate:"required,gt=0"`
	PaymentMethodID Int   `json:"payment_method_id" validate:"required,gt=0"`
	Amount          Float `json:"amount" validate:"required,gt=0"`
}

type PaymentPatch struct {
	PaymentMethodID *Int   `json:"payment_method_id" validate:"gt=0"`
	Amount          *Float `json:"amount" validate:"gt=0"`
}

type Register struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePassword struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}
