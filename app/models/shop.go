package models

import "time"

// CartItem is keyed by (user_email, product_id); adding the same product
// again merges quantities into the existing row.
type CartItem struct {
	UserEmail string    `gorm:"primaryKey;size:255" json:"user_email"`
	ProductID int64     `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

func (CartItem) TableName() string { return "cart" }

// CartLine is a cart row joined with its product.
type CartLine struct {
	ProductID int64   `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type PaymentMethod struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	MethodName string `gorm:"size:100;not null" json:"method_name"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }

type Payment struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	OrderID         int64     `gorm:"not null;index" json:"order_id"`
	PaymentMethodID int64     `gorm:"not null" json:"payment_method_id"`
	Amount          float64   `gorm:"not null" json:"amount"`
	PaymentDate     time.Time `json:"payment_date"`
}

func (Payment) TableName() string { return "payments" }

// User is an account. Email is the login identity.
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Role      string    `gorm:"size:50;not null;default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
