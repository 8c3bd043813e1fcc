package models

import "time"

// Order is the header row. Items and ShippingAddress are persisted in their
// own tables inside the same transaction.
type Order struct {
	ID              int64            `gorm:"primaryKey" json:"id"`
	UserEmail       string           `gorm:"size:255;not null;index" json:"user_email"`
	Status          string           `gorm:"size:50;not null" json:"status"`
	TotalPrice      float64          `gorm:"not null" json:"total_price"`
	PaymentMethodID int64            `gorm:"not null" json:"payment_method_id"`
	CreatedAt       time.Time        `gorm:"autoCreateTime:false;index" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime:false" json:"updated_at"`
	Items           []OrderItem      `gorm:"-" json:"items"`
	ShippingAddress *ShippingAddress `gorm:"-" json:"shipping_address"`
}

func (Order) TableName() string { return "orders" }

// OrderItem captures the unit price at the time of the order.
type OrderItem struct {
	ID        int64   `gorm:"primaryKey" json:"id"`
	OrderID   int64   `gorm:"not null;index" json:"order_id"`
	ProductID int64   `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null;check:chk_order_items_quantity,quantity > 0" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }

type ShippingAddress struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	OrderID      int64  `gorm:"not null;uniqueIndex" json:"order_id"`
	UserEmail    string `gorm:"size:255;not null" json:"user_email"`
	AddressLine1 string `gorm:"column:address_line1;size:255;not null" json:"street_address"`
	City         string `gorm:"size:120;not null" json:"city"`
	PostalCode   string `gorm:"size:20;not null" json:"postal_code"`
	Country      string `gorm:"size:120;not null" json:"country"`
}

func (ShippingAddress) TableName() string { return "shipping_addresses" }

// OrderRow is one row of the flattened order ⋈ item ⋈ address join.
type OrderRow struct {
	OrderID         int64     `json:"order_id"`
	UserEmail       string    `json:"user_email"`
	Status          string    `json:"status"`
	TotalPrice      float64   `json:"total_price"`
	PaymentMethodID int64     `json:"payment_method_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	ItemID          int64     `json:"item_id"`
	ProductID       int64     `json:"product_id"`
	Quantity        int       `json:"quantity"`
	Price           float64   `json:"price"`
	AddressLine1    string    `gorm:"column:address_line1" json:"street_address"`
	City            string    `json:"city"`
	PostalCode      string    `json:"postal_code"`
	Country         string    `json:"country"`
}
