package models

import "time"

// Brand groups products by manufacturer.
type Brand struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:255;not null;uniqueIndex" json:"title"`
}

func (Brand) TableName() string { return "brand" }

// Category groups products by kind.
type Category struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:255;not null;uniqueIndex" json:"title"`
}

func (Category) TableName() string { return "category" }

// Product is a catalogue entry. Images are loaded separately; there is no
// database-level relation between the two tables.
type Product struct {
	ID          int64          `gorm:"primaryKey" json:"id"`
	SKU         string         `gorm:"column:sku;size:100;not null;uniqueIndex" json:"sku"`
	Title       string         `gorm:"size:255;not null;uniqueIndex" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	CategoryID  int64          `gorm:"not null;index" json:"category_id"`
	BrandID     int64          `gorm:"not null;index" json:"brand_id"`
	Price       float64        `gorm:"not null;default:0" json:"price"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Images      []ProductImage `gorm:"-" json:"images"`
}

func (Product) TableName() string { return "product" }

// ProductImage points at a file on the storage disk.
type ProductImage struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	ProductID int64  `gorm:"not null;index" json:"product_id"`
	Path      string `gorm:"size:512;not null" json:"path"`
	URL       string `gorm:"-" json:"url"`
}

func (ProductImage) TableName() string { return "product_images" }

// Size is an optional inventory dimension (S, M, L, 42, ...).
type Size struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null;uniqueIndex" json:"name"`
}

func (Size) TableName() string { return "sizes" }

// Inventory is the stock count for one product, optionally per size.
type Inventory struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	ProductID int64  `gorm:"not null;uniqueIndex:idx_inventory_product_size" json:"product_id"`
	SizeID    *int64 `gorm:"uniqueIndex:idx_inventory_product_size" json:"size_id"`
	Stock     int    `gorm:"not null;default:0;check:chk_inventory_stock,stock >= 0" json:"stock"`
}

func (Inventory) TableName() string { return "inventory" }
