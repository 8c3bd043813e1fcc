package requests

type Brand struct {
	Title string `json:"title" validate:"required,min=3,max=255"`
}

type BrandPatch struct {
	Title *string `json:"title" validate:"min=3,max=255"`
}

type Category struct {
	Title string `json:"title" validate:"required,min=3,max=255"`
}

type CategoryPatch struct {
	Title *string `json:"title" validate:"min=3,max=255"`
}

// Product is bound from JSON or from the multipart form that carries images.
type Product struct {
	SKU         string `json:"sku" form:"sku" validate:"required,max=100"`
	Title       string `json:"title" form:"title" validate:"required,min=3,max=255"`
	Description string `json:"description" form:"description" validate:"required,min=10"`
	CategoryID  Int    `json:"category_id" form:"category_id" validate:"required,gt=0"`
	BrandID     Int    `json:"brand_id" form:"brand_id" validate:"required,gt=0"`
	Price       Float  `json:"price" form:"price" validate:"required,gt=0"`
}

type ProductPatch struct {
	SKU         *string `json:"sku" validate:"max=100"`
	Title       *string `json:"title" validate:"min=3,max=255"`
	Description *string `json:"description" validate:"min=10"`
	CategoryID  *Int    `json:"category_id" validate:"gt=0"`
	BrandID     *Int    `json:"brand_id" validate:"gt=0"`
	Price       *Float  `json:"price" validate:"gt=0"`
}

// Inventory stock is a pointer so an explicit 0 is accepted.
type Inventory struct {
	ProductID Int  `json:"product_id" validate:"required,gt=0"`
	SizeID    *Int `json:"size_id" validate:"gt=0"`
	Stock     *Int `json:"stock" validate:"required,gte=0"`
}

type InventoryStock struct {
	Stock *Int `json:"stock" validate:"required,gte=0"`
}
