package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
)

// catalog inserts one brand, one category and one product.
func catalog(t *testing.T, db *gorm.DB) (models.Brand, models.Category, models.Product) {
	t.Helper()
	brand := models.Brand{Title: "Acme"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Title: "Shoes"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{
		SKU: "SKU-1", Title: "Runner", Description: "A light running shoe",
		CategoryID: category.ID, BrandID: brand.ID, Price: 10,
	}
	require.NoError(t, db.Create(&product).Error)
	return brand, category, product
}

func ptr[T any](v T) *T { return &v }
