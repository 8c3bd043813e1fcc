package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/internal/testdb"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

func TestBrandAllEmptyIsNotFound(t *testing.T) {
	repo := repositories.NewBrandRepository(testdb.New(t))
	_, err := repo.All(context.Background())
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestBrandCreateRejectsDuplicateTitle(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repositories.NewBrandRepository(db)

	b, err := repo.Create(ctx, requests.Brand{Title: "Acme"})
	require.NoError(t, err)
	assert.NotZero(t, b.ID)

	_, err = repo.Create(ctx, requests.Brand{Title: "Acme"})
	assert.True(t, apperr.Is(err, apperr.CodeDuplicate))

	var n int64
	db.Model(&models.Brand{}).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestBrandDeleteBlockedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	brand, _, product := catalog(t, db)
	repo := repositories.NewBrandRepository(db)

	err := repo.Delete(ctx, brand.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.True(t, apperr.Is(err, apperr.CodeInUse))

	require.NoError(t, db.Delete(&models.Product{}, product.ID).Error)
	require.NoError(t, repo.Delete(ctx, brand.ID))

	_, err = repo.Find(ctx, brand.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestCategoryDeleteMessage(t *testing.T) {
	db := testdb.New(t)
	_, category, _ := catalog(t, db)

	err := repositories.NewCategoryRepository(db).Delete(context.Background(), category.ID)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Cannot delete category. There are products associated with this category.", e.Message)
}

func TestCategoryDeleteUnknownIsNotFound(t *testing.T) {
	err := repositories.NewCategoryRepository(testdb.New(t)).Delete(context.Background(), 99)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestCategoryUpdate(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repositories.NewCategoryRepository(db)
	c, err := repo.Create(ctx, requests.Category{Title: "Shoes"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, requests.Category{Title: "Hats"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, c.ID, requests.CategoryPatch{})
	assert.True(t, apperr.Is(err, apperr.CodeNothingUpdated))

	_, err = repo.Update(ctx, 404, requests.CategoryPatch{Title: ptr("Boots")})
	assert.True(t, apperr.Is(err, apperr.CodeNothingUpdated))

	_, err = repo.Update(ctx, c.ID, requests.CategoryPatch{Title: ptr("Hats")})
	assert.True(t, apperr.Is(err, apperr.CodeDuplicate))

	got, err := repo.Update(ctx, c.ID, requests.CategoryPatch{Title: ptr("Boots")})
	require.NoError(t, err)
	assert.Equal(t, "Boots", got.Title)
}

func TestProductCreateUniqueness(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	brand, category, _ := catalog(t, db)
	repo := repositories.NewProductRepository(db)

	in := requests.Product{
		SKU: "SKU-1", Title: "Other", Description: "Another product entirely",
		CategoryID: requests.Int(category.ID), BrandID: requests.Int(brand.ID), Price: 5,
	}
	_, err := repo.Create(ctx, in)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "A product with this SKU already exists.", e.Message)

	in.SKU, in.Title = "SKU-2", "Runner"
	_, err = repo.Create(ctx, in)
	e, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "A product with this title already exists.", e.Message)

	var n int64
	db.Model(&models.Product{}).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestProductCreateRequiresCategoryAndBrand(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	brand, _, _ := catalog(t, db)

	_, err := repositories.NewProductRepository(db).Create(ctx, requests.Product{
		SKU: "SKU-9", Title: "Orphan", Description: "No category for this one",
		CategoryID: 77, BrandID: requests.Int(brand.ID), Price: 1,
	})
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestProductsByBrandFiltersOnBrand(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	brand, category, _ := catalog(t, db)
	other := models.Brand{Title: "Globex"}
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&models.Product{
		SKU: "SKU-2", Title: "Trail", Description: "A trail running shoe",
		CategoryID: category.ID, BrandID: other.ID, Price: 12,
	}).Error)
	repo := repositories.NewProductRepository(db)

	got, err := repo.ByBrand(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Trail", got[0].Title)

	got, err = repo.ByCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = repo.ByBrand(ctx, brand.ID+other.ID+1)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestProductSearch(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	catalog(t, db)
	repo := repositories.NewProductRepository(db)

	got, err := repo.Search(ctx, "running")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = repo.Search(ctx, "100%")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestProductUpdatePatch(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	_, _, product := catalog(t, db)
	repo := repositories.NewProductRepository(db)

	_, err := repo.Update(ctx, product.ID, requests.ProductPatch{})
	assert.True(t, apperr.Is(err, apperr.CodeNothingUpdated))

	price := requests.Float(15.5)
	got, err := repo.Update(ctx, product.ID, requests.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 15.5, got.Price)
	assert.Equal(t, "Runner", got.Title)
	assert.NotNil(t, got.Images)
}
