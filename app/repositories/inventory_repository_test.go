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

func TestInventoryCreate(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	_, _, product := catalog(t, db)
	repo := repositories.NewInventoryRepository(db)

	zero := requests.Int(0)
	inv, err := repo.Create(ctx, requests.Inventory{ProductID: requests.Int(product.ID), Stock: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Stock)

	_, err = repo.Create(ctx, requests.Inventory{ProductID: requests.Int(product.ID), Stock: &zero})
	assert.True(t, apperr.Is(err, apperr.CodeInventoryAlreadyExists))

	_, err = repo.Create(ctx, requests.Inventory{ProductID: 999, Stock: &zero})
	assert.True(t, apperr.Is(err, apperr.CodeProductNotFound))
}

func TestInventoryForProductAbsentIsNil(t *testing.T) {
	inv, err := repositories.NewInventoryRepository(testdb.New(t)).ForProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, inv)
}

func TestInventorySetStockIsAbsolute(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	_, _, product := catalog(t, db)
	require.NoError(t, db.Create(&models.Inventory{ProductID: product.ID, Stock: 3}).Error)
	repo := repositories.NewInventoryRepository(db)

	inv, err := repo.SetStock(ctx, product.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, inv.Stock)

	_, err = repo.SetStock(ctx, 999, 1)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestInventoryDecrementGuard(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	_, _, product := catalog(t, db)
	inv := models.Inventory{ProductID: product.ID, Stock: 2}
	require.NoError(t, db.Create(&inv).Error)
	repo := repositories.NewInventoryRepository(db)

	ok, err := repo.Decrement(ctx, inv.ID, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Decrement(ctx, inv.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.Find(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
}

func TestInventoryDeleteAndLists(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repositories.NewInventoryRepository(db)

	_, err := repo.All(ctx)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	_, err = repo.Sizes(ctx)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, apperr.NotFound, apperr.KindOf(repo.Delete(ctx, 1)))

	require.NoError(t, db.Create(&models.Size{Name: "M"}).Error)
	sizes, err := repo.Sizes(ctx)
	require.NoError(t, err)
	assert.Equal(t, "M", sizes[0].Name)
}
