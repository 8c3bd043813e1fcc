package services_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/internal/testdb"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/storage"
)

// uploads builds file headers the way net/http parses them.
func uploads(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, n := range names {
		fw, err := w.CreateFormFile("images", n)
		require.NoError(t, err)
		_, _ = fw.Write([]byte("data:" + n))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["images"]
}

func productInput(brandID, categoryID int64) requests.Product {
	return requests.Product{
		SKU: "SKU-1", Title: "Runner", Description: "A light running shoe",
		CategoryID: requests.Int(categoryID), BrandID: requests.Int(brandID), Price: 10,
	}
}

func TestProductCreateStoresImages(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	disk := storage.NewLocalDisk(t.TempDir(), "/uploads")
	svc := services.NewProductService(db, disk)

	brand := models.Brand{Title: "Acme"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Title: "Shoes"}
	require.NoError(t, db.Create(&category).Error)

	p, err := svc.Create(ctx, productInput(brand.ID, category.ID), uploads(t, "front view.png", "back.png"))
	require.NoError(t, err)
	require.Len(t, p.Images, 2)
	assert.Contains(t, p.Images[0].Path, "front-view.png")
	assert.Equal(t, "/uploads/"+p.Images[0].Path, p.Images[0].URL)
	assert.True(t, disk.Exists(ctx, p.Images[0].Path))

	got, err := svc.Find(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Images, 2)
}

func TestProductReplaceImages(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	disk := storage.NewLocalDisk(t.TempDir(), "/uploads")
	svc := services.NewProductService(db, disk)

	brand := models.Brand{Title: "Acme"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Title: "Shoes"}
	require.NoError(t, db.Create(&category).Error)
	p, err := svc.Create(ctx, productInput(brand.ID, category.ID), uploads(t, "old.png"))
	require.NoError(t, err)
	oldPath := p.Images[0].Path

	_, err = svc.ReplaceImages(ctx, p.ID, nil)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.ReplaceImages(ctx, 999, uploads(t, "new.png"))
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	got, err := svc.ReplaceImages(ctx, p.ID, uploads(t, "new.png"))
	require.NoError(t, err)
	require.Len(t, got.Images, 1)
	assert.Contains(t, got.Images[0].Path, "new.png")
	assert.False(t, disk.Exists(ctx, oldPath))
}

func TestProductDeleteRemovesInventoryImagesAndRow(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	disk := storage.NewLocalDisk(t.TempDir(), "/uploads")
	svc := services.NewProductService(db, disk)

	brand := models.Brand{Title: "Acme"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Title: "Shoes"}
	require.NoError(t, db.Create(&category).Error)
	p, err := svc.Create(ctx, productInput(brand.ID, category.ID), uploads(t, "a.png"))
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Inventory{ProductID: p.ID, Stock: 4}).Error)

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.False(t, disk.Exists(ctx, p.Images[0].Path))

	assert.Zero(t, count(t, db, &models.Product{}))
	assert.Zero(t, count(t, db, &models.ProductImage{}))
	assert.Zero(t, count(t, db, &models.Inventory{}))

	assert.Equal(t, apperr.NotFound, apperr.KindOf(svc.Delete(ctx, p.ID)))
}

func TestProductDeleteUnknownKeepsOtherInventory(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	ids := stocked(t, db, 3)
	svc := services.NewProductService(db, storage.NewLocalDisk(t.TempDir(), "/uploads"))

	assert.Equal(t, apperr.NotFound, apperr.KindOf(svc.Delete(ctx, ids[0]+100)))
	assert.Equal(t, 3, stockOf(t, db, ids[0]))
}

func TestProductSearchRequiresQuery(t *testing.T) {
	svc := services.NewProductService(testdb.New(t), storage.NewLocalDisk(t.TempDir(), "/uploads"))
	_, err := svc.Search(context.Background(), "  ")
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}
