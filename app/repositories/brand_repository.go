package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/requests"
)

type BrandRepository struct {
	t titled[models.Brand]
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{t: titled[models.Brand]{
		db:    db,
		label: "Brand",
		fk:    "brand_id",
		build: func(title string) *models.Brand { return &models.Brand{Title: title} },
	}}
}

// All returns every brand; an empty table is reported as not found.
func (r *BrandRepository) All(ctx context.Context) ([]models.Brand, error) {
	return r.t.all(ctx)
}

func (r *BrandRepository) Find(ctx context.Context, id int64) (*models.Brand, error) {
	return r.t.find(ctx, id)
}

func (r *BrandRepository) Create(ctx context.Context, in requests.Brand) (*models.Brand, error) {
	return r.t.create(ctx, in.Title)
}

func (r *BrandRepository) Update(ctx context.Context, id int64, p requests.BrandPatch) (*models.Brand, error) {
	return r.t.update(ctx, id, p.Title)
}

// Delete fails with an InUse conflict while products reference the brand.
func (r *BrandRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}
