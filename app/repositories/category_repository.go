package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/requests"
)

type CategoryRepository struct {
	t titled[models.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{t: titled[models.Category]{
		db:    db,
		label: "Category",
		fk:    "category_id",
		build: func(title string) *models.Category { return &models.Category{Title: title} },
	}}
}

// All returns every category; an empty table is reported as not found.
func (r *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	return r.t.all(ctx)
}

func (r *CategoryRepository) Find(ctx context.Context, id int64) (*models.Category, error) {
	return r.t.find(ctx, id)
}

func (r *CategoryRepository) Create(ctx context.Context, in requests.Category) (*models.Category, error) {
	return r.t.create(ctx, in.Title)
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, p requests.CategoryPatch) (*models.Category, error) {
	return r.t.update(ctx, id, p.Title)
}

// Delete fails with an InUse conflict while products reference the category.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}
