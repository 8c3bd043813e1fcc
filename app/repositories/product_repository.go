package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return &ProductRepository{db: tx}
}

// Create checks SKU then title uniqueness and that the referenced category
// and brand exist before inserting.
func (r *ProductRepository) Create(ctx context.Context, in requests.Product) (*models.Product, error) {
	const op = "product.create"

	if err := r.unique(ctx, op, in.SKU, in.Title, 0); err != nil {
		return nil, err
	}
	if err := r.references(ctx, op, int64(in.CategoryID), int64(in.BrandID)); err != nil {
		return nil, err
	}

	p := &models.Product{
		SKU:         in.SKU,
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  int64(in.CategoryID),
		BrandID:     int64(in.BrandID),
		Price:       float64(in.Price),
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.Images = []models.ProductImage{}
	return p, nil
}

func (r *ProductRepository) unique(ctx context.Context, op, sku, title string, exceptID int64) error {
	if sku != "" {
		taken, err := exists(ctx, r.db, &models.Product{}, "sku = ? AND id <> ?", sku, exceptID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if taken {
			return apperr.Conflictf(op, apperr.CodeDuplicate, "A product with this SKU already exists.")
		}
	}
	if title != "" {
		taken, err := exists(ctx, r.db, &models.Product{}, "title = ? AND id <> ?", title, exceptID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if taken {
			return apperr.Conflictf(op, apperr.CodeDuplicate, "A product with this title already exists.")
		}
	}
	return nil
}

// references verifies the category and brand ids that are non-zero.
func (r *ProductRepository) references(ctx context.Context, op string, categoryID, brandID int64) error {
	if categoryID != 0 {
		ok, err := exists(ctx, r.db, &models.Category{}, "id = ?", categoryID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return apperr.NotFoundf(op, apperr.CodeNotFound, "Category with ID %d does not exist", categoryID)
		}
	}
	if brandID != 0 {
		ok, err := exists(ctx, r.db, &models.Brand{}, "id = ?", brandID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return apperr.NotFoundf(op, apperr.CodeNotFound, "Brand with ID %d does not exist", brandID)
		}
	}
	return nil
}

// Find returns the product with its image rows.
func (r *ProductRepository) Find(ctx context.Context, id int64) (*models.Product, error) {
	const op = "product.find"
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf(op, apperr.CodeProductNotFound, "Product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	list := []models.Product{p}
	if err := r.loadImages(ctx, list); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &list[0], nil
}

// All may return an empty slice.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	return r.list(ctx, "product.all", "")
}

// ByCategory reports an empty result as not found.
func (r *ProductRepository) ByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	const op = "product.by_category"
	products, err := r.list(ctx, op, "category_id = ?", categoryID)
	if err == nil && len(products) == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "No products found for this category")
	}
	return products, err
}

// ByBrand reports an empty result as not found.
func (r *ProductRepository) ByBrand(ctx context.Context, brandID int64) ([]models.Product, error) {
	const op = "product.by_brand"
	products, err := r.list(ctx, op, "brand_id = ?", brandID)
	if err == nil && len(products) == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "No products found for this brand")
	}
	return products, err
}

// Search matches q as a substring of the title or description.
func (r *ProductRepository) Search(ctx context.Context, q string) ([]models.Product, error) {
	const op = "product.search"
	like := "%" + escapeLike(q) + "%"
	products, err := r.list(ctx, op, `title LIKE ? ESCAPE '!' OR description LIKE ? ESCAPE '!'`, like, like)
	if err == nil && len(products) == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "No products found matching the search query")
	}
	return products, err
}

func (r *ProductRepository) list(ctx context.Context, op, query string, args ...any) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Order("id")
	if query != "" {
		q = q.Where(query, args...)
	}
	products := []models.Product{}
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := r.loadImages(ctx, products); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

func (r *ProductRepository) loadImages(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	var images []models.ProductImage
	if err := r.db.WithContext(ctx).Where("product_id IN ?", ids).Order("id").Find(&images).Error; err != nil {
		return err
	}
	byProduct := make(map[int64][]models.ProductImage, len(products))
	for _, img := range images {
		byProduct[img.ProductID] = append(byProduct[img.ProductID], img)
	}
	for i := range products {
		products[i].Images = byProduct[products[i].ID]
		if products[i].Images == nil {
			products[i].Images = []models.ProductImage{}
		}
	}
	return nil
}

// Update applies only the fields present in p.
func (r *ProductRepository) Update(ctx context.Context, id int64, p requests.ProductPatch) (*models.Product, error) {
	const op = "product.update"

	cols := map[string]any{}
	var sku, title string
	var categoryID, brandID int64
	if p.SKU != nil {
		sku = *p.SKU
		cols["sku"] = sku
	}
	if p.Title != nil {
		title = *p.Title
		cols["title"] = title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.CategoryID != nil {
		categoryID = int64(*p.CategoryID)
		cols["category_id"] = categoryID
	}
	if p.BrandID != nil {
		brandID = int64(*p.BrandID)
		cols["brand_id"] = brandID
	}
	if p.Price != nil {
		cols["price"] = float64(*p.Price)
	}
	if len(cols) == 0 {
		return nil, nothingUpdated(op, "Product")
	}

	if err := r.unique(ctx, op, sku, title, id); err != nil {
		return nil, err
	}
	if err := r.references(ctx, op, categoryID, brandID); err != nil {
		return nil, err
	}

	cols["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nothingUpdated(op, "Product")
	}
	return r.Find(ctx, id)
}

// AddImages records stored paths for a product.
func (r *ProductRepository) AddImages(ctx context.Context, productID int64, paths []string) ([]models.ProductImage, error) {
	if len(paths) == 0 {
		return []models.ProductImage{}, nil
	}
	images := make([]models.ProductImage, len(paths))
	for i, p := range paths {
		images[i] = models.ProductImage{ProductID: productID, Path: p}
	}
	if err := r.db.WithContext(ctx).Create(&images).Error; err != nil {
		return nil, fmt.Errorf("product.add_images: %w", err)
	}
	return images, nil
}

// RemoveImages deletes the image rows of a product and returns their paths
// so the caller can delete the stored files once the transaction commits.
func (r *ProductRepository) RemoveImages(ctx context.Context, productID int64) ([]string, error) {
	const op = "product.remove_images"
	var paths []string
	if err := r.db.WithContext(ctx).Model(&models.ProductImage{}).
		Where("product_id = ?", productID).Order("id").Pluck("path", &paths).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return paths, nil
}

// Delete removes only the product row; see ProductService.Delete for the
// full ordered removal.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	const op = "product.delete"
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf(op, apperr.CodeProductNotFound, "Product not found")
	}
	return nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '%' || c == '_' || c == '!' {
			out = append(out, '!')
		}
		out = append(out, c)
	}
	return string(out)
}
