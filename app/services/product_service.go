package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/storage"
)

// ProductService owns the product operations that touch image storage.
type ProductService struct {
	db        *gorm.DB
	products  *repositories.ProductRepository
	inventory *repositories.InventoryRepository
	disk      storage.Disk
	now       func() time.Time
}

func NewProductService(db *gorm.DB, disk storage.Disk) *ProductService {
	return &ProductService{
		db:        db,
		products:  repositories.NewProductRepository(db),
		inventory: repositories.NewInventoryRepository(db),
		disk:      disk,
		now:       time.Now,
	}
}

// Create inserts the product and stores its images. A failed upload rolls
// back the row and removes any files already written.
func (s *ProductService) Create(ctx context.Context, in requests.Product, files []*multipart.FileHeader) (*models.Product, error) {
	var product *models.Product
	var stored []string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.products.WithTx(tx)
		p, err := repo.Create(ctx, in)
		if err != nil {
			return err
		}
		stored, err = s.store(ctx, p.ID, files)
		if err != nil {
			return err
		}
		if p.Images, err = repo.AddImages(ctx, p.ID, stored); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		s.removeFiles(ctx, stored)
		return nil, err
	}
	s.decorate(product)
	return product, nil
}

// ReplaceImages swaps every image of a product for the uploaded files. The
// old files are deleted only after the new rows commit.
func (s *ProductService) ReplaceImages(ctx context.Context, id int64, files []*multipart.FileHeader) (*models.Product, error) {
	const op = "product.replace_images"
	if len(files) == 0 {
		return nil, apperr.Invalidf(op, apperr.CodeInvalidInput, "No image file provided")
	}

	var old, stored []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.products.WithTx(tx)
		if _, err := repo.Find(ctx, id); err != nil {
			return err
		}
		var err error
		if old, err = repo.RemoveImages(ctx, id); err != nil {
			return err
		}
		if stored, err = s.store(ctx, id, files); err != nil {
			return err
		}
		_, err = repo.AddImages(ctx, id, stored)
		return err
	})
	if err != nil {
		s.removeFiles(ctx, stored)
		return nil, err
	}
	s.removeFiles(ctx, old)
	return s.Find(ctx, id)
}

// Delete removes the product's inventory, then its image rows, then the
// product row in one transaction, and deletes the stored files after commit.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	var paths []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.inventory.WithTx(tx).Purge(ctx, id); err != nil {
			return err
		}
		repo := s.products.WithTx(tx)
		var err error
		if paths, err = repo.RemoveImages(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.removeFiles(ctx, paths)
	return nil
}

func (s *ProductService) Find(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.products.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(p)
	return p, nil
}

func (s *ProductService) All(ctx context.Context) ([]models.Product, error) {
	return s.decorateAll(s.products.All(ctx))
}

func (s *ProductService) ByCategory(ctx context.Context, id int64) ([]models.Product, error) {
	return s.decorateAll(s.products.ByCategory(ctx, id))
}

func (s *ProductService) ByBrand(ctx context.Context, id int64) ([]models.Product, error) {
	return s.decorateAll(s.products.ByBrand(ctx, id))
}

func (s *ProductService) Search(ctx context.Context, q string) ([]models.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperr.Invalidf("product.search", apperr.CodeInvalidInput, "Search query is required")
	}
	return s.decorateAll(s.products.Search(ctx, q))
}

func (s *ProductService) Update(ctx context.Context, id int64, p requests.ProductPatch) (*models.Product, error) {
	product, err := s.products.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.decorate(product)
	return product, nil
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// store writes each upload under products/<id>/. On error it returns the
// paths written so far so the caller can clean them up.
func (s *ProductService) store(ctx context.Context, productID int64, files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		name := unsafeName.ReplaceAllString(path.Base(fh.Filename), "-")
		p := fmt.Sprintf("products/%d/%d-%s", productID, s.now().UnixNano(), name)

		f, err := fh.Open()
		if err != nil {
			return paths, fmt.Errorf("product.store: open %s: %w", fh.Filename, err)
		}
		err = s.disk.Put(ctx, p, f)
		f.Close()
		if err != nil {
			return paths, fmt.Errorf("product.store: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func (s *ProductService) removeFiles(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := s.disk.Delete(context.WithoutCancel(ctx), p); err != nil {
			logger.WithCtx(ctx).Warn("product: stored image not removed", "path", p, "error", err)
		}
	}
}

func (s *ProductService) decorate(p *models.Product) {
	for i := range p.Images {
		p.Images[i].URL = s.disk.URL(p.Images[i].Path)
	}
}

func (s *ProductService) decorateAll(products []models.Product, err error) ([]models.Product, error) {
	if err != nil {
		return nil, err
	}
	for i := range products {
		s.decorate(&products[i])
	}
	return products, nil
}
