package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) WithTx(tx *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: tx}
}

// ForProduct returns the product's inventory record, or nil when it has none.
func (r *InventoryRepository) ForProduct(ctx context.Context, productID int64) (*models.Inventory, error) {
	var inv models.Inventory
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("inventory.for_product: %w", err)
	}
	return &inv, nil
}

// Create rejects a second record for the same product.
func (r *InventoryRepository) Create(ctx context.Context, in requests.Inventory) (*models.Inventory, error) {
	const op = "inventory.create"
	productID := int64(in.ProductID)

	if err := productExists(ctx, r.db, op, productID); err != nil {
		return nil, err
	}
	existing, err := r.ForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflictf(op, apperr.CodeInventoryAlreadyExists, "Inventory already exist.")
	}

	inv := &models.Inventory{ProductID: productID, Stock: int(*in.Stock)}
	if in.SizeID != nil {
		sizeID := int64(*in.SizeID)
		ok, err := exists(ctx, r.db, &models.Size{}, "id = ?", sizeID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "Size with ID %d does not exist", sizeID)
		}
		inv.SizeID = &sizeID
	}
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return inv, nil
}

func (r *InventoryRepository) All(ctx context.Context) ([]models.Inventory, error) {
	const op = "inventory.all"
	var rows []models.Inventory
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "No inventory found")
	}
	return rows, nil
}

// Find is ForProduct with absence reported as not found.
func (r *InventoryRepository) Find(ctx context.Context, productID int64) (*models.Inventory, error) {
	inv, err := r.ForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, apperr.NotFoundf("inventory.find", apperr.CodeNotFound, "No inventory found for the specified product")
	}
	return inv, nil
}

// SetStock overwrites the stock count; it is not a delta.
func (r *InventoryRepository) SetStock(ctx context.Context, productID int64, stock int) (*models.Inventory, error) {
	const op = "inventory.set_stock"
	res := r.db.WithContext(ctx).Model(&models.Inventory{}).Where("product_id = ?", productID).Update("stock", stock)
	if res.Error != nil {
		return nil, fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "Product not found or stock not updated")
	}
	return r.Find(ctx, productID)
}

// Decrement takes qty units from the record only if that many remain.
// It reports false when the guard rejected the update.
func (r *InventoryRepository) Decrement(ctx context.Context, inventoryID int64, qty int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Inventory{}).
		Where("id = ? AND stock >= ?", inventoryID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, fmt.Errorf("inventory.decrement: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// Delete removes the product's inventory and reports absence as not found.
func (r *InventoryRepository) Delete(ctx context.Context, productID int64) error {
	n, err := r.Purge(ctx, productID)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFoundf("inventory.delete", apperr.CodeNotFound, "No inventory found for the specified product")
	}
	return nil
}

// Purge removes every inventory record of a product and returns how many
// were removed.
func (r *InventoryRepository) Purge(ctx context.Context, productID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.Inventory{})
	if res.Error != nil {
		return 0, fmt.Errorf("inventory.purge: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *InventoryRepository) Sizes(ctx context.Context) ([]models.Size, error) {
	const op = "inventory.sizes"
	var sizes []models.Size
	if err := r.db.WithContext(ctx).Order("id").Find(&sizes).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(sizes) == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "No sizes available")
	}
	return sizes, nil
}
