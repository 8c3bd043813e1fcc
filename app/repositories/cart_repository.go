package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Add puts qty of a product in the user's cart. A product already in the
// cart has its quantity increased instead of gaining a second row.
func (r *CartRepository) Add(ctx context.Context, email string, productID int64, qty int) (*models.CartItem, error) {
	const op = "cart.add"
	var item models.CartItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := productExists(ctx, tx, op, productID); err != nil {
			return err
		}

		err := tx.Where("user_email = ? AND product_id = ?", email, productID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{UserEmail: email, ProductID: productID, Quantity: qty, CreatedAt: time.Now().UTC()}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("%s: insert: %w", op, err)
			}
			return nil
		case err != nil:
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := tx.Model(&models.CartItem{}).
			Where("user_email = ? AND product_id = ?", email, productID).
			Update("quantity", gorm.Expr("quantity + ?", qty)).Error; err != nil {
			return fmt.Errorf("%s: merge: %w", op, err)
		}
		item.Quantity += qty
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ForUser returns the cart joined with product title and price.
func (r *CartRepository) ForUser(ctx context.Context, email string) ([]models.CartLine, error) {
	const op = "cart.for_user"
	var lines []models.CartLine
	err := r.db.WithContext(ctx).
		Table("cart AS c").
		Select("c.product_id, p.title, p.price, c.quantity").
		Joins("JOIN product AS p ON p.id = c.product_id").
		Where("c.user_email = ?", email).
		Order("c.created_at").Order("c.product_id").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(lines) == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "Cart is empty")
	}
	return lines, nil
}

// SetQuantity overwrites the quantity of one cart line.
func (r *CartRepository) SetQuantity(ctx context.Context, email string, productID int64, qty int) error {
	const op = "cart.set_quantity"
	res := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("user_email = ? AND product_id = ?", email, productID).
		Update("quantity", qty)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf(op, apperr.CodeNotFound, "Cart not found")
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, email string, productID int64) error {
	const op = "cart.remove"
	res := r.db.WithContext(ctx).Where("user_email = ? AND product_id = ?", email, productID).Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf(op, apperr.CodeNotFound, "Item not found")
	}
	return nil
}

// Clear empties the cart; an already empty cart is not found.
func (r *CartRepository) Clear(ctx context.Context, email string) error {
	const op = "cart.clear"
	res := r.db.WithContext(ctx).Where("user_email = ?", email).Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf(op, apperr.CodeNotFound, "Cart not found")
	}
	return nil
}
