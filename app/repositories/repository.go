// Package repositories translates models to and from the database. Every
// repository takes the *gorm.DB it should use; WithTx rebinds one to a
// transaction handle so services can compose several repositories inside
// a single db.Transaction.
package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

// exists reports whether any row of model matches the condition.
func exists(ctx context.Context, db *gorm.DB, model any, query string, args ...any) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func productExists(ctx context.Context, db *gorm.DB, op string, id int64) error {
	ok, err := exists(ctx, db, &models.Product{}, "id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return apperr.NotFoundf(op, apperr.CodeProductNotFound, "Product with ID %d does not exist", id)
	}
	return nil
}

func nothingUpdated(op, what string) error {
	return apperr.NotFoundf(op, apperr.CodeNothingUpdated, "%s not found or nothing to update", what)
}
