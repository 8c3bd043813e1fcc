package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

// titled implements the shared behaviour of brands and categories: a unique
// title, referenced from product.<fk>.
type titled[T any] struct {
	db    *gorm.DB
	label string
	fk    string
	build func(title string) *T
}

func (r *titled[T]) op(name string) string {
	return strings.ToLower(r.label) + "." + name
}

func (r *titled[T]) all(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", r.op("all"), err)
	}
	if len(rows) == 0 {
		return nil, apperr.NotFoundf(r.op("all"), apperr.CodeNotFound, "No %s available", plural(r.label))
	}
	return rows, nil
}

func (r *titled[T]) find(ctx context.Context, id int64) (*T, error) {
	row := new(T)
	err := r.db.WithContext(ctx).First(row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf(r.op("find"), apperr.CodeNotFound, "%s not found", r.label)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.op("find"), err)
	}
	return row, nil
}

func (r *titled[T]) titleTaken(ctx context.Context, op, title string, exceptID int64) error {
	taken, err := exists(ctx, r.db, new(T), "title = ? AND id <> ?", title, exceptID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return apperr.Conflictf(op, apperr.CodeDuplicate, "%s already exists.", r.label)
	}
	return nil
}

func (r *titled[T]) create(ctx context.Context, title string) (*T, error) {
	op := r.op("create")
	if err := r.titleTaken(ctx, op, title, 0); err != nil {
		return nil, err
	}
	row := r.build(title)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return row, nil
}

func (r *titled[T]) update(ctx context.Context, id int64, title *string) (*T, error) {
	op := r.op("update")
	if title == nil {
		return nil, nothingUpdated(op, r.label)
	}
	if err := r.titleTaken(ctx, op, *title, id); err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Update("title", *title)
	if res.Error != nil {
		return nil, fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nothingUpdated(op, r.label)
	}
	return r.find(ctx, id)
}

// delete refuses while any product references the row. The check and the
// delete share a transaction.
func (r *titled[T]) delete(ctx context.Context, id int64) error {
	op := r.op("delete")
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inUse, err := exists(ctx, tx, &models.Product{}, r.fk+" = ?", id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if inUse {
			lower := strings.ToLower(r.label)
			return apperr.Conflictf(op, apperr.CodeInUse,
				"Cannot delete %s. There are products associated with this %s.", lower, lower)
		}
		res := tx.Delete(new(T), "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("%s: %w", op, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFoundf(op, apperr.CodeNotFound, "%s not found", r.label)
		}
		return nil
	})
}

func plural(label string) string {
	l := strings.ToLower(label)
	if strings.HasSuffix(l, "y") {
		return l[:len(l)-1] + "ies"
	}
	return l + "s"
}
