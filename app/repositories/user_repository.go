package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create rejects an email that is already registered.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	const op = "user.create"
	taken, err := exists(ctx, r.db, &models.User{}, "email = ?", u.Email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return apperr.Conflictf(op, apperr.CodeDuplicate, "Email is already registered")
	}
	if u.Role == "" {
		u.Role = "user"
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *UserRepository) first(ctx context.Context, op, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.first(ctx, "user.find_by_email", "email = ?", email)
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return r.first(ctx, "user.find_by_id", "id = ?", id)
}

// All may return an empty slice.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("user.all: %w", err)
	}
	return users, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	const op = "user.update_password"
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", hash)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf(op, apperr.CodeNotFound, "User not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const op = "user.delete"
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf(op, apperr.CodeNotFound, "User not found")
	}
	return nil
}
