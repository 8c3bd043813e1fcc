package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

// Insert writes the order row, then its items in slice order, then the
// shipping address. Run it inside a transaction.
func (r *OrderRepository) Insert(ctx context.Context, o *models.Order) error {
	const op = "order.insert"
	db := r.db.WithContext(ctx)

	if err := db.Create(o).Error; err != nil {
		return fmt.Errorf("%s: order: %w", op, err)
	}
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		if err := db.Create(&o.Items[i]).Error; err != nil {
			return fmt.Errorf("%s: item %d: %w", op, i, err)
		}
	}
	if o.ShippingAddress == nil {
		return fmt.Errorf("%s: missing shipping address", op)
	}
	o.ShippingAddress.OrderID = o.ID
	if err := db.Create(o.ShippingAddress).Error; err != nil {
		return fmt.Errorf("%s: address: %w", op, err)
	}
	return nil
}

const orderRowColumns = `o.id AS order_id, o.user_email, o.status, o.total_price, o.payment_method_id,
	o.created_at, o.updated_at,
	oi.id AS item_id, oi.product_id, oi.quantity, oi.price,
	sa.address_line1, sa.city, sa.postal_code, sa.country`

func (r *OrderRepository) rows(ctx context.Context, op string, newestFirst bool, query string, args ...any) ([]models.OrderRow, error) {
	q := r.db.WithContext(ctx).
		Table("orders AS o").
		Select(orderRowColumns).
		Joins("JOIN order_items AS oi ON oi.order_id = o.id").
		Joins("JOIN shipping_addresses AS sa ON sa.order_id = o.id")
	if query != "" {
		q = q.Where(query, args...)
	}
	if newestFirst {
		q = q.Order("o.created_at DESC").Order("o.id DESC")
	}
	q = q.Order("oi.id")

	var out []models.OrderRow
	if err := q.Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(out) == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeOrderNotFound, "Order not found")
	}
	return out, nil
}

// All returns one row per (order, item), newest order first.
func (r *OrderRepository) All(ctx context.Context) ([]models.OrderRow, error) {
	return r.rows(ctx, "order.all", true, "")
}

func (r *OrderRepository) ByEmail(ctx context.Context, email string) ([]models.OrderRow, error) {
	return r.rows(ctx, "order.by_email", true, "o.user_email = ?", email)
}

func (r *OrderRepository) ByID(ctx context.Context, id int64) ([]models.OrderRow, error) {
	return r.rows(ctx, "order.by_id", false, "o.id = ?", id)
}

// Update assigns cols and bumps updated_at. An empty cols is NothingUpdated;
// no matching row is OrderNotFound.
func (r *OrderRepository) Update(ctx context.Context, id int64, cols map[string]any) error {
	const op = "order.update"
	if len(cols) == 0 {
		return nothingUpdated(op, "Order")
	}
	assign := make(map[string]any, len(cols)+1)
	for k, v := range cols {
		assign[k] = v
	}
	assign["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(assign)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf(op, apperr.CodeOrderNotFound, "Order not found")
	}
	return nil
}

// Delete removes items, then the address, then the order row in one
// transaction. A missing order rolls the whole thing back.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	const op = "order.delete"
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("%s: items: %w", op, err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.ShippingAddress{}).Error; err != nil {
			return fmt.Errorf("%s: address: %w", op, err)
		}
		res := tx.Delete(&models.Order{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("%s: order: %w", op, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFoundf(op, apperr.CodeOrderNotFound, "Order not found")
		}
		return nil
	})
}

// Exists reports whether an order row with id is present.
func (r *OrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := exists(ctx, r.db, &models.Order{}, "id = ?", id)
	if err != nil {
		return false, fmt.Errorf("order.exists: %w", err)
	}
	return ok, nil
}
