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

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Methods may return an empty slice.
func (r *PaymentRepository) Methods(ctx context.Context) ([]models.PaymentMethod, error) {
	methods := []models.PaymentMethod{}
	if err := r.db.WithContext(ctx).Order("id").Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("payment.methods: %w", err)
	}
	return methods, nil
}

func (r *PaymentRepository) Method(ctx context.Context, id int64) (*models.PaymentMethod, error) {
	const op = "payment.method"
	var m models.PaymentMethod
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "Payment method not found")
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}

func (r *PaymentRepository) CreateMethod(ctx context.Context, in requests.PaymentMethod) (*models.PaymentMethod, error) {
	m := &models.PaymentMethod{MethodName: in.MethodName}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("payment.create_method: %w", err)
	}
	return m, nil
}

func (r *PaymentRepository) UpdateMethod(ctx context.Context, id int64, in requests.PaymentMethod) (*models.PaymentMethod, error) {
	const op = "payment.update_method"
	res := r.db.WithContext(ctx).Model(&models.PaymentMethod{}).Where("id = ?", id).Update("method_name", in.MethodName)
	if res.Error != nil {
		return nil, fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "Payment method not found")
	}
	return r.Method(ctx, id)
}

func (r *PaymentRepository) DeleteMethod(ctx context.Context, id int64) error {
	const op = "payment.delete_method"
	res := r.db.WithContext(ctx).Delete(&models.PaymentMethod{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf(op, apperr.CodeNotFound, "Payment method not found")
	}
	return nil
}

func (r *PaymentRepository) methodExists(ctx context.Context, op string, id int64) error {
	ok, err := exists(ctx, r.db, &models.PaymentMethod{}, "id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return apperr.NotFoundf(op, apperr.CodeNotFound, "Payment method not found")
	}
	return nil
}

// Create records a payment against an existing order and method.
func (r *PaymentRepository) Create(ctx context.Context, in requests.Payment) (*models.Payment, error) {
	const op = "payment.create"
	orderID := int64(in.OrderID)

	ok, err := exists(ctx, r.db, &models.Order{}, "id = ?", orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return nil, apperr.NotFoundf(op, apperr.CodeOrderNotFound, "Order not found")
	}
	if err := r.methodExists(ctx, op, int64(in.PaymentMethodID)); err != nil {
		return nil, err
	}

	p := &models.Payment{
		OrderID:         orderID,
		PaymentMethodID: int64(in.PaymentMethodID),
		Amount:          float64(in.Amount),
		PaymentDate:     time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// ForOrder reports an order without payments as not found.
func (r *PaymentRepository) ForOrder(ctx context.Context, orderID int64) ([]models.Payment, error) {
	const op = "payment.for_order"
	var payments []models.Payment
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("payment_date").Order("id").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(payments) == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "No payments found for this order")
	}
	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, id int64, p requests.PaymentPatch) (*models.Payment, error) {
	const op = "payment.update"
	cols := map[string]any{}
	if p.PaymentMethodID != nil {
		if err := r.methodExists(ctx, op, int64(*p.PaymentMethodID)); err != nil {
			return nil, err
		}
		cols["payment_method_id"] = int64(*p.PaymentMethodID)
	}
	if p.Amount != nil {
		cols["amount"] = float64(*p.Amount)
	}
	if len(cols) == 0 {
		return nil, nothingUpdated(op, "Payment")
	}

	res := r.db.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFoundf(op, apperr.CodeNotFound, "Payment not found")
	}

	var out models.Payment
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("%s: reload: %w", op, err)
	}
	return &out, nil
}
