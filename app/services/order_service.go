package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

const idempotencyTTL = 24 * time.Hour

// OrderService places, reads, updates and deletes orders.
type OrderService struct {
	db        *gorm.DB
	orders    *repositories.OrderRepository
	inventory *repositories.InventoryRepository
	idem      *cache.Store
	events    *event.Dispatcher
	now       func() time.Time
}

// NewOrderService wires the service. idem and events may be nil.
func NewOrderService(db *gorm.DB, idem *cache.Store, events *event.Dispatcher) *OrderService {
	return &OrderService{
		db:        db,
		orders:    repositories.NewOrderRepository(db),
		inventory: repositories.NewInventoryRepository(db),
		idem:      idem,
		events:    events,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Place verifies and takes stock for every line, then writes the order, its
// items and its shipping address. Everything happens in one transaction, so
// any failure leaves stock and tables as they were.
//
// A non-empty idempotencyKey is reserved for 24h before anything else runs;
// a repeated key fails with DuplicateRequest. The reservation is released
// when placement fails so the client may retry.
func (s *OrderService) Place(ctx context.Context, in requests.Order, idempotencyKey string) (*models.Order, error) {
	const op = "order.place"
	log := logger.WithCtx(ctx)

	committed := false
	if idempotencyKey != "" {
		key := "idempotency:" + idempotencyKey
		switch err := s.idem.Reserve(ctx, key, idempotencyTTL); {
		case errors.Is(err, cache.ErrReserved):
			metrics.OrderFailed(string(apperr.CodeDuplicateRequest))
			return nil, apperr.Conflictf(op, apperr.CodeDuplicateRequest, "This order request has already been submitted")
		case err != nil:
			log.Warn("order: idempotency reservation unavailable", "error", err)
		default:
			defer func() {
				if !committed {
					_ = s.idem.Release(context.WithoutCancel(ctx), key)
				}
			}()
		}
	}

	order := buildOrder(in, s.now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv := s.inventory.WithTx(tx)

		records := make([]*models.Inventory, len(order.Items))
		for i, item := range order.Items {
			rec, err := inv.ForProduct(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if rec == nil {
				return apperr.NotFoundf(op, apperr.CodeProductNotFound, "Product with ID %d does not exist", item.ProductID)
			}
			if rec.Stock < item.Quantity {
				return insufficient(op, item.ProductID)
			}
			records[i] = rec
		}

		for i, item := range order.Items {
			ok, err := inv.Decrement(ctx, records[i].ID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return insufficient(op, item.ProductID)
			}
		}

		return s.orders.WithTx(tx).Insert(ctx, order)
	})
	if err != nil {
		metrics.OrderFailed(string(apperr.CodeOf(err)))
		if apperr.KindOf(err) == apperr.Unexpected {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, err
	}
	committed = true

	metrics.OrdersPlaced.Inc()
	log.Info("order placed", "order_id", order.ID, "items", len(order.Items))
	s.events.Dispatch(ctx, event.Event{
		Name:    event.OrderPlaced,
		Key:     fmt.Sprintf("order-placed-%d", order.ID),
		Payload: order,
	})
	return order, nil
}

func insufficient(op string, productID int64) error {
	return apperr.Invalidf(op, apperr.CodeInsufficientStock, "Not enough stock for product with ID %d", productID)
}

func buildOrder(in requests.Order, now time.Time) *models.Order {
	o := &models.Order{
		UserEmail:       in.UserEmail,
		Status:          in.Status,
		TotalPrice:      float64(in.TotalPrice),
		PaymentMethodID: int64(in.PaymentMethodID),
		CreatedAt:       now,
		UpdatedAt:       now,
		Items:           make([]models.OrderItem, len(in.Items)),
	}
	for i, it := range in.Items {
		o.Items[i] = models.OrderItem{
			ProductID: int64(it.ProductID),
			Quantity:  int(it.Quantity),
			Price:     float64(it.Price),
		}
	}
	if a := in.ShippingAddress; a != nil {
		o.ShippingAddress = &models.ShippingAddress{
			UserEmail:    in.UserEmail,
			AddressLine1: a.StreetAddress,
			City:         a.City,
			PostalCode:   a.PostalCode,
			Country:      a.Country,
		}
	}
	return o
}

func (s *OrderService) All(ctx context.Context) ([]models.OrderRow, error) {
	return s.orders.All(ctx)
}

func (s *OrderService) ByEmail(ctx context.Context, email string) ([]models.OrderRow, error) {
	return s.orders.ByEmail(ctx, email)
}

func (s *OrderService) ByID(ctx context.Context, id int64) ([]models.OrderRow, error) {
	return s.orders.ByID(ctx, id)
}

// Update applies the present patch fields and returns the re-read order.
func (s *OrderService) Update(ctx context.Context, id int64, p requests.OrderPatch) ([]models.OrderRow, error) {
	if err := s.orders.Update(ctx, id, p.Columns()); err != nil {
		return nil, err
	}
	rows, err := s.orders.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.events.Dispatch(ctx, event.Event{
		Name:    event.OrderUpdated,
		Key:     fmt.Sprintf("order-updated-%d", id),
		Payload: rows,
	})
	return rows, nil
}

// Delete removes the order with its items and address.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Dispatch(ctx, event.Event{
		Name:    event.OrderDeleted,
		Key:     fmt.Sprintf("order-deleted-%d", id),
		Payload: map[string]int64{"id": id},
	})
	return nil
}
