package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/internal/testdb"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

func TestCartAddMergesQuantity(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	_, _, product := catalog(t, db)
	repo := repositories.NewCartRepository(db)

	_, err := repo.Add(ctx, "ada@example.com", product.ID, 2)
	require.NoError(t, err)
	item, err := repo.Add(ctx, "ada@example.com", product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	var rows []models.CartItem
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Quantity)

	lines, err := repo.ForUser(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, []models.CartLine{{ProductID: product.ID, Title: "Runner", Price: 10, Quantity: 5}}, lines)
}

func TestCartAddUnknownProduct(t *testing.T) {
	_, err := repositories.NewCartRepository(testdb.New(t)).Add(context.Background(), "ada@example.com", 5, 1)
	assert.True(t, apperr.Is(err, apperr.CodeProductNotFound))
}

func TestCartMutationsOnMissingRows(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	_, _, product := catalog(t, db)
	repo := repositories.NewCartRepository(db)

	assert.Equal(t, apperr.NotFound, apperr.KindOf(repo.SetQuantity(ctx, "x@example.com", product.ID, 2)))
	assert.Equal(t, apperr.NotFound, apperr.KindOf(repo.Remove(ctx, "x@example.com", product.ID)))
	assert.Equal(t, apperr.NotFound, apperr.KindOf(repo.Clear(ctx, "x@example.com")))
	_, err := repo.ForUser(ctx, "x@example.com")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = repo.Add(ctx, "x@example.com", product.ID, 1)
	require.NoError(t, err)
	require.NoError(t, repo.SetQuantity(ctx, "x@example.com", product.ID, 4))
	require.NoError(t, repo.Clear(ctx, "x@example.com"))
}

func TestPaymentMethodsEmptyIsOK(t *testing.T) {
	methods, err := repositories.NewPaymentRepository(testdb.New(t)).Methods(context.Background())
	require.NoError(t, err)
	assert.Empty(t, methods)
	assert.NotNil(t, methods)
}

func TestPaymentMethodCRUD(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewPaymentRepository(testdb.New(t))

	m, err := repo.CreateMethod(ctx, requests.PaymentMethod{MethodName: "Card"})
	require.NoError(t, err)

	m, err = repo.UpdateMethod(ctx, m.ID, requests.PaymentMethod{MethodName: "Debit Card"})
	require.NoError(t, err)
	assert.Equal(t, "Debit Card", m.MethodName)

	_, err = repo.UpdateMethod(ctx, 404, requests.PaymentMethod{MethodName: "x"})
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	require.NoError(t, repo.DeleteMethod(ctx, m.ID))
	assert.Equal(t, apperr.NotFound, apperr.KindOf(repo.DeleteMethod(ctx, m.ID)))
}

func TestPaymentRequiresOrderAndMethod(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repositories.NewPaymentRepository(db)
	m, err := repo.CreateMethod(ctx, requests.PaymentMethod{MethodName: "Card"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, requests.Payment{OrderID: 1, PaymentMethodID: requests.Int(m.ID), Amount: 10})
	assert.True(t, apperr.Is(err, apperr.CodeOrderNotFound))

	order := models.Order{UserEmail: "a@b.co", Status: "pending", TotalPrice: 10, PaymentMethodID: m.ID}
	require.NoError(t, db.Create(&order).Error)

	_, err = repo.Create(ctx, requests.Payment{OrderID: requests.Int(order.ID), PaymentMethodID: 99, Amount: 10})
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	p, err := repo.Create(ctx, requests.Payment{OrderID: requests.Int(order.ID), PaymentMethodID: requests.Int(m.ID), Amount: 10})
	require.NoError(t, err)

	amount := requests.Float(12)
	p, err = repo.Update(ctx, p.ID, requests.PaymentPatch{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 12.0, p.Amount)

	payments, err := repo.ForOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestUserEmailUnique(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewUserRepository(testdb.New(t))

	u := &models.User{Name: "Ada", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, u))
	assert.Equal(t, "user", u.Role)

	err := repo.Create(ctx, &models.User{Name: "Ada 2", Email: "ada@example.com", Password: "hash"})
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Email is already registered", e.Message)

	users, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
