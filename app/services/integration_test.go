//go:build integration

package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/services"
	_ "github.com/shashiranjanraj/storefront/database/migrations"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/migration"
)

// postgresDB starts a throwaway PostgreSQL and returns a migrated handle.
func postgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("storefront"),
		tcpostgres.WithUsername("storefront"),
		tcpostgres.WithPassword("storefront"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(ctx, postgres.Open(dsn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, migration.New(db, nil).Run())
	return db
}

func TestPostgresOrderFlow(t *testing.T) {
	ctx := context.Background()
	db := postgresDB(t)
	ids := stocked(t, db, 5, 1)
	svc := services.NewOrderService(db, nil, nil)

	order, err := svc.Place(ctx, orderInput(line(ids[0], 2, 10)), "")
	require.NoError(t, err)
	assert.Equal(t, 3, stockOf(t, db, ids[0]))

	_, err = svc.Place(ctx, orderInput(line(ids[0], 1, 10), line(ids[1], 2, 10)), "")
	assert.True(t, apperr.Is(err, apperr.CodeInsufficientStock))
	assert.Equal(t, 3, stockOf(t, db, ids[0]))

	rows, err := svc.ByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Main", rows[0].AddressLine1)

	require.NoError(t, svc.Delete(ctx, order.ID))
	assert.Zero(t, count(t, db, &models.Order{}))
}

func TestPostgresConcurrentOrdersCannotOversell(t *testing.T) {
	ctx := context.Background()
	db := postgresDB(t)
	ids := stocked(t, db, 3)
	svc := services.NewOrderService(db, nil, nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	placed := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Place(ctx, orderInput(line(ids[0], 1, 10)), ""); err == nil {
				mu.Lock()
				placed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, placed)
	assert.Equal(t, 0, stockOf(t, db, ids[0]))
}
