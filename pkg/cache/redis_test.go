package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/pkg/cache"
)

func TestDisabledStoreIsNoop(t *testing.T) {
	ctx := context.Background()
	for _, s := range []*cache.Store{nil, cache.New(nil)} {
		assert.False(t, s.Enabled())
		assert.NoError(t, s.Reserve(ctx, "idempotency:abc", time.Minute))
		assert.NoError(t, s.Reserve(ctx, "idempotency:abc", time.Minute))
		assert.NoError(t, s.Release(ctx, "idempotency:abc"))
		assert.NoError(t, s.Set(ctx, "k", 1, time.Minute))

		var v int
		assert.False(t, s.Get(ctx, "k", &v))
		assert.NoError(t, s.Close())
	}
}

func TestConnectWithoutAddressIsDisabled(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	s, err := cache.Connect(context.Background())
	assert.NoError(t, err)
	assert.False(t, s.Enabled())
}
