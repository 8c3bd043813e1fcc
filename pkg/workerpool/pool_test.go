package workerpool_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/pkg/workerpool"
)

func TestSubmitRunsEveryTask(t *testing.T) {
	pool := workerpool.New(4, 100)

	var count atomic.Int64
	for i := 0; i < 100; i++ {
		require.NoError(t, pool.Submit(func() { count.Add(1) }))
	}
	pool.Shutdown()

	assert.EqualValues(t, 100, count.Load())
}

func TestSubmitFailsFastWhenQueueIsFull(t *testing.T) {
	pool := workerpool.New(1, 1)
	defer pool.Shutdown()

	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, pool.Submit(func() {
		close(started)
		<-release
	}))
	<-started

	require.NoError(t, pool.Submit(func() {}))
	assert.ErrorIs(t, pool.Submit(func() {}), workerpool.ErrPoolFull)
	close(release)
}

func TestSubmitAfterShutdown(t *testing.T) {
	pool := workerpool.New(2, 0)
	pool.Shutdown()
	pool.Shutdown()

	assert.ErrorIs(t, pool.Submit(func() {}), workerpool.ErrPoolClosed)
}

func TestPanickingTaskDoesNotKillWorker(t *testing.T) {
	pool := workerpool.New(1, 4)

	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, pool.Submit(func() { panic("boom") }))
	require.NoError(t, pool.Submit(wg.Done))
	wg.Wait()
	pool.Shutdown()
}
