// Package workerpool runs tasks on a fixed set of goroutines with a bounded
// queue. The server uses it to publish order events off the request path:
//
//	pool := workerpool.New(config.EventWorkers(), 0)
//	defer pool.Shutdown()
//
//	if err := pool.Submit(publish); errors.Is(err, workerpool.ErrPoolFull) {
//	    // drop or count the event
//	}
package workerpool

import (
	"errors"
	"sync"

	"github.com/shashiranjanraj/storefront/pkg/logger"
)

var (
	ErrPoolFull   = errors.New("workerpool: queue is full")
	ErrPoolClosed = errors.New("workerpool: pool is closed")
)

// Pool is a bounded goroutine pool. Submit never blocks.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// New starts size workers behind a queue of queueLen slots. A queueLen of 0
// means twice the worker count.
func New(size, queueLen int) *Pool {
	if size <= 0 {
		size = 1
	}
	if queueLen <= 0 {
		queueLen = size * 2
	}

	p := &Pool{tasks: make(chan func(), queueLen)}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

// Submit queues task, failing with ErrPoolFull when the queue has no room
// and ErrPoolClosed after Shutdown.
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrPoolFull
	}
}

// Shutdown stops accepting tasks and waits for the queue to drain. Safe to
// call more than once.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		run(task)
	}
}

func run(task func()) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("workerpool: task panicked", "panic", rec)
		}
	}()
	task()
}
