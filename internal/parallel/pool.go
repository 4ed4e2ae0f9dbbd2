// Package parallel runs rasterisation work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool is a fixed set of goroutines, each with its own task queue.
// An idle worker steals from the other queues before blocking on its own,
// which keeps rows of uneven cost balanced.
//
// WorkerPool is safe for concurrent use. Tasks must not call ExecuteAll
// on the pool running them.
type WorkerPool struct {
	queues []chan func()
	done   chan struct{}
	wg     sync.WaitGroup

	// mu is held for reading by every ExecuteAll in flight and for writing
	// by Close, so the workers never stop while tasks are queued.
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	depth := max(workers*4, 8)

	p := &WorkerPool{
		queues: make([]chan func(), workers),
		done:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}

	p.wg.Add(workers)
	for i := range workers {
		go p.work(i)
	}
	return p
}

func (p *WorkerPool) work(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case fn := <-own:
			fn()
			continue
		case <-p.done:
			return
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case fn := <-own:
			fn()
		case <-p.done:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.queues {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// Workers returns the number of workers in the pool.
// A nil pool has one worker: the caller.
func (p *WorkerPool) Workers() int {
	if p == nil {
		return 1
	}
	return len(p.queues)
}

// ExecuteAll runs every task and returns when all have finished. Tasks
// are dealt round-robin to the worker queues. On a nil or closed pool the
// tasks run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if p == nil {
		runInline(tasks)
		return
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		runInline(tasks)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, fn := range tasks {
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		p.queues[i%len(p.queues)] <- wrapped
	}
	wg.Wait()
}

func runInline(tasks []func()) {
	for _, fn := range tasks {
		fn()
	}
}

// Close waits for every ExecuteAll in flight to finish, then stops the
// workers. Later ExecuteAll calls run inline. Close is safe to call
// multiple times.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}
