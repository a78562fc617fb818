// Package parallel provides a worker pool for data-parallel pipeline
// work: independent per-row fragment evaluation and per-chunk vertex
// transformation. The pipeline stages are pure functions, so the only
// discipline the pool enforces is that one index range is handled by
// exactly one worker.
package parallel

import (
	"runtime"
	"sync"
)

// Pool is a fixed set of goroutines executing submitted closures.
//
// Thread safety: Pool is safe for concurrent use. For must not be called
// from inside a task running on the same pool.
type Pool struct {
	workers int
	tasks   chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	closeOnce sync.Once
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		// A few pending tasks per worker hides submission latency.
		tasks: make(chan func(), workers*4),
		done:  make(chan struct{}),
	}

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.tasks:
			task()
		case <-p.done:
			// Drain remaining tasks before exiting.
			for {
				select {
				case task := <-p.tasks:
					task()
				default:
					return
				}
			}
		}
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// For calls fn(i) for every i in [start, end), splitting the range into
// chunks across the workers, and blocks until all calls complete. With a
// single worker the range runs inline on the caller.
//
// fn must be safe to call concurrently for distinct indices.
func (p *Pool) For(start, end int, fn func(i int)) {
	n := end - start
	if n <= 0 {
		return
	}
	// Small ranges are not worth the submission overhead.
	if p.workers == 1 || n < 4 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + p.workers - 1) / p.workers
	var wg sync.WaitGroup
	for lo := start; lo < end; lo += chunk {
		hi := min(lo+chunk, end)
		wg.Add(1)
		job := func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}
		select {
		case p.tasks <- job:
		default:
			// Queue full: run on the caller instead of blocking.
			job()
		}
	}
	wg.Wait()
}

// Close stops the workers after the queue drains. Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
}
