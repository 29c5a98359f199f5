package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func()
)

// Pool runs submitted funcs on a fixed set of goroutines. A pool with a single
// worker runs everything inline on the caller's goroutine.
type Pool struct {
	wg      sync.WaitGroup
	workers int
	Do      WorkerFunc
	Wait    WaitFunc
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			workChan <- f
		}
		closeWork := sync.OnceFunc(func() { close(workChan) })
		pool.Wait = func() {
			closeWork()
			pool.wg.Wait()
		}
	}

	return pool
}

// Workers reports how many goroutines serve the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Rows splits [minY, maxY) into contiguous bands, one or more per worker,
// and calls fn for each band on the pool. It returns once every band is done.
// The pool cannot be reused afterwards.
func (p *Pool) Rows(minY, maxY int, fn func(y0, y1 int)) {
	n := maxY - minY
	if n <= 0 {
		p.Wait()
		return
	}

	bands := min(p.workers*4, n)
	step := (n + bands - 1) / bands
	for y := minY; y < maxY; y += step {
		y0, y1 := y, min(y+step, maxY)
		p.Do(func() { fn(y0, y1) })
	}
	p.Wait()
}
