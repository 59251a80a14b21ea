package pool

import (
	"sync"
	"sync/atomic"
)

// Pool runs submitted funcs on a fixed number of goroutines.
type Pool struct {
	jobs    chan func()
	wg      sync.WaitGroup
	closed  atomic.Bool
	closeMu sync.RWMutex
}

func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs: make(chan func(), n*64),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for f := range p.jobs {
				if f != nil {
					f()
				}
			}
		}()
	}
	return p
}

// TrySubmit enqueues f without blocking. It reports false when the queue is
// full or the pool is closed.
func (p *Pool) TrySubmit(f func()) bool {
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if p.closed.Load() {
		return false
	}
	select {
	case p.jobs <- f:
		return true
	default:
		return false
	}
}

// Close stops accepting work and waits for queued jobs to finish.
func (p *Pool) Close() {
	p.closeMu.Lock()
	if p.closed.Swap(true) {
		p.closeMu.Unlock()
		return
	}
	close(p.jobs)
	p.closeMu.Unlock()
	p.wg.Wait()
}
