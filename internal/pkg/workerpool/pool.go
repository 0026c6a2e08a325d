package workerpool

import (
	"context"
	"sync"
	"time"
)

type Task struct {
	Key string
	Run func(ctx context.Context) error
}

// Result reports one finished task. Key identifies the record so bulk
// callers can report which records failed without aborting siblings.
type Result struct {
	Key string
	Err error
}

type Pool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	rate    <-chan time.Time
	ticker  *time.Ticker
}

func New(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *Pool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	if rps <= 0 {
		return
	}
	t := time.NewTicker(time.Second / time.Duration(rps))
	p.mu.Lock()
	p.ticker = t
	p.rate = t.C
	p.mu.Unlock()
}

// Submit queues t for a worker. It reports false once ctx is cancelled, so a
// producer never blocks on a pool whose workers have already exited.
func (p *Pool) Submit(ctx context.Context, t Task) bool {
	if p == nil || t.Run == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case p.tasks <- t:
		return true
	}
}

func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	close(p.tasks)
}

// Run starts the workers and returns the result stream. The stream closes
// once Close has been called and every submitted task finished. Cancelling
// ctx stops workers between tasks; tasks already committed stay committed.
func (p *Pool) Run(ctx context.Context) <-chan Result {
	buf := p.workers * 1024
	if buf < 1 {
		buf = 1
	}
	out := make(chan Result, buf)
	if p == nil {
		close(out)
		return out
	}

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t.Run == nil {
						continue
					}
					p.mu.RLock()
					rate := p.rate
					p.mu.RUnlock()
					if rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-rate:
						}
					}
					err := t.Run(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Key: t.Key, Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
