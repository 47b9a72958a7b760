package workers

import (
	"context"
	"sync"
	"time"
)

// Workers runs a group of workers together.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of
// them returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() { worker.Run(ctx) })
	}
	wg.Wait()
}

// Ticker is a Worker that calls Fn every Interval until ctx is done.
type Ticker struct {
	Interval time.Duration
	Fn       func(ctx context.Context)
}

func (t Ticker) Run(ctx context.Context) {
	if t.Interval <= 0 || t.Fn == nil {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Fn(ctx)
		}
	}
}
