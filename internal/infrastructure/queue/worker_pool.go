package queue

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrPoolClosed = errors.New("worker pool is shut down")

type WorkerPool struct {
	JobChan chan Job
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	ctx     context.Context    //graceful shutdown için
	cancel  context.CancelFunc //graceful shutdown için
}

func NewWorkerPool(workerCount int, processor Processor, log *zap.Logger) *WorkerPool {
	if workerCount <= 0 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		JobChan: make(chan Job, 100),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:        i,
			JobChan:   pool.JobChan,
			Wg:        &pool.wg,
			Processor: processor,
			Log:       log,
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

// Enqueue hands a job to the workers, giving up when ctx ends first.
func (p *WorkerPool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.JobChan <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown lets workers drain queued jobs, then stops them.
func (p *WorkerPool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.JobChan)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
}
