package worker

import (
	"context"
	"runtime"
	"sync"
)

// Task is an indexed unit of work executed by the pool.
type Task func(ctx context.Context) error

// Pool fans a fixed slice of tasks out to worker goroutines and joins them at
// a barrier. Results are addressed by task index, so completion order never
// affects the caller-visible ordering.
type Pool struct {
	workerCount int
}

// NewPool creates a pool with the given number of workers.
func NewPool(workerCount int) *Pool {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU() // When in doubt, use what the machine gives you
	}

	return &Pool{workerCount: workerCount}
}

// WorkerCount returns the number of workers in the pool.
func (p *Pool) WorkerCount() int {
	return p.workerCount
}

// Run executes every task and blocks until all have finished. The returned
// slice holds each task's error at the task's own index. Once the context is
// cancelled, tasks that have not started yet report the context error.
func (p *Pool) Run(ctx context.Context, tasks []Task) []error {
	errs := make([]error, len(tasks))
	if len(tasks) == 0 {
		return errs
	}

	workers := p.workerCount
	if workers > len(tasks) {
		workers = len(tasks)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-ctx.Done():
					errs[idx] = ctx.Err()
				default:
					errs[idx] = tasks[idx](ctx)
				}
			}
		}()
	}

	for i := range tasks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return errs
}

// FirstError returns the lowest-index non-nil error from a Run result, or
// nil when every task succeeded.
func FirstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
