// Package worker runs independent validation jobs on a bounded set of
// goroutines and returns their results in submission order.
package worker

import (
	"context"
	"runtime"
	"sync"
)

// Func processes one job.
type Func[T, R any] func(ctx context.Context, job T) R

// Batch validates a slice of jobs in parallel.
type Batch[T, R any] struct {
	fn      Func[T, R]
	workers int
}

// BatchResult holds per-job results indexed like the submitted jobs.
type BatchResult[R any] struct {
	Results []R

	// Done reports which jobs ran. A job is skipped once the context is done.
	Done []bool

	TotalJobs     int
	CompletedJobs int
}

// NewBatch creates a Batch using the given number of workers.
// A non-positive count uses one worker per CPU.
func NewBatch[T, R any](fn Func[T, R], workers int) *Batch[T, R] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Batch[T, R]{fn: fn, workers: workers}
}

// Workers returns the configured worker count.
func (b *Batch[T, R]) Workers() int {
	return b.workers
}

// Run processes all jobs and waits for them to finish.
func (b *Batch[T, R]) Run(ctx context.Context, jobs []T) *BatchResult[R] {
	res := &BatchResult[R]{
		Results:   make([]R, len(jobs)),
		Done:      make([]bool, len(jobs)),
		TotalJobs: len(jobs),
	}
	if len(jobs) == 0 {
		return res
	}

	// Small batches are not worth the goroutines.
	if len(jobs) <= 2 || b.workers == 1 {
		for i, job := range jobs {
			if ctx.Err() != nil {
				break
			}
			res.Results[i] = b.fn(ctx, job)
			res.Done[i] = true
			res.CompletedJobs++
		}
		return res
	}

	numWorkers := b.workers
	if numWorkers > len(jobs) {
		numWorkers = len(jobs)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				// Each index is owned by exactly one worker.
				res.Results[i] = b.fn(ctx, jobs[i])
				res.Done[i] = true
			}
		}()
	}

submit:
	for i := range jobs {
		select {
		case <-ctx.Done():
			break submit
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	for _, done := range res.Done {
		if done {
			res.CompletedJobs++
		}
	}
	return res
}
