// Package worker runs file processing tasks on a bounded pool of goroutines.
package worker

import (
	"context"
	"sync"
	"time"
)

// Processor turns one input file into one output file.
// pipeline.FileProcessor satisfies it.
type Processor interface {
	Process(ctx context.Context, input, output string) (path string, err error)
}

// Task is a single input/output file pair.
type Task struct {
	Input  string
	Output string
}

// Result is the outcome of one task.
type Result struct {
	Task    Task
	Path    string
	Err     error
	Elapsed time.Duration
}

// ProgressFunc is called after each task completes.
type ProgressFunc func(completed, total, failed int)

// Config configures the worker pool.
type Config struct {
	Workers    int
	Processor  Processor
	OnProgress ProgressFunc
}

// Pool processes independent files in parallel. Each task owns its buffers,
// so workers share nothing but the Processor.
type Pool struct {
	processor  Processor
	onProgress ProgressFunc
	workers    int
}

// New creates a pool. Workers below 1 are raised to 1.
func New(cfg Config) *Pool {
	return &Pool{
		workers:    max(cfg.Workers, 1),
		processor:  cfg.Processor,
		onProgress: cfg.OnProgress,
	}
}

// Run processes all tasks and blocks until every fed task has a result or the
// context is cancelled. Tasks not yet started at cancellation are reported
// with the context's error; tasks never fed to a worker produce no result.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	taskCh := make(chan Task)
	resultCh := make(chan Result, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.work(ctx, taskCh, resultCh)
		}()
	}

	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]Result, 0, len(tasks))
	failed := 0
	for r := range resultCh {
		results = append(results, r)
		if r.Err != nil {
			failed++
		}
		if p.onProgress != nil {
			p.onProgress(len(results), len(tasks), failed)
		}
	}
	return results
}

func (p *Pool) work(ctx context.Context, tasks <-chan Task, results chan<- Result) {
	for task := range tasks {
		if err := ctx.Err(); err != nil {
			results <- Result{Task: task, Err: err}
			continue
		}

		start := time.Now()
		path, err := p.processor.Process(ctx, task.Input, task.Output)
		results <- Result{
			Task:    task,
			Path:    path,
			Err:     err,
			Elapsed: time.Since(start),
		}
	}
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
