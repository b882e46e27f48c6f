// Package worker runs queued schedule imports.
//
// Exactly one runner consumes the import queue, which keeps at most one
// import in flight at a time. The merge pipeline relies on that: it reads a
// store snapshot, computes, and commits, with no internal locking.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/SumOfBesties/besties-layout/internal/adapters/mq/queue"
	"github.com/SumOfBesties/besties-layout/pkg/logger"
	"github.com/SumOfBesties/besties-layout/pkg/metrics"
)

// Importer executes one schedule import end to end.
type Importer interface {
	RunImport(ctx context.Context, req queue.ImportRequest) error
}

// Runner consumes the import queue until stopped.
type Runner struct {
	queue    queue.Queue
	importer Importer
	name     string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewRunner creates a new import runner with configuration options.
func NewRunner(q queue.Queue, importer Importer, opts ...Option) *Runner {
	r := &Runner{
		queue:    q,
		importer: importer,
		name:     "import-runner",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Get().Named(r.name)
	}
	return r
}

// Run starts the runner loop. It returns when ctx is canceled, Shutdown is
// called, or the queue closes.
func (r *Runner) Run(ctx context.Context) {
	defer close(r.done)

	requests := r.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.shutdown:
			return
		case req, ok := <-requests:
			if !ok {
				return
			}
			r.process(ctx, req)
		}
	}
}

// Shutdown stops the runner and waits for the in-flight import to finish.
func (r *Runner) Shutdown(ctx context.Context) error {
	close(r.shutdown)
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		r.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func (r *Runner) process(ctx context.Context, req queue.ImportRequest) {
	start := time.Now()
	metrics.UpdateWorkerActive(1)
	defer func() {
		metrics.UpdateWorkerActive(0)
		metrics.RecordWorkerLatency(float64(time.Since(start).Milliseconds()))
	}()

	if err := r.importer.RunImport(ctx, req); err != nil {
		metrics.RecordWorkerError()
		r.logger.Error(ctx, "schedule import failed",
			logger.String("slug", req.Slug),
			logger.Error(err),
		)
	}
}
