// Package queue defines the contract for enqueuing and consuming schedule
// import requests.
//
// The queue exists to decouple the HTTP surface from the import pipeline and
// to let a single consumer serialize imports: the merge is a pure function of
// the stored snapshot and must never run against evolving state.
package queue

import (
	"context"
	"sync"

	"github.com/SumOfBesties/besties-layout/pkg/metrics"
)

// Default queue configuration constants.
const defaultCapacity = 16

// ImportRequest asks the pipeline to import the schedule for one event slug.
// ForceNew discards the existing schedule instead of merging into it.
type ImportRequest struct {
	Slug     string
	ForceNew bool
}

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a request to the queue.
	// Returns false if the queue is full or closed.
	Enqueue(ctx context.Context, req ImportRequest) bool

	// Dequeue returns a channel that receives requests as they become
	// available. The channel closes when the queue is closed.
	Dequeue(ctx context.Context) <-chan ImportRequest

	// Len returns the current number of queued requests.
	Len(ctx context.Context) int

	// Close shuts the queue down. After closing, no new requests can be
	// enqueued and the dequeue channel is closed once drained.
	Close() error
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	requests chan ImportRequest
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.requests = make(chan ImportRequest, q.capacity)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)
	metrics.UpdateQueueUtilization(0)

	return q
}

// Enqueue adds a request to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, req ImportRequest) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		return false
	}

	select {
	case q.requests <- req:
		metrics.RecordQueueEnqueue()
		q.updateGauges()
		return true
	case <-ctx.Done():
		metrics.RecordQueueEnqueueError()
		return false
	default:
		metrics.RecordQueueEnqueueError()
		return false
	}
}

// Dequeue returns a channel that receives requests as they become available.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan ImportRequest {
	out := make(chan ImportRequest)
	go func() {
		defer close(out)
		for req := range q.requests {
			select {
			case out <- req:
				metrics.RecordQueueDequeue()
				q.updateGauges()
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of queued requests.
func (q *InMemoryQueue) Len(ctx context.Context) int {
	return len(q.requests)
}

// Close shuts the queue down.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.requests)
	q.closed = true
	return nil
}

func (q *InMemoryQueue) updateGauges() {
	size := len(q.requests)
	metrics.UpdateQueueSize(size)
	metrics.UpdateQueueUtilization(float64(size) / float64(q.capacity))
}
