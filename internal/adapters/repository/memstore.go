package repository

import (
	"context"
	"sync"
	"time"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/pkg/metrics"
)

// Default store configuration constants.
const defaultSubscriberBuffer = 8

// MemStore is the in-memory Store implementation. A single RWMutex guards
// the snapshot; commits deep-copy on the way in and loads deep-copy on the
// way out, so callers can never alias the stored value.
type MemStore struct {
	mu               sync.RWMutex
	state            model.State
	subscribers      map[int]chan model.State
	nextSubscriberID int
	subscriberBuffer int
	closed           bool
}

// NewMemStore creates a new in-memory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		subscribers:      make(map[int]chan model.State),
		subscriberBuffer: defaultSubscriberBuffer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns a deep copy of the current state.
func (s *MemStore) Load(ctx context.Context) model.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Commit replaces the stored state and notifies subscribers. Subscribers
// whose channel is full miss this value; they always see the latest commit
// eventually because the channel is drained before the next notification
// fits.
func (s *MemStore) Commit(ctx context.Context, state model.State) error {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.state = state.Clone()
	for _, sub := range s.subscribers {
		select {
		case sub <- s.state.Clone():
		default:
			metrics.RecordSubscriberDrop()
		}
	}

	metrics.RecordStoreCommit(float64(time.Since(start).Milliseconds()))
	metrics.UpdateScheduleItemsTotal(len(s.state.Schedule.Items))
	metrics.UpdateTalentTotal(len(s.state.Talent))
	return nil
}

// Subscribe returns a channel receiving every committed state until ctx is
// done or the store is closed.
func (s *MemStore) Subscribe(ctx context.Context) <-chan model.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan model.State, s.subscriberBuffer)
	if s.closed {
		close(ch)
		return ch
	}

	id := s.nextSubscriberID
	s.nextSubscriberID++
	s.subscribers[id] = ch

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}()

	return ch
}

// Close shuts the store down and closes all subscriber channels.
func (s *MemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	for id, sub := range s.subscribers {
		delete(s.subscribers, id)
		close(sub)
	}
	return nil
}
