// Package app provides the core service that orchestrates schedule imports
// and run-pointer state on top of the domain merge functions.
package app

import (
	"context"
	"sync"

	"github.com/SumOfBesties/besties-layout/internal/adapters/mq/queue"
	"github.com/SumOfBesties/besties-layout/internal/adapters/mq/worker"
	"github.com/SumOfBesties/besties-layout/internal/adapters/repository"
	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/internal/domain/talent"
	"github.com/SumOfBesties/besties-layout/pkg/logger"
	"github.com/SumOfBesties/besties-layout/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultQueueCapacity       = 16
	defaultCategoryConcurrency = 4
)

// Service implements the API dependencies for the schedule system.
//
// All mutations flow through commit(): load snapshot, compute, refresh run
// pointers, commit. Imports additionally go through the single-consumer
// queue so only one is in flight at a time.
type Service struct {
	mu sync.Mutex

	store      repository.Store
	source     Source
	categories CategoryResolver
	queue      queue.Queue
	runner     *worker.Runner

	queueCapacity       int
	categoryConcurrency int

	started  bool
	runnerWg sync.WaitGroup

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the state store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSource sets the schedule source.
func WithSource(source Source) Option {
	return func(s *Service) {
		if source != nil {
			s.source = source
		}
	}
}

// WithCategoryResolver sets the streaming category resolver. Without one,
// schedules import without category data.
func WithCategoryResolver(resolver CategoryResolver) Option {
	return func(s *Service) {
		if resolver != nil {
			s.categories = resolver
		}
	}
}

// WithQueueCapacity bounds the import request queue.
func WithQueueCapacity(capacity int) Option {
	return func(s *Service) {
		if capacity > 0 {
			s.queueCapacity = capacity
		}
	}
}

// WithCategoryConcurrency bounds concurrent category lookups per import.
func WithCategoryConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.categoryConcurrency = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		queueCapacity:       defaultQueueCapacity,
		categoryConcurrency: defaultCategoryConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("schedule-service")
	}
	if s.store == nil {
		s.store = repository.NewMemStore()
	}

	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueCapacity))
	s.runner = worker.NewRunner(s.queue, s, worker.WithLogger(s.logger.Named("import")))

	s.runnerWg.Add(1)
	go func() {
		defer s.runnerWg.Done()
		s.runner.Run(ctx)
	}()

	s.started = true
	s.logger.Info(ctx, "schedule service started",
		logger.Int("queueCapacity", s.queueCapacity),
		logger.Bool("categoryLookups", s.categories != nil),
	)
	return nil
}

// Stop gracefully shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping schedule service...")

	if s.queue != nil {
		_ = s.queue.Close()
	}
	if s.runner != nil {
		_ = s.runner.Shutdown(ctx)
	}
	s.runnerWg.Wait()
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(ctx, "schedule service stopped")
}

// RequestImport queues a schedule import. Returns false on backpressure or
// when the service is not running.
func (s *Service) RequestImport(ctx context.Context, slug string, forceNew bool) bool {
	s.mu.Lock()
	q := s.queue
	started := s.started
	s.mu.Unlock()

	if !started || slug == "" {
		return false
	}
	metrics.RecordImportRequested()
	return q.Enqueue(ctx, queue.ImportRequest{Slug: slug, ForceNew: forceNew})
}

// ScheduleSnapshot returns a copy of the stored schedule.
func (s *Service) ScheduleSnapshot(ctx context.Context) model.Schedule {
	return s.store.Load(ctx).Schedule
}

// TalentSnapshot returns a copy of the stored talent roster.
func (s *Service) TalentSnapshot(ctx context.Context) []model.TalentItem {
	return s.store.Load(ctx).Talent
}

// TalentItemExists reports whether the roster contains the given local id.
func (s *Service) TalentItemExists(ctx context.Context, id string) bool {
	return talent.ItemExists(s.store.Load(ctx).Talent, id)
}

// Subscribe exposes the store's change feed.
func (s *Service) Subscribe(ctx context.Context) <-chan model.State {
	return s.store.Subscribe(ctx)
}

// Stats returns service statistics for monitoring.
func (s *Service) Stats(ctx context.Context) map[string]interface{} {
	state := s.store.Load(ctx)
	s.mu.Lock()
	started := s.started
	var queueLen int
	if s.queue != nil {
		queueLen = s.queue.Len(ctx)
	}
	s.mu.Unlock()

	return map[string]interface{}{
		"started":       started,
		"scheduleId":    state.Schedule.ID,
		"scheduleItems": len(state.Schedule.Items),
		"talentItems":   len(state.Talent),
		"activeRunId":   state.ActiveRunID,
		"nextRunId":     state.NextRunID,
		"queueLength":   queueLen,
	}
}
