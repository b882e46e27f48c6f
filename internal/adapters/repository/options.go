package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithSubscriberBuffer sets the per-subscriber channel buffer size.
func WithSubscriberBuffer(size int) Option {
	return func(s *MemStore) {
		if size > 0 {
			s.subscriberBuffer = size
		}
	}
}
