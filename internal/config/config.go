// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New(); Load() layers file and env overrides on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// EventSlug names the schedule to import, e.g. "bestofest2024".
	EventSlug string `koanf:"event_slug"`

	// ImportOnStart queues one import for EventSlug at startup.
	ImportOnStart bool `koanf:"import_on_start"`

	// SchedulePath points the file-backed source at a raw payload on disk.
	SchedulePath string `koanf:"schedule_path"`

	// ImportQueueSize bounds the in-memory import request queue.
	ImportQueueSize int `koanf:"import_queue_size"`

	// CategoryConcurrency bounds concurrent category lookups per import.
	CategoryConcurrency int `koanf:"category_concurrency"`

	// SubscriberBuffer sizes each state change subscription channel.
	SubscriberBuffer int `koanf:"subscriber_buffer"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		ImportQueueSize:     16,
		CategoryConcurrency: 4,
		SubscriberBuffer:    8,
	}
}
