// Package worker runs queued schedule imports.
package worker

import "github.com/SumOfBesties/besties-layout/pkg/logger"

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithName sets the runner name used for logging.
func WithName(name string) Option {
	return func(r *Runner) {
		if name != "" {
			r.name = name
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}
