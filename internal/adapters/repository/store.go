// Package repository defines the replicated state store interface and errors.
package repository

import (
	"context"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// Store provides transactional read/write access to the bundle state.
//
// Load returns a snapshot; Commit replaces the whole value atomically and
// fans the new value out to subscribers. The merge pipeline is a pure
// function of (loaded snapshot, incoming payload), so callers must serialize
// imports themselves; the store does not detect conflicting commits.
type Store interface {
	// Load returns a deep copy of the current state.
	Load(ctx context.Context) model.State

	// Commit replaces the stored state and notifies subscribers.
	Commit(ctx context.Context, state model.State) error

	// Subscribe returns a channel receiving every committed state until ctx
	// is done. Slow subscribers miss intermediate values rather than block
	// the committer.
	Subscribe(ctx context.Context) <-chan model.State
}
