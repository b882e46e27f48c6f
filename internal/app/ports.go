package app

import (
	"context"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// Source fetches a raw schedule and talent payload for an event slug.
// Implementations live outside the core; every talent reference in the
// returned payload carries only an external id.
type Source interface {
	FetchScheduleAndTalent(ctx context.Context, slug string) (model.RawPayload, error)
}

// CategoryResolver looks up the streaming category and release year for a
// speedrun title. Implementations wrap external game databases; the pipeline
// tolerates per-title failures.
type CategoryResolver interface {
	Resolve(ctx context.Context, title, system string) (*model.TwitchCategory, string, error)
}
