// Package source provides schedule source adapters behind the app.Source
// port. The file source reads a raw payload from disk, which keeps upstream
// wire formats out of scope while exercising the full import pipeline.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// FileSource serves a raw schedule and talent payload from a JSON file. The
// file is re-read on every fetch so edits between imports are picked up.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the payload file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchScheduleAndTalent implements the source port.
func (f *FileSource) FetchScheduleAndTalent(ctx context.Context, slug string) (model.RawPayload, error) {
	if err := ctx.Err(); err != nil {
		return model.RawPayload{}, fmt.Errorf("fetch canceled: %w", err)
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return model.RawPayload{}, fmt.Errorf("%w: %v", ErrReadPayload, err)
	}

	var payload model.RawPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return model.RawPayload{}, fmt.Errorf("%w: %v", ErrDecodePayload, err)
	}
	if payload.Schedule.ID == "" {
		payload.Schedule.ID = slug
	}
	return payload, nil
}
