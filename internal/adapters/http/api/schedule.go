// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// ScheduleDependencies defines the interface for schedule read operations.
type ScheduleDependencies interface {
	ScheduleSnapshot(ctx context.Context) model.Schedule
	ActiveItem(ctx context.Context) *model.ScheduleItem
}

// ScheduleHandler handles schedule read requests.
type ScheduleHandler struct {
	deps ScheduleDependencies
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(deps ScheduleDependencies) *ScheduleHandler {
	return &ScheduleHandler{deps: deps}
}

// HandleGetSchedule handles GET /schedule requests.
func (h *ScheduleHandler) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.ScheduleSnapshot(r.Context()))
}

// HandleGetActive handles GET /schedule/active requests. The active item is
// the active run or the earliest incomplete interstitial before it.
func (h *ScheduleHandler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	item := h.deps.ActiveItem(r.Context())
	if item == nil {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
