// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// ActiveRunDependencies defines the interface for run pointer operations.
type ActiveRunDependencies interface {
	SetActiveRunByID(ctx context.Context, id string) error
	SetActiveRunByIndex(ctx context.Context, index int) error
	SeekToNextRun(ctx context.Context) error
	SeekToPreviousRun(ctx context.Context) error
}

// ActiveRunHandler handles active run pointer requests.
type ActiveRunHandler struct {
	deps ActiveRunDependencies
}

// NewActiveRunHandler creates a new active run handler.
func NewActiveRunHandler(deps ActiveRunDependencies) *ActiveRunHandler {
	return &ActiveRunHandler{deps: deps}
}

// activeRunRequest selects a run either by local id or by schedule index.
type activeRunRequest struct {
	ID    string `json:"id"`
	Index *int   `json:"index"`
}

// HandlePutActiveRun handles PUT /active-run requests.
func (h *ActiveRunHandler) HandlePutActiveRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	var req activeRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	var err error
	switch {
	case req.ID != "":
		err = h.deps.SetActiveRunByID(r.Context(), req.ID)
	case req.Index != nil:
		err = h.deps.SetActiveRunByIndex(r.Context(), *req.Index)
	default:
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing id or index"))
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}

type seekRequest struct {
	Direction string `json:"direction"`
}

// HandlePostSeek handles POST /active-run/seek requests with a direction of
// "next" or "previous".
func (h *ActiveRunHandler) HandlePostSeek(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req seekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	var err error
	switch req.Direction {
	case "next":
		err = h.deps.SeekToNextRun(r.Context())
	case "previous":
		err = h.deps.SeekToPreviousRun(r.Context())
	default:
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("direction must be next or previous"))
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}
