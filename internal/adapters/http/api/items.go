// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// ItemDependencies defines the interface for schedule item operations.
type ItemDependencies interface {
	ItemAfter(ctx context.Context, id string, itemType model.ScheduleItemType) *model.ScheduleItem
	ItemBefore(ctx context.Context, id string, itemType model.ScheduleItemType) *model.ScheduleItem
	SetInterstitialCompleted(ctx context.Context, id string, completed bool) error
	UpdateScheduleItem(ctx context.Context, item model.ScheduleItem) (model.ScheduleItem, error)
}

// ItemsHandler handles per-item schedule requests.
type ItemsHandler struct {
	deps ItemDependencies
}

// NewItemsHandler creates a new schedule items handler.
func NewItemsHandler(deps ItemDependencies) *ItemsHandler {
	return &ItemsHandler{deps: deps}
}

// HandleItems routes /schedule/items/{id}[/next|/previous|/completed].
func (h *ItemsHandler) HandleItems(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/schedule/items/")
	id, action, _ := strings.Cut(path, "/")
	if id == "" || strings.Contains(action, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	switch action {
	case "next":
		h.handleAdjacent(w, r, id, h.deps.ItemAfter)
	case "previous":
		h.handleAdjacent(w, r, id, h.deps.ItemBefore)
	case "completed":
		h.handlePutCompleted(w, r, id)
	case "":
		h.handlePutItem(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

type adjacentLookup func(ctx context.Context, id string, itemType model.ScheduleItemType) *model.ScheduleItem

// handleAdjacent serves GET .../next and .../previous. The optional type
// query filters by item type, e.g. ?type=SPEEDRUN.
func (h *ItemsHandler) handleAdjacent(w http.ResponseWriter, r *http.Request, id string, lookup adjacentLookup) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	itemType := model.ScheduleItemType(r.URL.Query().Get("type"))
	item := lookup(r.Context(), id, itemType)
	if item == nil {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type completedRequest struct {
	Completed bool `json:"completed"`
}

// handlePutCompleted serves PUT .../completed for interstitials.
func (h *ItemsHandler) handlePutCompleted(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	var req completedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.deps.SetInterstitialCompleted(r.Context(), id, req.Completed); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}

// handlePutItem serves PUT /schedule/items/{id} and returns the normalized
// item as stored.
func (h *ItemsHandler) handlePutItem(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	var item model.ScheduleItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	item.ID = id
	updated, err := h.deps.UpdateScheduleItem(r.Context(), item)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
