// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// TalentDependencies defines the interface for talent roster operations.
type TalentDependencies interface {
	TalentSnapshot(ctx context.Context) []model.TalentItem
	UpdateTalentItems(ctx context.Context, updates []model.TalentItem) error
}

// TalentHandler handles talent roster requests.
type TalentHandler struct {
	deps TalentDependencies
}

// NewTalentHandler creates a new talent handler.
func NewTalentHandler(deps TalentDependencies) *TalentHandler {
	return &TalentHandler{deps: deps}
}

// HandleTalent routes GET and PUT /talent.
func (h *TalentHandler) HandleTalent(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.TalentSnapshot(r.Context()))
	case http.MethodPut:
		var updates []model.TalentItem
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if err := h.deps.UpdateTalentItems(r.Context(), updates); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
	default:
		http.NotFound(w, r)
	}
}
