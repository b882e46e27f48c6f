// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ImportDependencies defines the interface for import requests.
type ImportDependencies interface {
	RequestImport(ctx context.Context, slug string, forceNew bool) bool
}

// ImportHandler handles schedule import requests.
type ImportHandler struct {
	deps ImportDependencies
}

// NewImportHandler creates a new import handler.
func NewImportHandler(deps ImportDependencies) *ImportHandler {
	return &ImportHandler{deps: deps}
}

// importRequest mirrors the body of POST /import.
type importRequest struct {
	Slug     string `json:"slug"`
	ForceNew bool   `json:"forceNew"`
}

func (i importRequest) validate() error {
	if strings.TrimSpace(i.Slug) == "" {
		return errors.New("missing slug")
	}
	return nil
}

// HandlePostImport handles POST /import requests. The import itself runs on
// the background worker; a 202 only acknowledges the request was queued.
func (h *ImportHandler) HandlePostImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	if ok := h.deps.RequestImport(r.Context(), req.Slug, req.ForceNew); !ok {
		writeError(w, http.StatusTooManyRequests, "backpressure", ErrBackpressure)
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted"})
}
