// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SumOfBesties/besties-layout/internal/app"
	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/internal/domain/schedule"
	"github.com/SumOfBesties/besties-layout/internal/domain/talent"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// RequestImport queues a schedule import. Returns false on backpressure.
	RequestImport(ctx context.Context, slug string, forceNew bool) bool

	// Read operations expose schedule and talent snapshots.
	ScheduleSnapshot(ctx context.Context) model.Schedule
	TalentSnapshot(ctx context.Context) []model.TalentItem
	ActiveItem(ctx context.Context) *model.ScheduleItem
	ItemAfter(ctx context.Context, id string, itemType model.ScheduleItemType) *model.ScheduleItem
	ItemBefore(ctx context.Context, id string, itemType model.ScheduleItemType) *model.ScheduleItem

	// Write operations mutate run pointers, schedule items and talent.
	SetActiveRunByID(ctx context.Context, id string) error
	SetActiveRunByIndex(ctx context.Context, index int) error
	SeekToNextRun(ctx context.Context) error
	SeekToPreviousRun(ctx context.Context) error
	SetInterstitialCompleted(ctx context.Context, id string, completed bool) error
	UpdateScheduleItem(ctx context.Context, item model.ScheduleItem) (model.ScheduleItem, error)
	UpdateTalentItems(ctx context.Context, updates []model.TalentItem) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	metricsHandler   *MetricsHandler
	importHandler    *ImportHandler
	scheduleHandler  *ScheduleHandler
	itemsHandler     *ItemsHandler
	talentHandler    *TalentHandler
	activeRunHandler *ActiveRunHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		metricsHandler:   NewMetricsHandler(),
		importHandler:    NewImportHandler(deps),
		scheduleHandler:  NewScheduleHandler(deps),
		itemsHandler:     NewItemsHandler(deps),
		talentHandler:    NewTalentHandler(deps),
		activeRunHandler: NewActiveRunHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/metrics", s.metricsHandler.HandleMetrics)
	mux.HandleFunc("/import", MetricsMiddleware(s.importHandler.HandlePostImport, "import"))
	mux.HandleFunc("/schedule", MetricsMiddleware(s.scheduleHandler.HandleGetSchedule, "schedule"))
	mux.HandleFunc("/schedule/active", MetricsMiddleware(s.scheduleHandler.HandleGetActive, "schedule_active"))
	mux.HandleFunc("/schedule/items/", MetricsMiddleware(s.itemsHandler.HandleItems, "schedule_items"))
	mux.HandleFunc("/talent", MetricsMiddleware(s.talentHandler.HandleTalent, "talent"))
	mux.HandleFunc("/active-run", MetricsMiddleware(s.activeRunHandler.HandlePutActiveRun, "active_run"))
	mux.HandleFunc("/active-run/seek", MetricsMiddleware(s.activeRunHandler.HandlePostSeek, "active_run_seek"))
}

type ackResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates service errors into HTTP responses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, app.ErrNotSpeedrun),
		errors.Is(err, app.ErrNotInterstitial),
		errors.Is(err, app.ErrNoNextRun),
		errors.Is(err, app.ErrNoPreviousRun),
		errors.Is(err, schedule.ErrMissingItemID),
		errors.Is(err, schedule.ErrNoPlayers),
		errors.Is(err, talent.ErrMissingID):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
