package setlog

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/auth"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=setlog_test

type setLogger interface {
	LogSet(ctx context.Context, userID string, params LogSetParams) (*LogSetResponse, error)
	ListForScheduledWorkout(ctx context.Context, userID string, workoutID uuid.UUID) ([]SetLog, error)
}

type Handler struct {
	logger setLogger
}

func NewHandler(logger setLogger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// SetupRoutes registers the read routes. The write route is registered separately by
// SetupLogRoute so the caller can put it behind a rate limiter.
func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/logs/scheduled/{scheduledId}", handler.HandleList).Methods("GET", "OPTIONS").Name("list-logs")
}

func (handler *Handler) SetupLogRoute(router *mux.Router) {
	router.HandleFunc("/api/logs", handler.HandleLogSet).Methods("POST", "OPTIONS").Name("log-set")
}

func (handler *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.setlog.log")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var params LogSetParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("log set, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := handler.logger.LogSet(ctx, userID, params)
	if err != nil {
		apperr.WriteError(w, "log set", err)
		return
	}

	pkg.WriteJSON(w, resp, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.setlog.list")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutID, err := uuid.Parse(mux.Vars(r)["scheduledId"])
	if err != nil {
		http.Error(w, "invalid scheduled workout id", http.StatusBadRequest)
		return
	}

	logs, err := handler.logger.ListForScheduledWorkout(ctx, userID, workoutID)
	if err != nil {
		apperr.WriteError(w, "list set logs", err)
		return
	}

	pkg.WriteJSON(w, ListResponse{Logs: logs}, http.StatusOK)
}
