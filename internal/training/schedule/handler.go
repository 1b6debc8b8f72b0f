package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/auth"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=schedule_test

type scheduler interface {
	Create(ctx context.Context, userID string, params CreateParams) (*ScheduledWorkout, error)
	List(ctx context.Context, userID string, filter ListFilter) ([]ScheduledWorkout, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*ScheduledWorkout, error)
	Update(ctx context.Context, userID string, id uuid.UUID, patch Patch) (*ScheduledWorkout, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type DeleteWorkoutResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	scheduler scheduler
}

func NewHandler(scheduler scheduler) *Handler {
	return &Handler{
		scheduler: scheduler,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/schedule", handler.HandleCreate).Methods("POST", "OPTIONS").Name("create-scheduled")
	router.HandleFunc("/api/schedule", handler.HandleList).Methods("GET", "OPTIONS").Name("list-scheduled")
	router.HandleFunc("/api/schedule/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-scheduled")
	router.HandleFunc("/api/schedule/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-scheduled")
	router.HandleFunc("/api/schedule/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-scheduled")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.create")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var params CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("schedule workout, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	workout, err := handler.scheduler.Create(ctx, userID, params)
	if err != nil {
		apperr.WriteError(w, "schedule workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.list")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	filter, err := parseListFilter(r)
	if err != nil {
		apperr.WriteError(w, "list scheduled workouts", err)
		return
	}

	workouts, err := handler.scheduler.List(ctx, userID, filter)
	if err != nil {
		apperr.WriteError(w, "list scheduled workouts", err)
		return
	}

	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.get")
	defer span.End()

	userID, id, ok := userAndWorkoutID(w, r)
	if !ok {
		return
	}

	workout, err := handler.scheduler.Get(ctx, userID, id)
	if err != nil {
		apperr.WriteError(w, "get scheduled workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.update")
	defer span.End()

	userID, id, ok := userAndWorkoutID(w, r)
	if !ok {
		return
	}

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Tracef("update scheduled workout, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	workout, err := handler.scheduler.Update(ctx, userID, id, patch)
	if err != nil {
		apperr.WriteError(w, "update scheduled workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.delete")
	defer span.End()

	userID, id, ok := userAndWorkoutID(w, r)
	if !ok {
		return
	}

	if err := handler.scheduler.Delete(ctx, userID, id); err != nil {
		apperr.WriteError(w, "delete scheduled workout", err)
		return
	}

	pkg.WriteJSON(w, DeleteWorkoutResponse{DeletedID: id}, http.StatusOK)
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	var filter ListFilter
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		status := Status(raw)
		filter.Status = &status
	}

	var err error
	if filter.From, err = parseTimeParam(query.Get("from")); err != nil {
		return ListFilter{}, apperr.Validation("invalid from: %s", query.Get("from"))
	}
	if filter.To, err = parseTimeParam(query.Get("to")); err != nil {
		return ListFilter{}, apperr.Validation("invalid to: %s", query.Get("to"))
	}

	return filter, nil
}

// parseTimeParam accepts RFC 3339 timestamps and plain dates (UTC midnight).
func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func userAndWorkoutID(w http.ResponseWriter, r *http.Request) (string, uuid.UUID, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return "", uuid.Nil, false
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid scheduled workout id", http.StatusBadRequest)
		return "", uuid.Nil, false
	}
	return userID, id, true
}
