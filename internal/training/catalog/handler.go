package catalog

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type exerciseCatalog interface {
	GetExercise(ctx context.Context, id uuid.UUID) (*Exercise, error)
	ListExercises(ctx context.Context, category string) ([]Exercise, error)
}

type Handler struct {
	catalog exerciseCatalog
}

func NewHandler(catalog exerciseCatalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/api/exercises/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	exercises, err := handler.catalog.ListExercises(ctx, r.URL.Query().Get("category"))
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	exercise, err := handler.catalog.GetExercise(ctx, id)
	if err != nil {
		apperr.WriteError(w, "get exercise", err)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}
