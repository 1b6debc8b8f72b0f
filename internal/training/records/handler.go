package records

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/auth"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=records_test

type rebuilder interface {
	Rebuild(ctx context.Context, userID string) (int, error)
}

type RebuildResponse struct {
	Updated int `json:"updated"`
}

type Handler struct {
	rebuilder rebuilder
}

func NewHandler(rebuilder rebuilder) *Handler {
	return &Handler{
		rebuilder: rebuilder,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/records/rebuild", handler.HandleRebuild).Methods("POST", "OPTIONS").Name("rebuild-records")
}

func (handler *Handler) HandleRebuild(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.rebuild")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	updated, err := handler.rebuilder.Rebuild(ctx, userID)
	if err != nil {
		apperr.WriteError(w, "rebuild personal records", err)
		return
	}

	pkg.WriteJSON(w, RebuildResponse{Updated: updated}, http.StatusOK)
}
