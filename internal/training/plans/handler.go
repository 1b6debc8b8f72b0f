package plans

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/auth"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

const statusFavorite = "favorite"

type plansService interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Plan, error)
	GetPlanIfOwned(ctx context.Context, userID string, id uuid.UUID) (*Plan, error)
	List(ctx context.Context, userID string, favoritesOnly bool) ([]Plan, error)
	Update(ctx context.Context, userID string, id uuid.UUID, params UpdateParams) (*Plan, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type DeletePlanResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	service plansService
}

func NewHandler(service plansService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/workouts", handler.HandleCreate).Methods("POST", "OPTIONS").Name("create-plan")
	router.HandleFunc("/api/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	router.HandleFunc("/api/workouts/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	router.HandleFunc("/api/workouts/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-plan")
	router.HandleFunc("/api/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.create")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var params CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("create plan, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.Create(ctx, userID, params)
	if err != nil {
		apperr.WriteError(w, "create plan", err)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	// status=favorite narrows the list, any other status lists everything
	favoritesOnly := r.URL.Query().Get("status") == statusFavorite
	span.SetAttributes(attribute.Bool("favorites_only", favoritesOnly))

	plans, err := handler.service.List(ctx, userID, favoritesOnly)
	if err != nil {
		apperr.WriteError(w, "list plans", err)
		return
	}

	pkg.WriteJSON(w, plans, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	userID, id, ok := userAndPlanID(w, r)
	if !ok {
		return
	}

	plan, err := handler.service.GetPlanIfOwned(ctx, userID, id)
	if err != nil {
		apperr.WriteError(w, "get plan", err)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	userID, id, ok := userAndPlanID(w, r)
	if !ok {
		return
	}

	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("update plan, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.Update(ctx, userID, id, params)
	if err != nil {
		apperr.WriteError(w, "update plan", err)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	userID, id, ok := userAndPlanID(w, r)
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, userID, id); err != nil {
		apperr.WriteError(w, "delete plan", err)
		return
	}

	pkg.WriteJSON(w, DeletePlanResponse{DeletedID: id}, http.StatusOK)
}

func userAndPlanID(w http.ResponseWriter, r *http.Request) (string, uuid.UUID, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return "", uuid.Nil, false
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout plan id", http.StatusBadRequest)
		return "", uuid.Nil, false
	}
	return userID, id, true
}
