package reports

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/auth"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/internal/training/records"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reports_test

type aggregator interface {
	Summary(ctx context.Context, userID string) (*Summary, error)
	Progress(ctx context.Context, userID string, period Period) (*Progress, error)
	PersonalRecords(ctx context.Context, userID string) ([]records.PersonalRecord, error)
}

type Handler struct {
	aggregator aggregator
}

func NewHandler(aggregator aggregator) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/reports/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("report-summary")
	router.HandleFunc("/api/reports/progress", handler.HandleProgress).Methods("GET", "OPTIONS").Name("report-progress")
	router.HandleFunc("/api/reports/personal-records", handler.HandlePersonalRecords).Methods("GET", "OPTIONS").Name("report-prs")
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.summary")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	summary, err := handler.aggregator.Summary(ctx, userID)
	if err != nil {
		apperr.WriteError(w, "summary report", err)
		return
	}

	pkg.WriteJSON(w, SummaryResponse{Summary: *summary}, http.StatusOK)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.progress")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	progress, err := handler.aggregator.Progress(ctx, userID, Period(r.URL.Query().Get("period")))
	if err != nil {
		apperr.WriteError(w, "progress report", err)
		return
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (handler *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.personalRecords")
	defer span.End()

	userID, ok := auth.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	prs, err := handler.aggregator.PersonalRecords(ctx, userID)
	if err != nil {
		apperr.WriteError(w, "personal records report", err)
		return
	}

	pkg.WriteJSON(w, PersonalRecordsResponse{PersonalRecords: prs}, http.StatusOK)
}
