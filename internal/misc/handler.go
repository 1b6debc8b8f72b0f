package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/madhavmurthyt/workout-tracker/internal/auth"
	"github.com/madhavmurthyt/workout-tracker/internal/middleware"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/metrics"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=misc_test

type sessionRevoker interface {
	Logout(ctx context.Context, token string) (bool, error)
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	sessions    sessionRevoker
	versionInfo string
	NowFunc     func() time.Time
}

func NewHandler(sessions sessionRevoker, versionInfo string) *Handler {
	return &Handler{
		sessions:    sessions,
		versionInfo: versionInfo,
		NowFunc:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	sessionSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	sessionSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("POST", "OPTIONS").Name("logout")

	// keep token guessing through /logout slow
	if rateLimiter != nil {
		sessionSubrouter.Use(middleware.RateLimit(rateLimiter, "logout", 15, metricsManager))
	}
}

func (handler *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, HealthResponse{
		Status:    "ok",
		Timestamp: handler.NowFunc().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := auth.BearerToken(r)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("[logout] => %s: %s", r.URL.Path, err)
		span.SetStatus(codes.Error, "logout failed")
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	userID, _ := auth.UserID(ctx)
	log.Debugf("logout for user [%s] success", userID)
	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
