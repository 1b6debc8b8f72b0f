package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/metrics"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/internal/training/plans"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=schedule_test

type workoutsRepo interface {
	Add(ctx context.Context, w ScheduledWorkout) (*ScheduledWorkout, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*ScheduledWorkout, error)
	List(ctx context.Context, userID string, params ListParams) ([]ScheduledWorkout, error)
	Modify(ctx context.Context, userID string, id uuid.UUID, apply func(w *ScheduledWorkout) error) (*ScheduledWorkout, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type planStore interface {
	GetPlanIfOwned(ctx context.Context, userID string, id uuid.UUID) (*plans.Plan, error)
}

// Scheduler owns the scheduled workout lifecycle. Status transitions are unconstrained;
// only the move to completed has a side effect (stamping completed_at).
type Scheduler struct {
	repo           workoutsRepo
	plans          planStore
	metricsManager *metrics.Manager
	NowFunc        func() time.Time
}

func NewScheduler(repo workoutsRepo, plans planStore, metricsManager *metrics.Manager) *Scheduler {
	return &Scheduler{
		repo:           repo,
		plans:          plans,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func (s *Scheduler) Create(ctx context.Context, userID string, params CreateParams) (_ *ScheduledWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, apperr.Validation("title is required")
	}
	if params.ScheduledAt == nil || params.ScheduledAt.IsZero() {
		return nil, apperr.Validation("scheduled_at is required")
	}
	if params.DurationMinutes != nil && *params.DurationMinutes < 0 {
		return nil, apperr.Validation("duration_minutes must not be negative")
	}

	if params.WorkoutPlanID != nil {
		if _, err := s.plans.GetPlanIfOwned(ctx, userID, *params.WorkoutPlanID); err != nil {
			return nil, err
		}
	}

	now := s.NowFunc()
	return s.repo.Add(ctx, ScheduledWorkout{
		ID:              uuid.New(),
		UserID:          userID,
		WorkoutPlanID:   params.WorkoutPlanID,
		Title:           title,
		Notes:           params.Notes,
		ScheduledAt:     *params.ScheduledAt,
		DurationMinutes: params.DurationMinutes,
		Status:          StatusPlanned,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

// List returns the user's workouts ordered by scheduled time. Without a status filter
// only planned and in-progress workouts are returned.
func (s *Scheduler) List(ctx context.Context, userID string, filter ListFilter) (_ []ScheduledWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params := ListParams{
		Statuses: DefaultListStatuses,
		From:     filter.From,
		To:       filter.To,
	}
	if filter.Status != nil {
		if !filter.Status.Valid() {
			return nil, apperr.Validation("invalid status: %s", *filter.Status)
		}
		params.Statuses = []Status{*filter.Status}
	}

	return s.repo.List(ctx, userID, params)
}

func (s *Scheduler) Get(ctx context.Context, userID string, id uuid.UUID) (*ScheduledWorkout, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *Scheduler) Update(ctx context.Context, userID string, id uuid.UUID, patch Patch) (_ *ScheduledWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id.String()))

	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	becameCompleted := false
	updated, err := s.repo.Modify(ctx, userID, id, func(w *ScheduledWorkout) error {
		now := s.NowFunc()
		becameCompleted = applyPatch(w, patch, now)
		w.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	if becameCompleted {
		log.Debugf("scheduled workout %s completed by %s", id, userID)
		if s.metricsManager != nil {
			s.metricsManager.CounterWorkoutsCompleted.Inc()
		}
	}

	return updated, nil
}

func (s *Scheduler) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func validatePatch(patch Patch) error {
	if patch.Title.HasValue() && strings.TrimSpace(patch.Title.Value) == "" {
		return apperr.Validation("title must not be empty")
	}
	if patch.ScheduledAt.HasValue() && patch.ScheduledAt.Value.IsZero() {
		return apperr.Validation("scheduled_at must not be empty")
	}
	if patch.DurationMinutes.HasValue() && patch.DurationMinutes.Value < 0 {
		return apperr.Validation("duration_minutes must not be negative")
	}
	if patch.Status.HasValue() && !patch.Status.Value.Valid() {
		return apperr.Validation("invalid status: %s", patch.Status.Value)
	}
	return nil
}

// applyPatch changes w in place and reports whether the patch set the status to completed.
func applyPatch(w *ScheduledWorkout, patch Patch, now time.Time) bool {
	if patch.Title.HasValue() {
		w.Title = strings.TrimSpace(patch.Title.Value)
	}
	if patch.Notes.Set {
		w.Notes = patch.Notes.Ptr()
	}
	if patch.ScheduledAt.HasValue() {
		w.ScheduledAt = patch.ScheduledAt.Value
	}
	if patch.DurationMinutes.HasValue() {
		w.DurationMinutes = patch.DurationMinutes.Ptr()
	}

	if !patch.Status.HasValue() {
		return false
	}
	w.Status = patch.Status.Value
	if w.Status == StatusCompleted {
		w.CompletedAt = &now
		return true
	}
	return false
}
