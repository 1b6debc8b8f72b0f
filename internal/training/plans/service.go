package plans

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plans_test

type plansRepo interface {
	Add(ctx context.Context, plan Plan) (*Plan, error)
	GetIfOwned(ctx context.Context, userID string, id uuid.UUID) (*Plan, error)
	List(ctx context.Context, userID string, favoritesOnly bool) ([]Plan, error)
	Update(ctx context.Context, plan *Plan, replaceExercises bool) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type Service struct {
	repo    plansRepo
	NowFunc func() time.Time
}

func NewService(repo plansRepo) *Service {
	return &Service{
		repo:    repo,
		NowFunc: time.Now,
	}
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	exercises, err := buildExercises(params.Exercises)
	if err != nil {
		return nil, err
	}

	now := s.NowFunc()
	return s.repo.Add(ctx, Plan{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: params.Description,
		IsFavorite:  params.IsFavorite,
		Exercises:   exercises,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// GetPlanIfOwned is the lookup other components use to validate plan references.
func (s *Service) GetPlanIfOwned(ctx context.Context, userID string, id uuid.UUID) (*Plan, error) {
	return s.repo.GetIfOwned(ctx, userID, id)
}

// List returns the user's plans, newest first. With favoritesOnly set, plans not marked
// as favorite are left out.
func (s *Service) List(ctx context.Context, userID string, favoritesOnly bool) ([]Plan, error) {
	return s.repo.List(ctx, userID, favoritesOnly)
}

func (s *Service) Update(ctx context.Context, userID string, id uuid.UUID, params UpdateParams) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan, err := s.repo.GetIfOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Name.HasValue() {
		name := strings.TrimSpace(params.Name.Value)
		if name == "" {
			return nil, apperr.Validation("name must not be empty")
		}
		plan.Name = name
	}
	if params.Description.Set {
		plan.Description = params.Description.Ptr()
	}
	if params.IsFavorite.HasValue() {
		plan.IsFavorite = params.IsFavorite.Value
	}

	replaceExercises := params.Exercises != nil
	if replaceExercises {
		exercises, err := buildExercises(*params.Exercises)
		if err != nil {
			return nil, err
		}
		plan.Exercises = exercises
	}
	plan.UpdatedAt = s.NowFunc()

	if err := s.repo.Update(ctx, plan, replaceExercises); err != nil {
		return nil, err
	}

	if replaceExercises {
		// reload for the joined exercise names
		return s.repo.GetIfOwned(ctx, userID, id)
	}
	return plan, nil
}

func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func buildExercises(params []PlanExerciseParams) ([]PlanExercise, error) {
	exercises := make([]PlanExercise, 0, len(params))
	for i, p := range params {
		if p.ExerciseID == uuid.Nil {
			return nil, apperr.Validation("exercise %d: exercise_id is required", i)
		}

		e := PlanExercise{
			ID:          uuid.New(),
			ExerciseID:  p.ExerciseID,
			SortOrder:   valueOr(p.SortOrder, i),
			Sets:        valueOr(p.Sets, defaultSets),
			Reps:        valueOr(p.Reps, defaultReps),
			Weight:      p.Weight,
			RestSeconds: valueOr(p.RestSeconds, defaultRestSeconds),
			Notes:       p.Notes,
		}
		if e.Sets < 0 || e.Reps < 0 || e.RestSeconds < 0 {
			return nil, apperr.Validation("exercise %d: sets, reps and rest_seconds must not be negative", i)
		}
		if e.Weight != nil && *e.Weight < 0 {
			return nil, apperr.Validation("exercise %d: weight must not be negative", i)
		}
		exercises = append(exercises, e)
	}
	return exercises, nil
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
