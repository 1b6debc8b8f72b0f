package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/db"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, plan Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", plan.ID.String()))

	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO workout_plan (id, user_id, name, description, is_favorite, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			plan.ID, plan.UserID, plan.Name, plan.Description, plan.IsFavorite, plan.CreatedAt, plan.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}
		return insertExercises(ctx, tx, plan.ID, plan.Exercises)
	})
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// GetIfOwned returns the plan with its exercises, or NotFound when it is absent or belongs to someone else.
func (r *Repo) GetIfOwned(ctx context.Context, userID string, id uuid.UUID) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", id.String()))

	var plan Plan
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, name, description, is_favorite, created_at, updated_at
			FROM workout_plan
			WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(
		&plan.ID, &plan.UserID, &plan.Name, &plan.Description, &plan.IsFavorite, &plan.CreatedAt, &plan.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("workout plan")
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}

	exercisesByPlan, err := r.listExercises(ctx, []uuid.UUID{plan.ID})
	if err != nil {
		return nil, err
	}
	plan.Exercises = exercisesByPlan[plan.ID]
	if plan.Exercises == nil {
		plan.Exercises = []PlanExercise{}
	}

	return &plan, nil
}

func (r *Repo) List(ctx context.Context, userID string, favoritesOnly bool) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, is_favorite, created_at, updated_at
			FROM workout_plan
			WHERE user_id = $1 AND ($2 = false OR is_favorite)
			ORDER BY created_at DESC`,
		userID, favoritesOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	plans := make([]Plan, 0)
	var ids []uuid.UUID
	for rows.Next() {
		var plan Plan
		if err := rows.Scan(
			&plan.ID, &plan.UserID, &plan.Name, &plan.Description, &plan.IsFavorite, &plan.CreatedAt, &plan.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		plans = append(plans, plan)
		ids = append(ids, plan.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercisesByPlan, err := r.listExercises(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		plans[i].Exercises = exercisesByPlan[plans[i].ID]
		if plans[i].Exercises == nil {
			plans[i].Exercises = []PlanExercise{}
		}
	}

	return plans, nil
}

// Update stores the plan's own fields, and when replaceExercises is set swaps the exercise list.
func (r *Repo) Update(ctx context.Context, plan *Plan, replaceExercises bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", plan.ID.String()))

	return db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`UPDATE workout_plan SET name = $1, description = $2, is_favorite = $3, updated_at = $4
				WHERE id = $5 AND user_id = $6`,
			plan.Name, plan.Description, plan.IsFavorite, plan.UpdatedAt, plan.ID, plan.UserID,
		)
		if err != nil {
			return fmt.Errorf("update plan: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("workout plan")
		}

		if !replaceExercises {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM workout_plan_exercise WHERE workout_plan_id = $1`, plan.ID); err != nil {
			return fmt.Errorf("delete plan exercises: %w", err)
		}
		return insertExercises(ctx, tx, plan.ID, plan.Exercises)
	})
}

func (r *Repo) Delete(ctx context.Context, userID string, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_plan WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("workout plan")
	}
	return nil
}

func insertExercises(ctx context.Context, q db.Querier, planID uuid.UUID, exercises []PlanExercise) error {
	for _, e := range exercises {
		if _, err := q.Exec(
			ctx,
			`INSERT INTO workout_plan_exercise
					(id, workout_plan_id, exercise_id, sort_order, sets, reps, weight, rest_seconds, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			e.ID, planID, e.ExerciseID, e.SortOrder, e.Sets, e.Reps, e.Weight, e.RestSeconds, e.Notes,
		); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return apperr.NotFound("exercise " + e.ExerciseID.String())
			}
			return fmt.Errorf("insert plan exercise: %w", err)
		}
	}
	return nil
}

func (r *Repo) listExercises(ctx context.Context, planIDs []uuid.UUID) (map[uuid.UUID][]PlanExercise, error) {
	byPlan := make(map[uuid.UUID][]PlanExercise, len(planIDs))
	if len(planIDs) == 0 {
		return byPlan, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT pe.workout_plan_id, pe.id, pe.exercise_id, e.name, pe.sort_order, pe.sets, pe.reps,
				pe.weight::float8, pe.rest_seconds, pe.notes
			FROM workout_plan_exercise pe
			LEFT JOIN exercise e ON e.id = pe.exercise_id
			WHERE pe.workout_plan_id = ANY($1)
			ORDER BY pe.workout_plan_id, pe.sort_order ASC`,
		planIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list plan exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var planID uuid.UUID
		var e PlanExercise
		if err := rows.Scan(
			&planID, &e.ID, &e.ExerciseID, &e.ExerciseName, &e.SortOrder, &e.Sets, &e.Reps,
			&e.Weight, &e.RestSeconds, &e.Notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		byPlan[planID] = append(byPlan[planID], e)
	}

	return byPlan, rows.Err()
}
