package setlog

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

// Add inserts the log only if its scheduled workout belongs to userID, checking ownership
// and writing in a single statement. Runs on q so the insert can share a transaction with
// the personal record update.
func (r *Repo) Add(ctx context.Context, q db.Querier, userID string, l SetLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.setlog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", l.ScheduledWorkoutID.String()))

	var id uuid.UUID
	err = q.QueryRow(
		ctx,
		`INSERT INTO workout_log
				(id, scheduled_workout_id, exercise_id, set_number, reps_achieved, weight_kg, rpe, notes,
				completed_at, created_at, updated_at)
			SELECT $1::uuid, sw.id, $3::uuid, $4::integer, $5::integer, $6::numeric, $7::numeric, $8::text,
					$9::timestamptz, $10::timestamptz, $11::timestamptz
				FROM scheduled_workout sw
				WHERE sw.id = $2 AND sw.user_id = $12
			RETURNING id`,
		l.ID, l.ScheduledWorkoutID, l.ExerciseID, l.SetNumber, l.RepsAchieved, l.WeightKg, l.RPE, l.Notes,
		l.CompletedAt, l.CreatedAt, l.UpdatedAt, userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("scheduled workout")
		}
		if pkg.IsCheckViolationError(err) {
			return apperr.Validation("set log values out of range")
		}
		if pkg.IsUniqueViolationError(err) {
			return apperr.Conflict("set log %s already exists", l.ID)
		}
		return fmt.Errorf("insert workout log: %w", err)
	}

	return nil
}

// ListForScheduledWorkout returns the workout's logs ordered by exercise and set number.
// Logs of exercises missing from the catalog are kept, without a name.
func (r *Repo) ListForScheduledWorkout(ctx context.Context, userID string, workoutID uuid.UUID) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.setlog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID.String()))

	var owned bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM scheduled_workout WHERE id = $1 AND user_id = $2)`,
		workoutID, userID,
	).Scan(&owned); err != nil {
		return nil, fmt.Errorf("check scheduled workout: %w", err)
	}
	if !owned {
		return nil, apperr.NotFound("scheduled workout")
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT l.id, l.scheduled_workout_id, l.exercise_id, e.name, l.set_number, l.reps_achieved,
				l.weight_kg::float8, l.rpe::float8, l.notes, l.completed_at, l.created_at, l.updated_at
			FROM workout_log l
				LEFT JOIN exercise e ON e.id = l.exercise_id
			WHERE l.scheduled_workout_id = $1
			ORDER BY l.exercise_id ASC, l.set_number ASC, l.created_at ASC`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	defer rows.Close()

	logs := make([]SetLog, 0)
	for rows.Next() {
		var l SetLog
		if err := rows.Scan(
			&l.ID, &l.ScheduledWorkoutID, &l.ExerciseID, &l.ExerciseName, &l.SetNumber, &l.RepsAchieved,
			&l.WeightKg, &l.RPE, &l.Notes, &l.CompletedAt, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
