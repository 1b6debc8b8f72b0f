package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/db"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

const workoutColumns = `id, user_id, workout_plan_id, title, notes, scheduled_at, duration_minutes,
	status, completed_at, created_at, updated_at`

type ListParams struct {
	Statuses []Status
	From     *time.Time
	To       *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, w ScheduledWorkout) (_ *ScheduledWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", w.ID.String()))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO scheduled_workout (`+workoutColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		w.ID, w.UserID, w.WorkoutPlanID, w.Title, w.Notes, w.ScheduledAt, w.DurationMinutes,
		string(w.Status), w.CompletedAt, w.CreatedAt, w.UpdatedAt,
	); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			// the plan was deleted after the ownership check
			return nil, apperr.NotFound("workout plan")
		}
		return nil, fmt.Errorf("insert scheduled workout: %w", err)
	}

	return &w, nil
}

func (r *Repo) Get(ctx context.Context, userID string, id uuid.UUID) (_ *ScheduledWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id.String()))

	return getWorkout(ctx, r.db, userID, id, false)
}

func (r *Repo) List(ctx context.Context, userID string, params ListParams) (_ []ScheduledWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	statuses := make([]string, 0, len(params.Statuses))
	for _, s := range params.Statuses {
		statuses = append(statuses, string(s))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+workoutColumns+`
			FROM scheduled_workout
			WHERE user_id = $1
				AND status = ANY($2)
				AND ($3::timestamptz IS NULL OR scheduled_at >= $3)
				AND ($4::timestamptz IS NULL OR scheduled_at <= $4)
			ORDER BY scheduled_at ASC, created_at ASC`,
		userID, statuses, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("list scheduled workouts: %w", err)
	}
	defer rows.Close()

	workouts := make([]ScheduledWorkout, 0)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, *w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

// Modify loads the workout with a row lock, lets apply change it, and stores the result,
// all in one transaction. Concurrent patches on the same workout are serialized.
func (r *Repo) Modify(
	ctx context.Context,
	userID string,
	id uuid.UUID,
	apply func(w *ScheduledWorkout) error,
) (_ *ScheduledWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.modify")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id.String()))

	var modified *ScheduledWorkout
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		w, err := getWorkout(ctx, tx, userID, id, true)
		if err != nil {
			return err
		}

		if err := apply(w); err != nil {
			return err
		}

		if _, err := tx.Exec(
			ctx,
			`UPDATE scheduled_workout
				SET title = $1, notes = $2, scheduled_at = $3, duration_minutes = $4,
					status = $5, completed_at = $6, updated_at = $7
				WHERE id = $8 AND user_id = $9`,
			w.Title, w.Notes, w.ScheduledAt, w.DurationMinutes, string(w.Status), w.CompletedAt, w.UpdatedAt,
			w.ID, w.UserID,
		); err != nil {
			return fmt.Errorf("update scheduled workout: %w", err)
		}

		modified = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	return modified, nil
}

// Delete removes the workout; its set logs go with it.
func (r *Repo) Delete(ctx context.Context, userID string, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM scheduled_workout WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete scheduled workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("scheduled workout")
	}
	return nil
}

func getWorkout(ctx context.Context, q db.Querier, userID string, id uuid.UUID, forUpdate bool) (*ScheduledWorkout, error) {
	query := `SELECT ` + workoutColumns + ` FROM scheduled_workout WHERE id = $1 AND user_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	w, err := scanWorkout(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("scheduled workout")
		}
		return nil, fmt.Errorf("get scheduled workout: %w", err)
	}
	return w, nil
}

func scanWorkout(row pgx.Row) (*ScheduledWorkout, error) {
	var w ScheduledWorkout
	var status string
	if err := row.Scan(
		&w.ID, &w.UserID, &w.WorkoutPlanID, &w.Title, &w.Notes, &w.ScheduledAt, &w.DurationMinutes,
		&status, &w.CompletedAt, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	w.Status = Status(status)
	return &w, nil
}
