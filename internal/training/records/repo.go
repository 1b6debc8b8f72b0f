package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/madhavmurthyt/workout-tracker/internal/db"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ConditionalUpdate stores c as the record for (user, exercise) when there is none yet or when
// c is strictly heavier. The read up front only skips obvious losers; the upsert's WHERE clause
// is what keeps concurrent writers from lowering a record. Ties never replace the existing record.
// Runs on q so callers can share their transaction.
func (r *Repo) ConditionalUpdate(ctx context.Context, q db.Querier, c Candidate) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.conditionalUpdate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise.id", c.ExerciseID.String()),
		attribute.Float64("weight.kg", c.WeightKg),
	)

	var current *float64
	err = q.QueryRow(
		ctx,
		`SELECT max_weight_kg::float8 FROM personal_record WHERE user_id = $1 AND exercise_id = $2`,
		c.UserID, c.ExerciseID,
	).Scan(&current)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("read personal record: %w", err)
	}
	if current != nil && *current >= c.WeightKg {
		return false, nil
	}

	var id uuid.UUID
	err = q.QueryRow(
		ctx,
		`INSERT INTO personal_record (id, user_id, exercise_id, max_weight_kg, max_reps, recorded_at, source_log_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id, exercise_id) DO UPDATE
				SET max_weight_kg = EXCLUDED.max_weight_kg,
					max_reps = EXCLUDED.max_reps,
					recorded_at = EXCLUDED.recorded_at,
					source_log_id = EXCLUDED.source_log_id
				WHERE personal_record.max_weight_kg IS NULL
					OR personal_record.max_weight_kg < EXCLUDED.max_weight_kg
			RETURNING id`,
		uuid.New(), c.UserID, c.ExerciseID, c.WeightKg, c.Reps, c.RecordedAt, c.SourceLogID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// lost the race to an equal or heavier set
			return false, nil
		}
		return false, fmt.Errorf("upsert personal record: %w", err)
	}

	return true, nil
}

// ListForUser returns the user's records, newest first. A non-nil since keeps only
// records set at or after it.
func (r *Repo) ListForUser(ctx context.Context, userID string, since *time.Time) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT pr.id, pr.user_id, pr.exercise_id, e.name, c.name, pr.max_weight_kg::float8, pr.max_reps,
				pr.recorded_at, pr.source_log_id
			FROM personal_record pr
				LEFT JOIN exercise e ON e.id = pr.exercise_id
				LEFT JOIN workout_category c ON c.id = e.category_id
			WHERE pr.user_id = $1
				AND ($2::timestamptz IS NULL OR pr.recorded_at >= $2)
			ORDER BY pr.recorded_at DESC`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("list personal records: %w", err)
	}
	defer rows.Close()

	records := make([]PersonalRecord, 0)
	for rows.Next() {
		var pr PersonalRecord
		if err := rows.Scan(
			&pr.ID, &pr.UserID, &pr.ExerciseID, &pr.ExerciseName, &pr.CategoryName,
			&pr.MaxWeightKg, &pr.MaxReps, &pr.RecordedAt, &pr.SourceLogID,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, pr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Rebuild replays the heaviest logged set of every exercise the user trained through
// ConditionalUpdate and returns how many records changed. Of equally heavy sets the
// earliest one wins.
func (r *Repo) Rebuild(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.rebuild")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	updated := 0
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(
			ctx,
			`SELECT DISTINCT ON (l.exercise_id) l.id, l.exercise_id, l.weight_kg::float8, l.reps_achieved, l.completed_at
				FROM workout_log l
					JOIN scheduled_workout sw ON sw.id = l.scheduled_workout_id
				WHERE sw.user_id = $1 AND l.weight_kg IS NOT NULL
				ORDER BY l.exercise_id, l.weight_kg DESC, l.completed_at ASC, l.created_at ASC`,
			userID,
		)
		if err != nil {
			return fmt.Errorf("select best sets: %w", err)
		}

		candidates := make([]Candidate, 0)
		for rows.Next() {
			c := Candidate{UserID: userID}
			if err := rows.Scan(&c.SourceLogID, &c.ExerciseID, &c.WeightKg, &c.Reps, &c.RecordedAt); err != nil {
				rows.Close()
				return fmt.Errorf("rows scan: %w", err)
			}
			candidates = append(candidates, c)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, c := range candidates {
			set, err := r.ConditionalUpdate(ctx, tx, c)
			if err != nil {
				return err
			}
			if set {
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}
