package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
)

const exerciseColumns = `
	e.id, e.name, e.category_id, c.name, e.description, e.default_sets, e.default_reps,
	e.default_weight::float8, e.default_rest_seconds, e.created_by, e.is_public`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetExercise(ctx context.Context, id uuid.UUID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.getExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id.String()))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM exercise e
			LEFT JOIN workout_category c ON c.id = e.category_id
			WHERE e.id = $1`,
		id,
	)

	exercise, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("exercise")
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	return exercise, nil
}

// ListExercises returns public exercises ordered by name, optionally only those of the named category.
func (r *Repo) ListExercises(ctx context.Context, category string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category", category))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM exercise e
			LEFT JOIN workout_category c ON c.id = e.category_id
			WHERE e.is_public AND ($1 = '' OR c.name = $1)
			ORDER BY e.name ASC`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, *exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	var e Exercise
	if err := row.Scan(
		&e.ID, &e.Name, &e.CategoryID, &e.CategoryName, &e.Description, &e.DefaultSets, &e.DefaultReps,
		&e.DefaultWeight, &e.DefaultRestSeconds, &e.CreatedBy, &e.IsPublic,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
