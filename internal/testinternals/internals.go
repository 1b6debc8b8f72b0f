package testinternals

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/madhavmurthyt/workout-tracker/internal/db"
)

// NewTestDBPool connects to the postgres given by POSTGRES_HOST / POSTGRES_DB (default
// localhost / workout_tracker_test), applies the schema and empties every table.
func NewTestDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	dbName := os.Getenv("POSTGRES_DB")
	if dbName == "" {
		dbName = "workout_tracker_test"
	}
	t.Logf("using postgres host: %s, db: %s", host, dbName)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         dbName,
		DBPassword:     os.Getenv("POSTGRES_PASSWORD"),
		TracingEnabled: false,
	})
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	require.NoError(t, db.Migrate(timeoutCtx, dbPool))
	require.NoError(t, TruncateAll(timeoutCtx, dbPool))

	return dbPool
}

func TruncateAll(ctx context.Context, q db.Querier) error {
	_, err := q.Exec(ctx, `
		TRUNCATE personal_record, workout_log, scheduled_workout,
			workout_plan_exercise, workout_plan, exercise, workout_category
		CASCADE
	`)
	return err
}

// ExerciseFixture holds the exercise columns tests care about. The catalog itself is read-only.
type ExerciseFixture struct {
	Name               string
	CategoryID         *uuid.UUID
	Description        *string
	DefaultSets        int
	DefaultReps        int
	DefaultWeight      *float64
	DefaultRestSeconds int
	IsPublic           bool
}

func AddCategory(t *testing.T, q db.Querier, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := q.Exec(context.Background(), `INSERT INTO workout_category (id, name) VALUES ($1, $2)`, id, name)
	require.NoError(t, err)
	return id
}

func AddExercise(t *testing.T, q db.Querier, e ExerciseFixture) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := q.Exec(
		context.Background(),
		`INSERT INTO exercise
				(id, name, category_id, description, default_sets, default_reps,
				 default_weight, default_rest_seconds, is_public)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, e.Name, e.CategoryID, e.Description, e.DefaultSets, e.DefaultReps,
		e.DefaultWeight, e.DefaultRestSeconds, e.IsPublic,
	)
	require.NoError(t, err)
	return id
}
