package db

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS workout_category (
	id   UUID PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS exercise (
	id                   UUID PRIMARY KEY,
	name                 TEXT NOT NULL,
	category_id          UUID REFERENCES workout_category (id) ON DELETE SET NULL,
	description          TEXT,
	default_sets         INTEGER NOT NULL DEFAULT 3,
	default_reps         INTEGER NOT NULL DEFAULT 10,
	default_weight       NUMERIC(6, 2),
	default_rest_seconds INTEGER NOT NULL DEFAULT 60,
	created_by           TEXT,
	is_public            BOOLEAN NOT NULL DEFAULT TRUE,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_plan (
	id          UUID PRIMARY KEY,
	user_id     TEXT NOT NULL,
	name        TEXT NOT NULL,
	description TEXT,
	is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS workout_plan_user_idx ON workout_plan (user_id);

CREATE TABLE IF NOT EXISTS workout_plan_exercise (
	id              UUID PRIMARY KEY,
	workout_plan_id UUID NOT NULL REFERENCES workout_plan (id) ON DELETE CASCADE,
	exercise_id     UUID NOT NULL REFERENCES exercise (id),
	sort_order      INTEGER NOT NULL DEFAULT 0,
	sets            INTEGER NOT NULL DEFAULT 3,
	reps            INTEGER NOT NULL DEFAULT 10,
	weight          NUMERIC(6, 2),
	rest_seconds    INTEGER NOT NULL DEFAULT 60,
	notes           TEXT
);

CREATE TABLE IF NOT EXISTS scheduled_workout (
	id               UUID PRIMARY KEY,
	user_id          TEXT NOT NULL,
	workout_plan_id  UUID REFERENCES workout_plan (id) ON DELETE SET NULL,
	title            TEXT NOT NULL,
	notes            TEXT,
	scheduled_at     TIMESTAMPTZ NOT NULL,
	duration_minutes INTEGER,
	status           TEXT NOT NULL DEFAULT 'planned'
		CHECK (status IN ('planned', 'in_progress', 'completed', 'skipped')),
	completed_at     TIMESTAMPTZ,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS scheduled_workout_user_scheduled_idx ON scheduled_workout (user_id, scheduled_at);
CREATE INDEX IF NOT EXISTS scheduled_workout_user_completed_idx ON scheduled_workout (user_id, completed_at);

CREATE TABLE IF NOT EXISTS workout_log (
	id                   UUID PRIMARY KEY,
	scheduled_workout_id UUID NOT NULL REFERENCES scheduled_workout (id) ON DELETE CASCADE,
	exercise_id          UUID NOT NULL,
	set_number           INTEGER NOT NULL CHECK (set_number >= 1),
	reps_achieved        INTEGER CHECK (reps_achieved >= 0),
	weight_kg            NUMERIC(6, 2) CHECK (weight_kg > 0),
	rpe                  NUMERIC(3, 1) CHECK (rpe BETWEEN 1 AND 10),
	notes                TEXT,
	completed_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS workout_log_scheduled_idx ON workout_log (scheduled_workout_id);

CREATE TABLE IF NOT EXISTS personal_record (
	id            UUID PRIMARY KEY,
	user_id       TEXT NOT NULL,
	exercise_id   UUID NOT NULL,
	max_weight_kg NUMERIC(6, 2),
	max_reps      INTEGER,
	recorded_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	source_log_id UUID REFERENCES workout_log (id) ON DELETE SET NULL,
	UNIQUE (user_id, exercise_id)
);
`

// Migrate creates the schema objects that do not exist yet. Safe to run on every start.
func Migrate(ctx context.Context, db Querier) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
