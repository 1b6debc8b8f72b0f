package plans

import (
	"time"

	"github.com/google/uuid"

	"github.com/madhavmurthyt/workout-tracker/pkg"
)

const (
	defaultSets        = 3
	defaultReps        = 10
	defaultRestSeconds = 60
)

type Plan struct {
	ID          uuid.UUID      `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	IsFavorite  bool           `json:"is_favorite"`
	Exercises   []PlanExercise `json:"exercises"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type PlanExercise struct {
	ID           uuid.UUID `json:"id"`
	ExerciseID   uuid.UUID `json:"exercise_id"`
	ExerciseName *string   `json:"exercise_name,omitempty"`
	SortOrder    int       `json:"sort_order"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       *float64  `json:"weight"`
	RestSeconds  int       `json:"rest_seconds"`
	Notes        *string   `json:"notes"`
}

type PlanExerciseParams struct {
	ExerciseID  uuid.UUID `json:"exercise_id"`
	SortOrder   *int      `json:"sort_order"`
	Sets        *int      `json:"sets"`
	Reps        *int      `json:"reps"`
	Weight      *float64  `json:"weight"`
	RestSeconds *int      `json:"rest_seconds"`
	Notes       *string   `json:"notes"`
}

type CreateParams struct {
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	IsFavorite  bool                 `json:"is_favorite"`
	Exercises   []PlanExerciseParams `json:"exercises"`
}

// UpdateParams is a partial update. A present exercises list replaces the plan's exercises.
type UpdateParams struct {
	Name        pkg.Nullable[string]  `json:"name"`
	Description pkg.Nullable[string]  `json:"description"`
	IsFavorite  pkg.Nullable[bool]    `json:"is_favorite"`
	Exercises   *[]PlanExerciseParams `json:"exercises"`
}
