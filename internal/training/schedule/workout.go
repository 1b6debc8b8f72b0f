package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/madhavmurthyt/workout-tracker/pkg"
)

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusSkipped    Status = "skipped"
)

// DefaultListStatuses are the statuses listed when no status filter is given.
var DefaultListStatuses = []Status{StatusPlanned, StatusInProgress}

func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusSkipped:
		return true
	default:
		return false
	}
}

type ScheduledWorkout struct {
	ID              uuid.UUID  `json:"id"`
	UserID          string     `json:"user_id"`
	WorkoutPlanID   *uuid.UUID `json:"workout_plan_id"`
	Title           string     `json:"title"`
	Notes           *string    `json:"notes"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	DurationMinutes *int       `json:"duration_minutes"`
	Status          Status     `json:"status"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CreateParams struct {
	Title           string     `json:"title"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	WorkoutPlanID   *uuid.UUID `json:"workout_plan_id"`
	Notes           *string    `json:"notes"`
	DurationMinutes *int       `json:"duration_minutes"`
}

// Patch is a partial update. Omitted fields keep their value. An explicit null clears
// notes and is ignored for the other fields.
type Patch struct {
	Title           pkg.Nullable[string]    `json:"title"`
	Notes           pkg.Nullable[string]    `json:"notes"`
	ScheduledAt     pkg.Nullable[time.Time] `json:"scheduled_at"`
	DurationMinutes pkg.Nullable[int]       `json:"duration_minutes"`
	Status          pkg.Nullable[Status]    `json:"status"`
}

type ListFilter struct {
	Status *Status
	From   *time.Time
	To     *time.Time
}
