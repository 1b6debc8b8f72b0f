package setlog

import (
	"time"

	"github.com/google/uuid"
)

// SetLog is one performed set of an exercise within a scheduled workout. Logs are never edited.
type SetLog struct {
	ID                 uuid.UUID `json:"id"`
	ScheduledWorkoutID uuid.UUID `json:"scheduled_workout_id"`
	ExerciseID         uuid.UUID `json:"exercise_id"`
	ExerciseName       *string   `json:"exercise_name"`
	SetNumber          int       `json:"set_number"`
	RepsAchieved       *int      `json:"reps_achieved"`
	WeightKg           *float64  `json:"weight_kg"`
	RPE                *float64  `json:"rpe"`
	Notes              *string   `json:"notes"`
	CompletedAt        time.Time `json:"completed_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type LogSetParams struct {
	ScheduledWorkoutID *uuid.UUID `json:"scheduled_workout_id"`
	ExerciseID         *uuid.UUID `json:"exercise_id"`
	SetNumber          *int       `json:"set_number"`
	RepsAchieved       *int       `json:"reps_achieved"`
	WeightKg           *float64   `json:"weight_kg"`
	RPE                *float64   `json:"rpe"`
	Notes              *string    `json:"notes"`
}

type LogSetResponse struct {
	Log               *SetLog `json:"log"`
	NewPersonalRecord bool    `json:"new_personal_record"`
}

type ListResponse struct {
	Logs []SetLog `json:"logs"`
}
