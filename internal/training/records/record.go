package records

import (
	"time"

	"github.com/google/uuid"
)

// PersonalRecord is the heaviest logged set of one exercise for one user.
// MaxReps are the reps of the set that established MaxWeightKg.
type PersonalRecord struct {
	ID           uuid.UUID  `json:"id"`
	UserID       string     `json:"user_id"`
	ExerciseID   uuid.UUID  `json:"exercise_id"`
	ExerciseName *string    `json:"exercise_name"`
	CategoryName *string    `json:"category_name"`
	MaxWeightKg  *float64   `json:"max_weight_kg"`
	MaxReps      *int       `json:"max_reps"`
	RecordedAt   time.Time  `json:"recorded_at"`
	SourceLogID  *uuid.UUID `json:"source_log_id"`
}

// Candidate is a logged set offered to the tracker as a possible new record.
type Candidate struct {
	UserID      string
	ExerciseID  uuid.UUID
	WeightKg    float64
	Reps        *int
	SourceLogID uuid.UUID
	RecordedAt  time.Time
}
