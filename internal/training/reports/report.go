package reports

import (
	"time"

	"github.com/madhavmurthyt/workout-tracker/internal/training/records"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

type Summary struct {
	TotalCompletedWorkouts int     `json:"totalCompletedWorkouts"`
	TotalDurationMinutes   int     `json:"totalDurationMinutes"`
	WorkoutsThisWeek       int     `json:"workoutsThisWeek"`
	WorkoutsThisMonth      int     `json:"workoutsThisMonth"`
	TotalExercisesLogged   int     `json:"totalExercisesLogged"`
	FavoriteCategory       *string `json:"favoriteCategory"`
}

type SummaryResponse struct {
	Summary Summary `json:"summary"`
}

// ProgressEntry describes one completed workout. ExerciseCount is the number of logged sets;
// TotalVolume sums weight times reps, with missing values counting as zero.
type ProgressEntry struct {
	Date          time.Time `json:"date"`
	Title         string    `json:"title"`
	Duration      *int      `json:"duration"`
	ExerciseCount int       `json:"exerciseCount"`
	TotalVolume   float64   `json:"totalVolume"`
}

type Progress struct {
	Period          Period                   `json:"period"`
	WorkoutCount    int                      `json:"workoutCount"`
	ProgressData    []ProgressEntry          `json:"progressData"`
	PersonalRecords []records.PersonalRecord `json:"personalRecords"`
}

type PersonalRecordsResponse struct {
	PersonalRecords []records.PersonalRecord `json:"personalRecords"`
}

type CompletedStats struct {
	Total           int
	DurationMinutes int
	SinceWeekStart  int
	SinceMonthStart int
}
