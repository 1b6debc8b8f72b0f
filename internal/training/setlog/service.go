package setlog

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/madhavmurthyt/workout-tracker/internal/apperr"
	"github.com/madhavmurthyt/workout-tracker/internal/config"
	"github.com/madhavmurthyt/workout-tracker/internal/db"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/metrics"
	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/internal/training/records"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=setlog_test

const maxWeightKg = 9999.99

type logsRepo interface {
	Add(ctx context.Context, q db.Querier, userID string, l SetLog) error
	ListForScheduledWorkout(ctx context.Context, userID string, workoutID uuid.UUID) ([]SetLog, error)
}

type recordUpdater interface {
	ConditionalUpdate(ctx context.Context, q db.Querier, c records.Candidate) (bool, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(q db.Querier) error) error
}

// Logger records performed sets and offers every weighted set to the personal record tracker.
// With the strict policy both writes commit or roll back together. With the lenient policy the
// set is kept even when the record write fails; records.Repo.Rebuild catches up later.
type Logger struct {
	repo           logsRepo
	records        recordUpdater
	tx             txRunner
	policy         string
	metricsManager *metrics.Manager
	NowFunc        func() time.Time
}

func NewLogger(
	repo logsRepo,
	records recordUpdater,
	tx txRunner,
	policy string,
	metricsManager *metrics.Manager,
) *Logger {
	if policy == "" {
		policy = config.PRPolicyStrict
	}
	return &Logger{
		repo:           repo,
		records:        records,
		tx:             tx,
		policy:         policy,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func (l *Logger) LogSet(ctx context.Context, userID string, params LogSetParams) (_ *LogSetResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.setlog.logSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("pr.policy", l.policy))

	setLog, err := l.newSetLog(params)
	if err != nil {
		return nil, err
	}

	var candidate *records.Candidate
	if setLog.WeightKg != nil {
		candidate = &records.Candidate{
			UserID:      userID,
			ExerciseID:  setLog.ExerciseID,
			WeightKg:    *setLog.WeightKg,
			Reps:        setLog.RepsAchieved,
			SourceLogID: setLog.ID,
			RecordedAt:  setLog.CompletedAt,
		}
	}

	newRecord := false
	if l.policy == config.PRPolicyLenient {
		newRecord, err = l.logLenient(ctx, userID, *setLog, candidate)
	} else {
		newRecord, err = l.logStrict(ctx, userID, *setLog, candidate)
	}
	if err != nil {
		return nil, err
	}

	if l.metricsManager != nil {
		l.metricsManager.CounterSetsLogged.Inc()
		if newRecord {
			l.metricsManager.CounterPersonalRecords.Inc()
		}
	}

	return &LogSetResponse{
		Log:               setLog,
		NewPersonalRecord: newRecord,
	}, nil
}

func (l *Logger) ListForScheduledWorkout(ctx context.Context, userID string, workoutID uuid.UUID) ([]SetLog, error) {
	return l.repo.ListForScheduledWorkout(ctx, userID, workoutID)
}

func (l *Logger) logStrict(ctx context.Context, userID string, setLog SetLog, candidate *records.Candidate) (bool, error) {
	newRecord := false
	err := l.tx.RunInTx(ctx, func(q db.Querier) error {
		if err := l.repo.Add(ctx, q, userID, setLog); err != nil {
			return err
		}
		if candidate == nil {
			return nil
		}

		set, err := l.records.ConditionalUpdate(ctx, q, *candidate)
		if err != nil {
			return err
		}
		newRecord = set
		return nil
	})
	if err != nil {
		return false, err
	}
	return newRecord, nil
}

func (l *Logger) logLenient(ctx context.Context, userID string, setLog SetLog, candidate *records.Candidate) (bool, error) {
	if err := l.tx.RunInTx(ctx, func(q db.Querier) error {
		return l.repo.Add(ctx, q, userID, setLog)
	}); err != nil {
		return false, err
	}
	if candidate == nil {
		return false, nil
	}

	newRecord := false
	if err := l.tx.RunInTx(ctx, func(q db.Querier) error {
		set, err := l.records.ConditionalUpdate(ctx, q, *candidate)
		newRecord = set
		return err
	}); err != nil {
		log.WithError(err).
			WithField("log_id", setLog.ID.String()).
			WithField("exercise_id", setLog.ExerciseID.String()).
			Errorf("personal record update for %s failed, set kept", userID)
		if l.metricsManager != nil {
			l.metricsManager.CounterPRWriteFailures.Inc()
		}
		return false, nil
	}
	return newRecord, nil
}

func (l *Logger) newSetLog(params LogSetParams) (*SetLog, error) {
	if params.ScheduledWorkoutID == nil || *params.ScheduledWorkoutID == uuid.Nil ||
		params.ExerciseID == nil || *params.ExerciseID == uuid.Nil ||
		params.SetNumber == nil || *params.SetNumber < 1 {
		return nil, apperr.Validation("scheduled_workout_id, exercise_id, and set_number are required")
	}
	if params.RepsAchieved != nil && *params.RepsAchieved < 0 {
		return nil, apperr.Validation("reps_achieved must not be negative")
	}

	// zero reps are stored as absent, same as zero weight
	reps := params.RepsAchieved
	if reps != nil && *reps == 0 {
		reps = nil
	}

	var weight *float64
	if params.WeightKg != nil {
		w := pkg.RoundTo2(*params.WeightKg)
		switch {
		case w < 0:
			return nil, apperr.Validation("weight_kg must not be negative")
		case w > maxWeightKg:
			return nil, apperr.Validation("weight_kg must not exceed %.2f", maxWeightKg)
		case w > 0:
			weight = &w
		}
	}

	var rpe *float64
	if params.RPE != nil {
		r := math.Round(*params.RPE*10) / 10
		if r < 1 || r > 10 {
			return nil, apperr.Validation("rpe must be between 1 and 10")
		}
		rpe = &r
	}

	now := l.NowFunc()
	return &SetLog{
		ID:                 uuid.New(),
		ScheduledWorkoutID: *params.ScheduledWorkoutID,
		ExerciseID:         *params.ExerciseID,
		SetNumber:          *params.SetNumber,
		RepsAchieved:       reps,
		WeightKg:           weight,
		RPE:                rpe,
		Notes:              params.Notes,
		CompletedAt:        now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}
