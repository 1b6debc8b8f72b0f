package reports

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
	"github.com/madhavmurthyt/workout-tracker/internal/training/records"
	"github.com/madhavmurthyt/workout-tracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=reports_test

type reportsRepo interface {
	CompletedStats(ctx context.Context, userID string, weekStart, monthStart time.Time) (*CompletedStats, error)
	CountLogs(ctx context.Context, userID string) (int, error)
	FavoriteCategory(ctx context.Context, userID string) (*string, error)
	CompletedSince(ctx context.Context, userID string, since time.Time) ([]ProgressEntry, error)
}

type recordsLister interface {
	ListForUser(ctx context.Context, userID string, since *time.Time) ([]records.PersonalRecord, error)
}

// Aggregator builds read-only reports. Calendar boundaries (week and month starts)
// are taken in location.
type Aggregator struct {
	repo     reportsRepo
	records  recordsLister
	location *time.Location
	NowFunc  func() time.Time
}

func NewAggregator(repo reportsRepo, records recordsLister, location *time.Location) *Aggregator {
	if location == nil {
		location = time.UTC
	}
	return &Aggregator{
		repo:     repo,
		records:  records,
		location: location,
		NowFunc:  time.Now,
	}
}

func (a *Aggregator) Summary(ctx context.Context, userID string) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := a.NowFunc()
	stats, err := a.repo.CompletedStats(ctx, userID, WeekStart(now, a.location), MonthStart(now, a.location))
	if err != nil {
		return nil, err
	}

	logsCount, err := a.repo.CountLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	favorite, err := a.repo.FavoriteCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalCompletedWorkouts: stats.Total,
		TotalDurationMinutes:   stats.DurationMinutes,
		WorkoutsThisWeek:       stats.SinceWeekStart,
		WorkoutsThisMonth:      stats.SinceMonthStart,
		TotalExercisesLogged:   logsCount,
		FavoriteCategory:       favorite,
	}, nil
}

// Progress lists the workouts completed and the records set within the period, counted
// back from now. An empty period means a month, any other value is echoed back
// and also counted as a month.
func (a *Aggregator) Progress(ctx context.Context, userID string, period Period) (_ *Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if period == "" {
		period = PeriodMonth
	}
	span.SetAttributes(attribute.String("period", string(period)))

	start := PeriodStart(a.NowFunc(), period)

	entries, err := a.repo.CompletedSince(ctx, userID, start)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].TotalVolume = pkg.RoundTo2(entries[i].TotalVolume)
	}

	prs, err := a.records.ListForUser(ctx, userID, &start)
	if err != nil {
		return nil, err
	}

	return &Progress{
		Period:          period,
		WorkoutCount:    len(entries),
		ProgressData:    entries,
		PersonalRecords: prs,
	}, nil
}

func (a *Aggregator) PersonalRecords(ctx context.Context, userID string) ([]records.PersonalRecord, error) {
	return a.records.ListForUser(ctx, userID, nil)
}

// WeekStart returns the most recent Sunday 00:00 in loc, at or before t.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return midnight.AddDate(0, 0, -int(t.Weekday()))
}

// MonthStart returns the first day of t's month, 00:00 in loc.
func MonthStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// PeriodStart counts the period back from now. Anything other than a week or a year
// is a month.
func PeriodStart(now time.Time, period Period) time.Time {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}
