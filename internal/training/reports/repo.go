package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
)

// Repo runs the read-only rollups behind the reports. Only workouts whose status is
// currently completed count as completed.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CompletedStats(ctx context.Context, userID string, weekStart, monthStart time.Time) (_ *CompletedStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reports.completedStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var stats CompletedStats
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*),
				COALESCE(SUM(duration_minutes), 0),
				COUNT(*) FILTER (WHERE completed_at >= $2),
				COUNT(*) FILTER (WHERE completed_at >= $3)
			FROM scheduled_workout
			WHERE user_id = $1 AND status = 'completed'`,
		userID, weekStart, monthStart,
	).Scan(&stats.Total, &stats.DurationMinutes, &stats.SinceWeekStart, &stats.SinceMonthStart); err != nil {
		return nil, fmt.Errorf("completed workout stats: %w", err)
	}

	return &stats, nil
}

func (r *Repo) CountLogs(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reports.countLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*)
			FROM workout_log l
				JOIN scheduled_workout sw ON sw.id = l.scheduled_workout_id
			WHERE sw.user_id = $1`,
		userID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count workout logs: %w", err)
	}

	return count, nil
}

// FavoriteCategory returns the category with the most logged sets, ties going to the
// alphabetically first name. Nil when the user has no categorized logs.
func (r *Repo) FavoriteCategory(ctx context.Context, userID string) (_ *string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reports.favoriteCategory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var name string
	err = r.db.QueryRow(
		ctx,
		`SELECT c.name
			FROM workout_log l
				JOIN scheduled_workout sw ON sw.id = l.scheduled_workout_id
				JOIN exercise e ON e.id = l.exercise_id
				JOIN workout_category c ON c.id = e.category_id
			WHERE sw.user_id = $1
			GROUP BY c.id, c.name
			ORDER BY COUNT(*) DESC, c.name ASC
			LIMIT 1`,
		userID,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("favorite category: %w", err)
	}

	return &name, nil
}

func (r *Repo) CompletedSince(ctx context.Context, userID string, since time.Time) (_ []ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reports.completedSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT sw.completed_at, sw.title, sw.duration_minutes, COUNT(l.id),
				COALESCE(SUM(COALESCE(l.weight_kg, 0) * COALESCE(l.reps_achieved, 0)), 0)::float8
			FROM scheduled_workout sw
				LEFT JOIN workout_log l ON l.scheduled_workout_id = sw.id
			WHERE sw.user_id = $1 AND sw.status = 'completed' AND sw.completed_at >= $2
			GROUP BY sw.id
			ORDER BY sw.completed_at ASC, sw.id ASC`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("list completed workouts: %w", err)
	}
	defer rows.Close()

	entries := make([]ProgressEntry, 0)
	for rows.Next() {
		var e ProgressEntry
		if err := rows.Scan(&e.Date, &e.Title, &e.Duration, &e.ExerciseCount, &e.TotalVolume); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
