package records

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=records_test

type recordsRepo interface {
	ListForUser(ctx context.Context, userID string, since *time.Time) ([]PersonalRecord, error)
	Rebuild(ctx context.Context, userID string) (int, error)
}

type Tracker struct {
	repo           recordsRepo
	metricsManager *metrics.Manager
}

func NewTracker(repo recordsRepo, metricsManager *metrics.Manager) *Tracker {
	return &Tracker{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (t *Tracker) ListForUser(ctx context.Context, userID string, since *time.Time) ([]PersonalRecord, error) {
	return t.repo.ListForUser(ctx, userID, since)
}

// Rebuild recomputes the user's records from their logged sets. It only ever raises records,
// so it is safe to run at any time; it exists to catch up after failed record writes.
func (t *Tracker) Rebuild(ctx context.Context, userID string) (int, error) {
	updated, err := t.repo.Rebuild(ctx, userID)
	if err != nil {
		return 0, err
	}

	if updated > 0 {
		log.Infof("personal records rebuild for %s: %d updated", userID, updated)
		if t.metricsManager != nil {
			t.metricsManager.CounterPersonalRecords.Add(float64(updated))
		}
	}

	return updated, nil
}
