package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
)

// StartJanitor schedules ScanAndClean every interval until ctx is done or the returned
// scheduler is stopped. onCleaned receives the number of removed sessions per run.
func StartJanitor(
	ctx context.Context,
	service *Service,
	interval time.Duration,
	onCleaned func(removed int),
) (*gocron.Scheduler, error) {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	if _, err := scheduler.Every(interval).Do(func() {
		removed := service.ScanAndClean(ctx)
		if onCleaned != nil && removed > 0 {
			onCleaned(removed)
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule session janitor: %w", err)
	}

	scheduler.StartAsync()
	log.Debugf("session janitor started, interval: %s", interval)

	go func() {
		<-ctx.Done()
		scheduler.Stop()
	}()

	return scheduler, nil
}
