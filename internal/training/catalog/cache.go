package catalog

import (
	"context"
	"encoding/json"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/madhavmurthyt/workout-tracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=cache_mocks_test.go -package=catalog_test

type exercisesRepo interface {
	GetExercise(ctx context.Context, id uuid.UUID) (*Exercise, error)
	ListExercises(ctx context.Context, category string) ([]Exercise, error)
}

const exerciseCacheTTLSeconds = 10 * 60

// Catalog is the read side of the exercise catalog. Single exercise lookups are served
// from an in-process cache; exercises change rarely and a stale entry lives at most the TTL.
type Catalog struct {
	repo  exercisesRepo
	cache *freecache.Cache
}

func NewCatalog(repo exercisesRepo, cacheSizeMB int) *Catalog {
	return &Catalog{
		repo:  repo,
		cache: freecache.NewCache(cacheSizeMB * 1024 * 1024),
	}
}

func (c *Catalog) GetExercise(ctx context.Context, id uuid.UUID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.getExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := id[:]
	if cached, err := c.cache.Get(key); err == nil {
		var exercise Exercise
		if err := json.Unmarshal(cached, &exercise); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &exercise, nil
		}
		c.cache.Del(key)
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	exercise, err := c.repo.GetExercise(ctx, id)
	if err != nil {
		return nil, err
	}

	if exerciseJson, err := json.Marshal(exercise); err == nil {
		if err := c.cache.Set(key, exerciseJson, exerciseCacheTTLSeconds); err != nil {
			log.Warnf("cache exercise %s: %s", id, err)
		}
	}

	return exercise, nil
}

func (c *Catalog) ListExercises(ctx context.Context, category string) ([]Exercise, error) {
	return c.repo.ListExercises(ctx, category)
}
