package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	NowFunc     func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		NowFunc:     time.Now,
	}
}

// UserForToken resolves the user behind a session token. An empty user id with a nil
// error means there is no live session for the token.
func (c *LoginChecker) UserForToken(ctx context.Context, token string) (string, error) {
	val, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	userID, createdAt, err := parseSessionValue(val)
	if err != nil {
		return "", err
	}

	if c.NowFunc().Sub(createdAt) > c.ttl {
		return "", nil
	}

	return userID, nil
}
