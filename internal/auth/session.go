package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "workout-tracker-session||"
	tokensSetKey     = "workout-tracker-sessions"
	tokenLength      = 35
)

var ErrMalformedSession = errors.New("malformed session value")

// sessionValue is stored under the session key as "<userID>|<createdAt unix>".
func sessionValue(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%s|%d", userID, createdAt.Unix())
}

func parseSessionValue(val string) (string, time.Time, error) {
	sep := strings.LastIndex(val, "|")
	if sep <= 0 {
		return "", time.Time{}, ErrMalformedSession
	}
	createdAtUnix, err := strconv.ParseInt(val[sep+1:], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %s", ErrMalformedSession, err)
	}
	return val[:sep], time.Unix(createdAtUnix, 0), nil
}
