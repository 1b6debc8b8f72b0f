package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every served request, server errors at warn level and the rest at trace.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			resp := &responseWriter{w, http.StatusOK}
			next.ServeHTTP(resp, r)

			entry := log.WithFields(log.Fields{
				"method":   r.Method,
				"route":    routeTemplate(r),
				"path":     r.URL.Path,
				"status":   resp.statusCode,
				"ua":       r.Header.Get("User-Agent"),
				"duration": time.Since(start).String(),
			})
			switch {
			case resp.statusCode >= http.StatusInternalServerError:
				entry.Warn("request failed")
			case resp.statusCode >= http.StatusBadRequest:
				entry.Debug("request rejected")
			default:
				entry.Trace("request served")
			}
		})
	}
}
