package middleware

import (
	"net/http"

	"message_board/internal/common"
)

// ReadinessChecker reports whether the backing store is reachable.
type ReadinessChecker interface {
	Ready() bool
}

// Readiness holds all traffic behind a 503 until the store is connected.
func Readiness(checker ReadinessChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checker.Ready() {
				common.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
					"error": "Service unavailabale",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
