package middleware

import (
	"context"
	"errors"
	"net/http"

	"message_board/internal/common"
	"message_board/internal/domain/model"
	"message_board/internal/domain/repository"
)

type contextKey string

const UserCtxKey contextKey = "user"

// Authenticator resolves the raw Authorization header value (no "Bearer "
// prefix) to a user whose stored accessToken equals it and attaches that
// user to the request context. No match is a 401, a failed lookup a 403.
func Authenticator(users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			user, err := users.FindByAccessToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					common.RespondWithJSON(w, http.StatusUnauthorized, map[string]interface{}{
						"loggedOut": true,
						"message":   "Please try to log in",
					})
				} else {
					common.RespondWithJSON(w, http.StatusForbidden, map[string]interface{}{
						"message": "accesToken missing or wrong",
						"errors":  err.Error(),
					})
				}
				return
			}
			ctx := context.WithValue(r.Context(), UserCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the user attached by Authenticator.
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*model.User)
	return user, ok
}
