package middleware

import (
	"context"
	"net/http"

	"github.com/fortune-auction/gateway/internal/handlers"
	"github.com/fortune-auction/gateway/internal/service"
	"github.com/fortune-auction/gateway/pkg/config"
)

// SessionMiddleware resolves the bearer token to a user session and injects
// it into the request context. Requests without a live session never reach
// the wrapped handler.
func SessionMiddleware(s service.AuthServicer) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := handlers.BearerToken(r)
			if token == "" {
				handlers.RespondErrorJSON(w, r, http.StatusUnauthorized, handlers.ErrMissingToken.Error(), "Missing token in the Authorization header", nil)
				return
			}

			sess, err := s.Resolve(r.Context(), token)
			if err != nil {
				handlers.RespondErrorJSON(w, r, http.StatusUnauthorized, handlers.ErrAuthFailed.Error(), "Session is either expired or invalid.", nil)
				return
			}

			ctx := context.WithValue(r.Context(), config.SessionKey, &sess)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireModerator gates the staff views: only Staff and Manager roles pass.
// Must run after SessionMiddleware.
func RequireModerator(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := handlers.GetSession(r.Context())
		if sess == nil {
			handlers.RespondErrorJSON(w, r, http.StatusUnauthorized, handlers.ErrAuthFailed.Error(), "user session not found in context", nil)
			return
		}
		if !sess.Role.CanModerate() {
			handlers.RespondErrorJSON(w, r, http.StatusForbidden, handlers.ErrForbidden.Error(), "This page is restricted to staff", nil)
			return
		}
		h.ServeHTTP(w, r)
	})
}
