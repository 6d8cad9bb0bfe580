package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"worktime/internal/platform/metrics"
	"worktime/internal/platform/servicetoken"
	"worktime/pkg/requestcontext"
)

// TokenValidator validates scheduler and admin service tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*servicetoken.Claims, error)
}

// RequireServiceToken rejects requests without a valid bearer service token
// and records the token subject as the caller.
func RequireServiceToken(validator TokenValidator, logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				m.IncrementAuthFailures()
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				m.IncrementAuthFailures()
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			ctx = requestcontext.WithCaller(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
