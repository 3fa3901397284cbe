package middleware

import (
	"net/http"
	"strings"

	"classsync/internal/ctxdata"
	"classsync/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// NewAuthMiddleware accepts "Authorization: Bearer <jwt>" and puts the
// token subject into the request context.
func NewAuthMiddleware(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no bearer token", zap.String("path", r.URL.Path))
				}
				writeUnauthorized(w)
				return
			}

			userID, err := tokens.Parse(strings.TrimSpace(token))
			if err != nil {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "invalid token", zap.String("path", r.URL.Path), zap.Error(err))
				}
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxdata.WithUserID(ctx, userID)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`))
}
