package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/kizuna-dev/teambuilder/internal/logger"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// WithUserID returns a context carrying the authenticated user id
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext returns the authenticated user id, if any
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// Verifier checks a bearer token
type Verifier interface {
	Verify(token string) (uuid.UUID, error)
}

// BearerMiddleware rejects requests without a valid player token
func BearerMiddleware(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, BearerPrefix)
			if !found {
				token = ""
			}

			id, err := v.Verify(token)
			if err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgTokenRejected,
					"path", r.URL.Path,
					"error", err)
				w.Header().Set("WWW-Authenticate", `Bearer realm="teambuilder"`)
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx := logger.WithUserID(WithUserID(r.Context(), id), id.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
