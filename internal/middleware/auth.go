package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/auth"
	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/pkg/e"
)

type ctxKey string

const actorKey ctxKey = "actor"

// Authenticate resolves the request's Actor from the bearer token. This is
// the identity-provider boundary: a token with a missing or unknown role
// claim resolves to the user role here, and nowhere else in the codebase.
func Authenticate(tokens *auth.TokenManager, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				unauthenticated(w)
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				logger.Debug("token verification failed", slog.Any("error", err))
				unauthenticated(w)
				return
			}

			id, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("token subject is not a uuid", slog.String("sub", claims.Subject))
				unauthenticated(w)
				return
			}

			role, err := domain.ParseRole(claims.Role)
			if err != nil {
				role = domain.RoleUser
			}

			actor := domain.Actor{ID: id, Role: role}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireRole guards a route group to the listed roles. It assumes
// Authenticate already ran.
func RequireRole(logger *slog.Logger, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := ActorFromContext(r.Context())
			if err != nil {
				unauthenticated(w)
				return
			}
			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			logger.Warn("role denied",
				slog.String("actor_id", actor.ID.String()),
				slog.String("role", string(actor.Role)),
				slog.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"forbidden"}`))
		})
	}
}

func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func ActorFromContext(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok {
		return domain.Actor{}, e.ErrUnauthenticated
	}
	return actor, nil
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
