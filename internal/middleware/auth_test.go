package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/auth"
	"github.com/Icer178/traffic-val/internal/config"
	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/internal/middleware"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager(config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		Issuer:    "traffic-val-test",
	})
}

// actorEcho records the actor the middleware resolved.
func actorEcho(got *domain.Actor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := middleware.ActorFromContext(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		*got = actor
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateResolvesActor(t *testing.T) {
	tokens := newTokens()
	u := &domain.User{ID: uuid.New(), Name: "Jamie", Role: domain.RoleSubAdmin}
	token, err := tokens.Issue(u)
	if err != nil {
		t.Fatal(err)
	}

	var got domain.Actor
	h := middleware.Authenticate(tokens, testLogger)(actorEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got.ID != u.ID || got.Role != domain.RoleSubAdmin {
		t.Fatalf("actor = %+v", got)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	tokens := newTokens()
	h := middleware.Authenticate(tokens, testLogger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d", rec.Code)
			}
		})
	}
}

// An unknown role claim collapses to the user role here at the identity
// boundary, never anywhere downstream.
func TestAuthenticateUnknownRoleFallsBackToUser(t *testing.T) {
	secret := "test-secret"
	tokens := newTokens()

	id := uuid.New()
	now := time.Now()
	claims := &auth.Claims{
		Role: "superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}

	var got domain.Actor
	h := middleware.Authenticate(tokens, testLogger)(actorEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got.Role != domain.RoleUser {
		t.Fatalf("unknown role must collapse to user, got %s", got.Role)
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guard := middleware.RequireRole(testLogger, domain.RoleAdmin, domain.RoleSubAdmin)(ok)

	tests := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleSubAdmin, http.StatusOK},
		{domain.RoleUser, http.StatusForbidden},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		actor := domain.Actor{ID: uuid.New(), Role: tc.role}
		req = req.WithContext(middleware.WithActor(req.Context(), actor))
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("role %s: status = %d, want %d", tc.role, rec.Code, tc.want)
		}
	}
}

func TestRequireRoleWithoutActor(t *testing.T) {
	guard := middleware.RequireRole(testLogger, domain.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}
