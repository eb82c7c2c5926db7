package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/config"
	"github.com/Icer178/traffic-val/internal/domain"
)

func newTestManager(ttl time.Duration) *TokenManager {
	return NewTokenManager(config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  ttl,
		Issuer:    "traffic-val-test",
	})
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := newTestManager(time.Hour)
	u := &domain.User{
		ID:   uuid.New(),
		Name: "Jamie",
		Role: domain.RoleSubAdmin,
	}

	token, err := m.Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != u.ID.String() {
		t.Fatalf("subject = %s, want %s", claims.Subject, u.ID)
	}
	if claims.Role != string(domain.RoleSubAdmin) {
		t.Fatalf("role = %s", claims.Role)
	}
	if claims.Issuer != "traffic-val-test" {
		t.Fatalf("issuer = %s", claims.Issuer)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := newTestManager(time.Hour).Issue(&domain.User{ID: uuid.New(), Role: domain.RoleUser})
	if err != nil {
		t.Fatal(err)
	}

	other := NewTokenManager(config.AuthConfig{JWTSecret: "different", TokenTTL: time.Hour})
	if _, err := other.Verify(token); err == nil {
		t.Fatal("token signed with another secret must not verify")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := newTestManager(-time.Minute)
	token, err := m.Issue(&domain.User{ID: uuid.New(), Role: domain.RoleUser})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Fatal("expired token must not verify")
	}
}

func TestVerifyRejectsTampered(t *testing.T) {
	m := newTestManager(time.Hour)
	token, err := m.Issue(&domain.User{ID: uuid.New(), Role: domain.RoleUser})
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + "AAAA"
	if _, err := m.Verify(tampered); err == nil {
		t.Fatal("tampered signature must not verify")
	}
}
