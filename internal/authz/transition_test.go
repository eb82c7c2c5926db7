package authz

import (
	"errors"
	"testing"

	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/pkg/e"
)

func TestCheckStatusTarget(t *testing.T) {
	all := []domain.ViolationStatus{
		domain.StatusPending, domain.StatusUnderReview,
		domain.StatusResolved, domain.StatusDismissed,
	}

	t.Run("admin reaches every status", func(t *testing.T) {
		for _, s := range all {
			if err := CheckStatusTarget(domain.RoleAdmin, s); err != nil {
				t.Fatalf("admin -> %s: %v", s, err)
			}
		}
	})

	t.Run("sub_admin limited to triage statuses", func(t *testing.T) {
		for _, s := range []domain.ViolationStatus{domain.StatusPending, domain.StatusUnderReview} {
			if err := CheckStatusTarget(domain.RoleSubAdmin, s); err != nil {
				t.Fatalf("sub_admin -> %s: %v", s, err)
			}
		}
		for _, s := range []domain.ViolationStatus{domain.StatusResolved, domain.StatusDismissed} {
			if err := CheckStatusTarget(domain.RoleSubAdmin, s); !errors.Is(err, e.ErrForbidden) {
				t.Fatalf("sub_admin -> %s: expected forbidden, got %v", s, err)
			}
		}
	})

	t.Run("user may not set any status", func(t *testing.T) {
		for _, s := range all {
			if err := CheckStatusTarget(domain.RoleUser, s); !errors.Is(err, e.ErrForbidden) {
				t.Fatalf("user -> %s: expected forbidden, got %v", s, err)
			}
		}
	})

	t.Run("unknown status is invalid input, not forbidden", func(t *testing.T) {
		err := CheckStatusTarget(domain.RoleAdmin, domain.ViolationStatus("archived"))
		if !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})
}

// Reverting a closed case is allowed for admins: the current status never
// enters the decision, only the target does.
func TestStatusTargetIgnoresSourceState(t *testing.T) {
	if err := CheckStatusTarget(domain.RoleAdmin, domain.StatusPending); err != nil {
		t.Fatalf("admin reopening to pending should be allowed, got %v", err)
	}
}
