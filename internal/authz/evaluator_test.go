package authz

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/pkg/e"
)

func strPtr(s string) *string { return &s }

func statusPtr(s domain.ViolationStatus) *domain.ViolationStatus { return &s }

func testViolation(owner uuid.UUID) *domain.Violation {
	return &domain.Violation{
		ID:      uuid.New(),
		OwnerID: owner,
		Type:    domain.TypeSpeeding,
		Status:  domain.StatusPending,
	}
}

func TestCanGet(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	v := testViolation(owner)

	tests := []struct {
		name      string
		actor     domain.Actor
		wantAllow bool
	}{
		{"admin reads any record", domain.Actor{ID: other, Role: domain.RoleAdmin}, true},
		{"sub_admin reads any record", domain.Actor{ID: other, Role: domain.RoleSubAdmin}, true},
		{"user reads own record", domain.Actor{ID: owner, Role: domain.RoleUser}, true},
		{"user denied on foreign record", domain.Actor{ID: other, Role: domain.RoleUser}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CanGet(tc.actor, v)
			if tc.wantAllow && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tc.wantAllow && !errors.Is(err, e.ErrForbidden) {
				t.Fatalf("expected forbidden, got %v", err)
			}
		})
	}
}

func TestCanGetDeterministic(t *testing.T) {
	owner := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleUser}
	v := testViolation(owner)

	first := CanGet(actor, v)
	for i := 0; i < 10; i++ {
		if got := CanGet(actor, v); (got == nil) != (first == nil) {
			t.Fatalf("verdict changed between identical calls: %v vs %v", first, got)
		}
	}
}

func TestCanDelete(t *testing.T) {
	if err := CanDelete(domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("admin delete should be allowed, got %v", err)
	}
	for _, role := range []domain.Role{domain.RoleSubAdmin, domain.RoleUser} {
		err := CanDelete(domain.Actor{ID: uuid.New(), Role: role})
		if !errors.Is(err, e.ErrForbidden) {
			t.Fatalf("role %s: expected forbidden, got %v", role, err)
		}
	}
}

func TestScopeList(t *testing.T) {
	userID := uuid.New()

	scope := ScopeList(domain.Actor{ID: userID, Role: domain.RoleUser})
	if scope.OwnerID == nil || *scope.OwnerID != userID {
		t.Fatalf("user scope should pin owner to %s, got %v", userID, scope.OwnerID)
	}

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSubAdmin} {
		scope := ScopeList(domain.Actor{ID: userID, Role: role})
		if scope.OwnerID != nil {
			t.Fatalf("role %s should see the full set, got owner filter %v", role, *scope.OwnerID)
		}
	}
}

func TestCheckUpdateFieldPermissions(t *testing.T) {
	owner := uuid.New()
	v := testViolation(owner)

	tests := []struct {
		name      string
		actor     domain.Actor
		patch     domain.UpdateViolationRequest
		wantAllow bool
	}{
		{
			name:      "user appends evidence to own record",
			actor:     domain.Actor{ID: owner, Role: domain.RoleUser},
			patch:     domain.UpdateViolationRequest{EvidenceURLs: &[]string{"https://cdn.example.com/a.jpg"}},
			wantAllow: true,
		},
		{
			name:      "user may not touch status",
			actor:     domain.Actor{ID: owner, Role: domain.RoleUser},
			patch:     domain.UpdateViolationRequest{Status: statusPtr(domain.StatusPending)},
			wantAllow: false,
		},
		{
			name:      "user may not edit description even on own record",
			actor:     domain.Actor{ID: owner, Role: domain.RoleUser},
			patch:     domain.UpdateViolationRequest{Description: strPtr("edited")},
			wantAllow: false,
		},
		{
			name:      "user denied on foreign record before field checks",
			actor:     domain.Actor{ID: uuid.New(), Role: domain.RoleUser},
			patch:     domain.UpdateViolationRequest{EvidenceURLs: &[]string{"https://cdn.example.com/a.jpg"}},
			wantAllow: false,
		},
		{
			name:      "sub_admin sets triage status with notes",
			actor:     domain.Actor{ID: uuid.New(), Role: domain.RoleSubAdmin},
			patch:     domain.UpdateViolationRequest{Status: statusPtr(domain.StatusUnderReview), AdminNotes: strPtr("checking footage")},
			wantAllow: true,
		},
		{
			name:      "sub_admin may not touch evidence",
			actor:     domain.Actor{ID: uuid.New(), Role: domain.RoleSubAdmin},
			patch:     domain.UpdateViolationRequest{EvidenceURLs: &[]string{"https://cdn.example.com/a.jpg"}},
			wantAllow: false,
		},
		{
			name:      "sub_admin may not edit report content",
			actor:     domain.Actor{ID: uuid.New(), Role: domain.RoleSubAdmin},
			patch:     domain.UpdateViolationRequest{Location: strPtr("5th and Main")},
			wantAllow: false,
		},
		{
			name:  "admin edits content and closes in one patch",
			actor: domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin},
			patch: domain.UpdateViolationRequest{
				Status:      statusPtr(domain.StatusDismissed),
				Description: strPtr("duplicate of an earlier report"),
			},
			wantAllow: true,
		},
		{
			name:      "admin edits evidence",
			actor:     domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin},
			patch:     domain.UpdateViolationRequest{EvidenceURLs: &[]string{}},
			wantAllow: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckUpdate(tc.actor, v, &tc.patch)
			if tc.wantAllow && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tc.wantAllow && !errors.Is(err, e.ErrForbidden) {
				t.Fatalf("expected forbidden, got %v", err)
			}
		})
	}
}

// A single disallowed key must poison the whole patch, even when every other
// key is allowed for the role.
func TestCheckUpdateWholePatchDenied(t *testing.T) {
	v := testViolation(uuid.New())
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleSubAdmin}

	patch := domain.UpdateViolationRequest{
		Status:     statusPtr(domain.StatusUnderReview),
		AdminNotes: strPtr("ok so far"),
		Location:   strPtr("not yours to change"),
	}

	if err := CheckUpdate(actor, v, &patch); !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("mixed patch must be denied entirely, got %v", err)
	}
}

// The sub_admin mixed patch from triage: resolved is outside the reachable
// target set, so the adminNotes part must not survive either.
func TestCheckUpdateSubAdminResolveDenied(t *testing.T) {
	v := testViolation(uuid.New())
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleSubAdmin}

	patch := domain.UpdateViolationRequest{
		Status:     statusPtr(domain.StatusResolved),
		AdminNotes: strPtr("looks legit"),
	}

	err := CheckUpdate(actor, v, &patch)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	var fe *e.ForbiddenError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a ForbiddenError with a reason, got %T", err)
	}
	if fe.Reason == "" {
		t.Fatal("denial should carry a reason for the response body")
	}
}

func TestPatchFields(t *testing.T) {
	empty := domain.UpdateViolationRequest{}
	if got := PatchFields(&empty); len(got) != 0 {
		t.Fatalf("empty patch should list no fields, got %v", got)
	}

	patch := domain.UpdateViolationRequest{
		Description:  strPtr("d"),
		Status:       statusPtr(domain.StatusPending),
		EvidenceURLs: &[]string{},
	}
	got := PatchFields(&patch)
	want := []Field{FieldDescription, FieldStatus, FieldEvidenceURLs}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAllowedFieldsPerRole(t *testing.T) {
	user := AllowedFields(domain.RoleUser)
	if len(user) != 1 {
		t.Fatalf("user field set should contain exactly evidenceUrls, got %v", user)
	}
	if _, ok := user[FieldEvidenceURLs]; !ok {
		t.Fatal("user must be allowed to change evidenceUrls")
	}

	sub := AllowedFields(domain.RoleSubAdmin)
	if len(sub) != 2 {
		t.Fatalf("sub_admin field set should be status+adminNotes, got %v", sub)
	}

	admin := AllowedFields(domain.RoleAdmin)
	for _, f := range append([]Field{FieldStatus, FieldAdminNotes, FieldEvidenceURLs}, contentFields...) {
		if _, ok := admin[f]; !ok {
			t.Fatalf("admin must be allowed to change %s", f)
		}
	}
}
