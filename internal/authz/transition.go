package authz

import (
	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/pkg/e"
)

// Status writes are constrained by a role-scoped reachable target set, not a
// source->target transition table: the current status never enters the
// decision. Admins may set any status, including reverting resolved back to
// pending; sub-admins can advance triage but never close a case. Adding
// source-state constraints here would be a behavior change, not a fix.
var statusTargets = map[domain.Role]map[domain.ViolationStatus]struct{}{
	domain.RoleAdmin: {
		domain.StatusPending:     {},
		domain.StatusUnderReview: {},
		domain.StatusResolved:    {},
		domain.StatusDismissed:   {},
	},
	domain.RoleSubAdmin: {
		domain.StatusPending:     {},
		domain.StatusUnderReview: {},
	},
	// RoleUser has no entry: status is not in the user's field set at all,
	// so CheckUpdate denies before this table is consulted.
}

// CheckStatusTarget reports whether the role may write the given status.
func CheckStatusTarget(role domain.Role, target domain.ViolationStatus) error {
	if _, err := domain.ParseViolationStatus(string(target)); err != nil {
		return e.Wrap("status", e.ErrInvalidInput)
	}
	targets, ok := statusTargets[role]
	if !ok {
		return e.Forbiddenf("role %s may not change status", role)
	}
	if _, ok := targets[target]; !ok {
		return e.Forbiddenf("sub-admins can only set status to pending or under_review")
	}
	return nil
}
