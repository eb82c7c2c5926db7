package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/internal/service"
	mock_service "github.com/Icer178/traffic-val/internal/service/mocks"
	"github.com/Icer178/traffic-val/pkg/e"
)

func newCachedService(t *testing.T) (*service.CachedViolationService, *mock_service.MockViolationUseCases, *mock_service.MockViolationCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock_service.NewMockViolationUseCases(ctrl)
	cache := mock_service.NewMockViolationCache(ctrl)
	return service.NewCachedViolationService(inner, cache, testLogger), inner, cache
}

func TestCachedGetHitSkipsInner(t *testing.T) {
	svc, _, cache := newCachedService(t)
	owner := uuid.New()
	v := storedViolation(owner)

	cache.EXPECT().Get(gomock.Any(), v.ID).Return(v, nil)

	got, err := svc.Get(context.Background(), domain.Actor{ID: owner, Role: domain.RoleUser}, v.ID)
	if err != nil {
		t.Fatalf("cached get failed: %v", err)
	}
	if got.ID != v.ID {
		t.Fatal("expected the cached record")
	}
}

// A cache hit is not an authorization bypass: the visibility rule still runs
// against the cached snapshot.
func TestCachedGetHitStillChecksOwnership(t *testing.T) {
	svc, _, cache := newCachedService(t)
	v := storedViolation(uuid.New())

	cache.EXPECT().Get(gomock.Any(), v.ID).Return(v, nil)

	_, err := svc.Get(context.Background(), domain.Actor{ID: uuid.New(), Role: domain.RoleUser}, v.ID)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected forbidden on cached foreign record, got %v", err)
	}
}

func TestCachedGetMissFillsCache(t *testing.T) {
	svc, inner, cache := newCachedService(t)
	owner := uuid.New()
	actor := domain.Actor{ID: owner, Role: domain.RoleUser}
	v := storedViolation(owner)

	cache.EXPECT().Get(gomock.Any(), v.ID).Return(nil, nil)
	inner.EXPECT().Get(gomock.Any(), actor, v.ID).Return(v, nil)
	cache.EXPECT().Set(gomock.Any(), v).Return(nil)

	if _, err := svc.Get(context.Background(), actor, v.ID); err != nil {
		t.Fatalf("get failed: %v", err)
	}
}

func TestCachedGetDegradesOnCacheError(t *testing.T) {
	svc, inner, cache := newCachedService(t)
	owner := uuid.New()
	actor := domain.Actor{ID: owner, Role: domain.RoleUser}
	v := storedViolation(owner)

	cache.EXPECT().Get(gomock.Any(), v.ID).Return(nil, errors.New("redis down"))
	inner.EXPECT().Get(gomock.Any(), actor, v.ID).Return(v, nil)
	cache.EXPECT().Set(gomock.Any(), v).Return(errors.New("redis down"))

	got, err := svc.Get(context.Background(), actor, v.ID)
	if err != nil {
		t.Fatalf("cache failure must not fail the read, got %v", err)
	}
	if got.ID != v.ID {
		t.Fatal("expected the inner record")
	}
}

func TestCachedUpdateInvalidates(t *testing.T) {
	svc, inner, cache := newCachedService(t)
	admin := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	v := storedViolation(uuid.New())

	status := domain.StatusResolved
	patch := domain.UpdateViolationRequest{Status: &status}

	inner.EXPECT().Update(gomock.Any(), admin, v.ID, patch).Return(v, nil)
	cache.EXPECT().Invalidate(gomock.Any(), v.ID).Return(nil)

	if _, err := svc.Update(context.Background(), admin, v.ID, patch); err != nil {
		t.Fatalf("update failed: %v", err)
	}
}

func TestCachedUpdateDenialLeavesCacheAlone(t *testing.T) {
	svc, inner, _ := newCachedService(t)
	sub := domain.Actor{ID: uuid.New(), Role: domain.RoleSubAdmin}
	id := uuid.New()

	status := domain.StatusResolved
	patch := domain.UpdateViolationRequest{Status: &status}

	inner.EXPECT().Update(gomock.Any(), sub, id, patch).
		Return(nil, e.Forbiddenf("sub-admins can only set status to pending or under_review"))

	if _, err := svc.Update(context.Background(), sub, id, patch); !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCachedDeleteInvalidates(t *testing.T) {
	svc, inner, cache := newCachedService(t)
	admin := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	id := uuid.New()

	inner.EXPECT().Delete(gomock.Any(), admin, id).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any(), id).Return(nil)

	if err := svc.Delete(context.Background(), admin, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}
