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

func newUserAdminService(t *testing.T) (*service.UserAdminService, *mock_service.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockUserRepository(ctrl)
	return service.NewUserAdminService(repo, testLogger), repo
}

func TestUserAdminRequiresAdminRole(t *testing.T) {
	svc, _ := newUserAdminService(t)
	target := uuid.New()

	for _, role := range []domain.Role{domain.RoleSubAdmin, domain.RoleUser} {
		actor := domain.Actor{ID: uuid.New(), Role: role}

		if _, err := svc.ListUsers(context.Background(), actor); !errors.Is(err, e.ErrForbidden) {
			t.Fatalf("%s list: expected forbidden, got %v", role, err)
		}
		if _, err := svc.UpdateRole(context.Background(), actor, target, domain.RoleSubAdmin); !errors.Is(err, e.ErrForbidden) {
			t.Fatalf("%s update role: expected forbidden, got %v", role, err)
		}
		if err := svc.DeleteUser(context.Background(), actor, target); !errors.Is(err, e.ErrForbidden) {
			t.Fatalf("%s delete: expected forbidden, got %v", role, err)
		}
	}
}

func TestUpdateRolePromotesUser(t *testing.T) {
	svc, repo := newUserAdminService(t)
	admin := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	target := uuid.New()

	repo.EXPECT().UpdateRole(gomock.Any(), target, domain.RoleSubAdmin).Return(nil)
	repo.EXPECT().Get(gomock.Any(), target).
		Return(&domain.User{ID: target, Role: domain.RoleSubAdmin}, nil)

	u, err := svc.UpdateRole(context.Background(), admin, target, domain.RoleSubAdmin)
	if err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	if u.Role != domain.RoleSubAdmin {
		t.Fatalf("returned user should carry the new role, got %s", u.Role)
	}
}

func TestUpdateRoleRejectsSelfAndUnknownRole(t *testing.T) {
	svc, _ := newUserAdminService(t)
	admin := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

	if _, err := svc.UpdateRole(context.Background(), admin, admin.ID, domain.RoleUser); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("self role change: expected invalid input, got %v", err)
	}
	if _, err := svc.UpdateRole(context.Background(), admin, uuid.New(), domain.Role("superuser")); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("unknown role: expected invalid input, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	svc, repo := newUserAdminService(t)
	admin := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	target := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), target).Return(nil)

	if err := svc.DeleteUser(context.Background(), admin, target); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), admin, admin.ID); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("self delete: expected invalid input, got %v", err)
	}
}

func TestStatsOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockStatsRepository(ctrl)
	svc := service.NewStatsService(repo)

	repo.EXPECT().CountByStatus(gomock.Any()).Return(map[domain.ViolationStatus]int64{
		domain.StatusPending:  3,
		domain.StatusResolved: 2,
	}, nil)
	repo.EXPECT().CountByType(gomock.Any()).Return(map[domain.ViolationType]int64{
		domain.TypeSpeeding: 4,
		domain.TypeRedLight: 1,
	}, nil)

	stats, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if stats.Total != 5 {
		t.Fatalf("total should be the sum over statuses, got %d", stats.Total)
	}
	if stats.ByType[domain.TypeSpeeding] != 4 {
		t.Fatalf("type counts lost, got %v", stats.ByType)
	}
}
