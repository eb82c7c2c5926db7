package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/pkg/e"
)

// UserAdminService is the admin-only account management surface. The router
// already gates the admin group by role; the checks here keep the rule
// enforced even if a future caller bypasses the middleware.
type UserAdminService struct {
	repo   UserRepository
	logger *slog.Logger
}

func NewUserAdminService(repo UserRepository, logger *slog.Logger) *UserAdminService {
	return &UserAdminService{repo: repo, logger: logger}
}

func (s *UserAdminService) ListUsers(ctx context.Context, actor domain.Actor) ([]*domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, e.Forbiddenf("admin access required")
	}
	return s.repo.List(ctx)
}

func (s *UserAdminService) UpdateRole(ctx context.Context, actor domain.Actor, id uuid.UUID, role domain.Role) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, e.Forbiddenf("admin access required")
	}
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role: %w", e.ErrInvalidInput)
	}
	if id == actor.ID {
		return nil, fmt.Errorf("cannot change your own role: %w", e.ErrInvalidInput)
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}

	s.logger.Info("user role updated",
		slog.String("user_id", id.String()),
		slog.String("role", string(role)),
		slog.String("changed_by", actor.ID.String()),
	)
	return s.repo.Get(ctx, id)
}

func (s *UserAdminService) DeleteUser(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if actor.Role != domain.RoleAdmin {
		return e.Forbiddenf("admin access required")
	}
	if id == actor.ID {
		return fmt.Errorf("cannot delete your own account: %w", e.ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted",
		slog.String("user_id", id.String()),
		slog.String("deleted_by", actor.ID.String()),
	)
	return nil
}
