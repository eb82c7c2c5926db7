package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/authz"
	"github.com/Icer178/traffic-val/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ViolationUseCases are the request-scoped violation operations. Every
// implementation must consult the authz package before any store write.
type ViolationUseCases interface {
	List(ctx context.Context, actor domain.Actor, filters domain.ViolationFilters) ([]*domain.Violation, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Violation, error)
	Create(ctx context.Context, actor domain.Actor, req domain.CreateViolationRequest) (*domain.Violation, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch domain.UpdateViolationRequest) (*domain.Violation, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	AttachEvidence(ctx context.Context, actor domain.Actor, id uuid.UUID, files []EvidenceFile) (*domain.Violation, error)
}

type ViolationRepository interface {
	Insert(ctx context.Context, v *domain.Violation) error
	List(ctx context.Context, scope authz.ListScope, f domain.ViolationFilters) ([]*domain.Violation, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Violation, error)
	Update(ctx context.Context, v *domain.Violation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ViolationCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Violation, error)
	Set(ctx context.Context, v *domain.Violation) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, payload domain.NotificationPayload) error
}

type EvidenceStore interface {
	Store(ctx context.Context, ownerID, violationID uuid.UUID, seq int, filename string, data []byte) (string, error)
	Delete(ctx context.Context, ownerID, violationID uuid.UUID) error
}

type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsRepository interface {
	CountByStatus(ctx context.Context) (map[domain.ViolationStatus]int64, error)
	CountByType(ctx context.Context) (map[domain.ViolationType]int64, error)
}

type StatsUseCases interface {
	Overview(ctx context.Context) (*domain.ViolationStats, error)
}

type UserAdminUseCases interface {
	ListUsers(ctx context.Context, actor domain.Actor) ([]*domain.User, error)
	UpdateRole(ctx context.Context, actor domain.Actor, id uuid.UUID, role domain.Role) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type AuthUseCases interface {
	SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, string, error)
	SignIn(ctx context.Context, req domain.SignInRequest) (*domain.User, string, error)
}

// EvidenceFile is one uploaded file from a multipart evidence request.
type EvidenceFile struct {
	Name string
	Data []byte
}

type Service struct {
	Violations ViolationUseCases
	Stats      StatsUseCases
	UserAdmin  UserAdminUseCases
	Auth       AuthUseCases
}

func NewService(
	violations ViolationUseCases,
	stats StatsUseCases,
	userAdmin UserAdminUseCases,
	auth AuthUseCases,
) *Service {
	return &Service{
		Violations: violations,
		Stats:      stats,
		UserAdmin:  userAdmin,
		Auth:       auth,
	}
}
