package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Icer178/traffic-val/internal/auth"
	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/pkg/e"
	"github.com/Icer178/traffic-val/pkg/validator"
)

type AuthService struct {
	users  UserRepository
	tokens *auth.TokenManager
	logger *slog.Logger
}

func NewAuthService(users UserRepository, tokens *auth.TokenManager, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// SignUp registers a reporter account. New accounts always get the user
// role; promotion to staff happens only through the admin role endpoint.
func (s *AuthService) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, string, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return nil, "", fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, "", fmt.Errorf("email already registered: %w", e.ErrConflict)
	} else if !errors.Is(err, e.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", e.Wrap("hash password", err)
	}

	u := &domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         domain.RoleUser,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", e.Wrap("issue token", err)
	}

	s.logger.Info("user signed up", slog.String("user_id", u.ID.String()))
	return u, token, nil
}

func (s *AuthService) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.User, string, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return nil, "", fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, "", fmt.Errorf("invalid credentials: %w", e.ErrUnauthenticated)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", e.ErrUnauthenticated)
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", e.Wrap("issue token", err)
	}
	return u, token, nil
}
