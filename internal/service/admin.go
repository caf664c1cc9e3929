package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/repository"
	"rewards_miniapp/pkg/auth"
	"rewards_miniapp/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AdminService struct {
	repo   AdminRepository
	tokens *auth.AdminTokens
	policy RewardPolicy
}

func NewAdminService(repo AdminRepository, tokens *auth.AdminTokens, policy RewardPolicy) *AdminService {
	return &AdminService{
		repo:   repo,
		tokens: tokens,
		policy: policy,
	}
}

// Login checks the credentials and returns a signed admin token.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	admin, err := s.repo.GetAdminByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return "", nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if !admin.IsActive {
		return "", nil, fmt.Errorf("%w: account is disabled", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	now := s.policy.now()
	token, _, err := s.tokens.Issue(admin.ID.String(), string(admin.Role), now)
	if err != nil {
		return "", nil, err
	}

	if err := s.repo.TouchAdminLogin(ctx, admin.ID, now); err != nil {
		logger.Logger().Warn("failed to stamp admin login", zap.String("admin_id", admin.ID.String()), zap.Error(err))
	} else {
		admin.LastLogin = &now
	}

	return token, admin, nil
}

// Authorize resolves a token to an active admin.
func (s *AdminService) Authorize(ctx context.Context, token string) (*model.Admin, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrUnauthorized)
	}

	admin, err := s.repo.GetAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: admin not found", ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if !admin.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", ErrUnauthorized)
	}

	return admin, nil
}

func (s *AdminService) CreateAdmin(ctx context.Context, actor *model.Admin, input model.AdminInput) (*model.Admin, error) {
	if actor == nil || actor.Role != model.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: super admin role required", ErrForbidden)
	}
	return s.createAdmin(ctx, input)
}

func (s *AdminService) createAdmin(ctx context.Context, input model.AdminInput) (*model.Admin, error) {
	input.Username = strings.TrimSpace(input.Username)
	if input.Role == "" {
		input.Role = model.RoleAdmin
	}

	switch {
	case input.Username == "":
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	case len(input.Password) < minPasswordLength:
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	case input.Role != model.RoleAdmin && input.Role != model.RoleSuperAdmin:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
		Email:        strings.TrimSpace(input.Email),
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    s.policy.now(),
	}

	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", mapRepoError(err))
	}
	return admin, nil
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]*model.Admin, error) {
	admins, err := s.repo.ListAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// EnsureDefaultAdmin creates a super admin from input when no admin exists.
// It returns nil when admins are already present.
func (s *AdminService) EnsureDefaultAdmin(ctx context.Context, input model.AdminInput) (*model.Admin, error) {
	count, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil, nil
	}

	input.Role = model.RoleSuperAdmin
	return s.createAdmin(ctx, input)
}
