package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
	"github.com/chafiq1992/attendance-app/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultLogLimit = 200

type AdminServiceImpl struct {
	userRepo admin.UserRepository
	logRepo  admin.LogRepository
	jwtSvc   jwt.Service
}

func NewAdminService(userRepo admin.UserRepository, logRepo admin.LogRepository, jwtSvc jwt.Service) admin.Service {
	return &AdminServiceImpl{
		userRepo: userRepo,
		logRepo:  logRepo,
		jwtSvc:   jwtSvc,
	}
}

// Login implements admin.Service.
func (s *AdminServiceImpl) Login(ctx context.Context, req admin.LoginRequest) (admin.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.LoginResponse{}, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, admin.ErrUserNotFound) {
			return admin.LoginResponse{}, admin.ErrInvalidCredentials
		}
		return admin.LoginResponse{}, fmt.Errorf("failed to get admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return admin.LoginResponse{}, admin.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return admin.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return admin.LoginResponse{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// CreateUser implements admin.Service.
func (s *AdminServiceImpl) CreateUser(ctx context.Context, req admin.CreateUserRequest) (admin.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return admin.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, admin.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return admin.UserResponse{}, err
	}

	s.logAction(ctx, "create_admin_user", fmt.Sprintf(`{"id":%q,"username":%q}`, created.ID, created.Username))
	return toUserResponse(created), nil
}

// ListUsers implements admin.Service.
func (s *AdminServiceImpl) ListUsers(ctx context.Context) ([]admin.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin users: %w", err)
	}

	responses := make([]admin.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses, nil
}

// DeleteUser implements admin.Service.
func (s *AdminServiceImpl) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logAction(ctx, "delete_admin_user", fmt.Sprintf(`{"id":%q}`, id))
	return nil
}

// Logs implements admin.Service.
func (s *AdminServiceImpl) Logs(ctx context.Context, limit int) ([]admin.LogEntryResponse, error) {
	if limit <= 0 || limit > defaultLogLimit {
		limit = defaultLogLimit
	}

	entries, err := s.logRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list action logs: %w", err)
	}

	responses := make([]admin.LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, admin.LogEntryResponse{
			ID:        e.ID,
			Action:    e.Action,
			Data:      e.Data,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (s *AdminServiceImpl) logAction(ctx context.Context, action, data string) {
	// Action log failures never abort the action itself.
	if err := s.logRepo.Append(ctx, action, data); err != nil {
		slog.Warn("Failed to append action log", "action", action, "error", err)
	}
}

func toUserResponse(u admin.User) admin.UserResponse {
	return admin.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
