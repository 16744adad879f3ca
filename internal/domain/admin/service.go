package admin

import "context"

// Service defines admin account management and the action log surface.
type Service interface {
	// Login checks credentials and returns a signed access token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// CreateUser registers a new administrator.
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// ListUsers returns all administrators.
	ListUsers(ctx context.Context) ([]UserResponse, error)

	// DeleteUser removes an administrator.
	DeleteUser(ctx context.Context, id string) error

	// Logs returns the most recent action log entries.
	Logs(ctx context.Context, limit int) ([]LogEntryResponse, error)
}
