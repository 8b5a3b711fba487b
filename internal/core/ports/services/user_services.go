package services

import (
	"context"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// UserReaderSvc defines read operations for users
type UserReaderSvc interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]domain.User, int, error)
}

// UserWriterSvc defines write operations for users
type UserWriterSvc interface {
	// CreateUser persists a new user; fails with ErrDuplicate on a taken email.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	// EnsureAdminUser creates the initial ADMIN account when no users exist
	// yet. Called at startup; a no-op once any user is present.
	EnsureAdminUser(ctx context.Context, email, password string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}

// AuthSvcFacade defines authentication operations.
type AuthSvcFacade interface {
	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Refresh issues a fresh bearer token for an authenticated user.
	Refresh(ctx context.Context, userID string) (*dto.LoginResponse, error)
}
