package repositories

import (
	"context"
	"time"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]domain.User, int, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user; returns ErrDuplicate on a taken email.
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	MarkLastLogin(ctx context.Context, userID string, at time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
