package dto

import (
	"time"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// CreateUserRequest defines the structure for creating a new user.
type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ADMIN USER ACCOUNTANT SALES SUPPORT"`
}

// UpdateUserRequest defines the updatable fields of a user.
type UpdateUserRequest struct {
	Name   *string            `json:"name"`
	Role   *domain.UserRole   `json:"role" binding:"omitempty,oneof=ADMIN USER ACCOUNTANT SALES SUPPORT"`
	Status *domain.UserStatus `json:"status" binding:"omitempty,oneof=ACTIVE DISABLED"`
}

// UserResponse defines the API representation of a user. The password hash
// never leaves the service layer.
type UserResponse struct {
	UserID      string            `json:"userID"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Role        domain.UserRole   `json:"role"`
	Status      domain.UserStatus `json:"status"`
	LastLoginAt *time.Time        `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// UserListResponse is a paginated list of users.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Pagination
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Status:      u.Status,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// ToUserListResponse converts a page of users.
func ToUserListResponse(users []domain.User, page, pageSize, total int) UserListResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	return UserListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}
