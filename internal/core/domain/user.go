package domain

import "time"

// UserRole controls which API surfaces a user can reach.
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleUser       UserRole = "USER"
	RoleAccountant UserRole = "ACCOUNTANT"
	RoleSales      UserRole = "SALES"
	RoleSupport    UserRole = "SUPPORT"
)

// UserStatus indicates whether a user may log in.
type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserDisabled UserStatus = "DISABLED"
)

// User is an operator of the back office.
type User struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"` // unique
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
}
