package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
	"github.com/subsadmin/subsadmin_backend/internal/utils"
	"github.com/subsadmin/subsadmin_backend/pkg/config"
)

// authService provides credential verification and token issuance.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

// Login verifies credentials and issues a bearer token. A wrong email and a
// wrong password produce the same error so the response never confirms which
// part was wrong.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogWarn(ctx, "Login attempt with wrong password", "user_id", user.UserID)
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}

	if user.Status != domain.UserActive {
		return nil, fmt.Errorf("%w: user account is disabled", apperrors.ErrValidation)
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", "user_id", user.UserID)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	now := time.Now()
	if err := s.userRepo.MarkLastLogin(ctx, user.UserID, now); err != nil {
		// Not fatal for the login itself.
		s.LogWarn(ctx, "Failed to record last login", "user_id", user.UserID, "error", err.Error())
	} else {
		user.LastLoginAt = &now
	}

	s.LogInfo(ctx, "User logged in", "user_id", user.UserID)
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.JWTExpiryDuration.Seconds()),
		User:        dto.ToUserResponse(user),
	}, nil
}

// Refresh issues a fresh bearer token for an already-authenticated user,
// re-checking that the account is still active.
func (s *authService) Refresh(ctx context.Context, userID string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user for token refresh: %w", err)
	}
	if user.Status != domain.UserActive {
		return nil, fmt.Errorf("%w: user account is disabled", apperrors.ErrValidation)
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", "user_id", user.UserID)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.JWTExpiryDuration.Seconds()),
		User:        dto.ToUserResponse(user),
	}, nil
}
