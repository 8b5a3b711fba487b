package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/core/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
	"github.com/subsadmin/subsadmin_backend/internal/utils"
	"github.com/subsadmin/subsadmin_backend/pkg/config"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	cfg := &config.Config{
		JWTSecret:         "test-secret-key-for-auth-suite",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "subsadmin-backend-test",
	}
	suite.service = services.NewAuthService(cfg, suite.mockUserRepo)
}

func (suite *AuthServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := suite.activeUser("correct horse battery")

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("MarkLastLogin", ctx, user.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    " Admin@Example.COM ",
		Password: "correct horse battery",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(int64(3600), resp.ExpiresIn)
	suite.Equal(user.UserID, resp.User.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	user := suite.activeUser("correct horse battery")

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    user.Email,
		Password: "wrong password",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailSameError() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation, "unknown email must not be distinguishable from a wrong password")
}

func (suite *AuthServiceTestSuite) TestLogin_DisabledUserRejected() {
	ctx := context.Background()
	user := suite.activeUser("correct horse battery")
	user.Status = domain.UserDisabled

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    user.Email,
		Password: "correct horse battery",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRefresh_IssuesNewToken() {
	ctx := context.Background()
	user := suite.activeUser("correct horse battery")

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	resp, err := suite.service.Refresh(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.Equal(user.UserID, resp.User.UserID)
}

func (suite *AuthServiceTestSuite) TestRefresh_DisabledUserRejected() {
	ctx := context.Background()
	user := suite.activeUser("correct horse battery")
	user.Status = domain.UserDisabled

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	_, err := suite.service.Refresh(ctx, user.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
