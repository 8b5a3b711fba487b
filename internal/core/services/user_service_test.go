package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/core/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
	"github.com/subsadmin/subsadmin_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()

	var saved domain.User
	suite.mockUserRepo.
		On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).
		Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Admin User",
		Email:    " Admin@Example.COM ",
		Password: "correct horse battery",
		Role:     domain.RoleAdmin,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("admin@example.com", user.Email, "email is normalized before storage")
	suite.Equal(domain.UserActive, user.Status)
	suite.NotEqual("correct horse battery", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("correct horse battery", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmailRejected() {
	ctx := context.Background()

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Admin User",
		Email:    "admin@example.com",
		Password: "correct horse battery",
		Role:     domain.RoleAdmin,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestUpdateUser_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.User{
		UserID: uuid.NewString(),
		Name:   "Admin User",
		Email:  "admin@example.com",
		Role:   domain.RoleAdmin,
		Status: domain.UserActive,
	}
	disabled := domain.UserDisabled

	suite.mockUserRepo.On("FindUserByID", ctx, existing.UserID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, existing.UserID, dto.UpdateUserRequest{Status: &disabled}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.UserDisabled, user.Status)
	suite.Equal("Admin User", user.Name, "unset fields are left alone")
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_SeedsEmptyTable() {
	ctx := context.Background()

	suite.mockUserRepo.On("ListUsers", ctx, 1, 1).Return([]domain.User{}, 0, nil).Once()

	var saved domain.User
	suite.mockUserRepo.
		On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).
		Return(nil).Once()

	err := suite.service.EnsureAdminUser(ctx, "admin@example.com", "correct horse battery")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, saved.Role)
	suite.Equal("admin@example.com", saved.Email)
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_NoOpWhenUsersExist() {
	ctx := context.Background()

	suite.mockUserRepo.On("ListUsers", ctx, 1, 1).Return([]domain.User{{UserID: uuid.NewString()}}, 1, nil).Once()

	err := suite.service.EnsureAdminUser(ctx, "admin@example.com", "correct horse battery")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_NoOpWithoutCredentials() {
	ctx := context.Background()

	err := suite.service.EnsureAdminUser(ctx, "", "")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "ListUsers", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
