package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jacketex894/login-project/internal/domain/entity"
	domainerrors "github.com/jacketex894/login-project/internal/domain/errors"
	mockRepo "github.com/jacketex894/login-project/internal/mocks/repository"
	mockService "github.com/jacketex894/login-project/internal/mocks/service"
	"github.com/jacketex894/login-project/internal/usecase"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return profileServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestProfileService_Register_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "secret-password",
		Email:    "alice@example.com",
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("$2b$12$hashedhashedhashedhashedhashedhashedhashedhashedhashedhh", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.NotEqual(t, "secret-password", user.PasswordHash)
			user.ID = 7
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "User successfully registered", output.Message)
	assert.Equal(t, "alice", output.Username)
}

func TestProfileService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "secret-password",
		Email:    "alice@example.com",
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("$2b$12$hashedhashedhashedhashedhashedhashedhashedhashedhashedhh", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUsernameAlreadyExists)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameAlreadyExists)
}

func TestProfileService_Register_HashFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "secret-password",
		Email:    "alice@example.com",
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("", assert.AnError)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestProfileService_Login_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           42,
		Username:     "alice",
		PasswordHash: "$2b$12$hashedhashedhashedhashedhashedhashedhashedhashedhashedhh",
		Email:        "alice@example.com",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	fx.hasher.EXPECT().Check("secret-password", stored.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(uint64(42)).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "Login success", output.Message)
	assert.Equal(t, "signed-token", output.AccessToken)
}

func TestProfileService_Login_UnknownUsername(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, domainerrors.ErrQueryUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "nobody",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestProfileService_Login_WrongPassword(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           42,
		Username:     "alice",
		PasswordHash: "$2b$12$hashedhashedhashedhashedhashedhashedhashedhashedhashedhh",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong-password", stored.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// An unknown username and a wrong password must be indistinguishable to the
// caller, otherwise the login endpoint leaks which usernames exist.
func TestProfileService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           42,
		Username:     "alice",
		PasswordHash: "$2b$12$hashedhashedhashedhashedhashedhashedhashedhashedhashedhh",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, domainerrors.ErrQueryUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong-password", stored.PasswordHash).Return(false)

	_, unknownUserErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: "whatever"})
	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong-password"})

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}

func TestProfileService_Login_QueryFailurePropagates(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, domainerrors.ErrQueryUser)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "secret-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrQueryUser)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestProfileService_UpdateAccount_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("new-password").Return("$2b$12$newhashnewhashnewhashnewhashnewhashnewhashnewhashnewhash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, uint64(42), "$2b$12$newhashnewhashnewhashnewhashnewhashnewhashnewhashnewhash", "new@example.com").
		Return(nil)

	err := fx.service.UpdateAccount(ctx, &usecase.UpdateAccountInput{
		UserID:      42,
		NewPassword: "new-password",
		NewEmail:    "new@example.com",
	})

	require.NoError(t, err)
}

func TestProfileService_UpdateAccount_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("new-password").Return("$2b$12$newhashnewhashnewhashnewhashnewhashnewhashnewhashnewhash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, uint64(99), mock.AnythingOfType("string"), "new@example.com").
		Return(domainerrors.ErrUpdateUserNotFound)

	err := fx.service.UpdateAccount(ctx, &usecase.UpdateAccountInput{
		UserID:      99,
		NewPassword: "new-password",
		NewEmail:    "new@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUpdateUserNotFound)
}

func TestProfileService_DeleteAccount_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().Delete(ctx, uint64(42)).Return(nil)

	err := fx.service.DeleteAccount(ctx, uint64(42))

	require.NoError(t, err)
}

func TestProfileService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().Delete(ctx, uint64(99)).Return(domainerrors.ErrDeleteUserNotFound)

	err := fx.service.DeleteAccount(ctx, uint64(99))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeleteUserNotFound)
}
