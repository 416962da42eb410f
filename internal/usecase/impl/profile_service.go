// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	deliverycontext "github.com/jacketex894/login-project/internal/delivery/context"
	"github.com/jacketex894/login-project/internal/domain/entity"
	domainerrors "github.com/jacketex894/login-project/internal/domain/errors"
	"github.com/jacketex894/login-project/internal/domain/repository"
	"github.com/jacketex894/login-project/internal/domain/service"
	"github.com/jacketex894/login-project/internal/errors"
	"github.com/jacketex894/login-project/internal/usecase"
)

const (
	registerSuccessMessage = "User successfully registered"
	loginSuccessMessage    = "Login success"
)

// profileService implements the UserUsecase interface. It is stateless per
// request: every operation is an independent orchestration of the hasher,
// the credential store and the token service.
type profileService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService. It receives all dependencies as interfaces.
func NewProfileService(params ProfileServiceParams) usecase.UserUsecase {
	return &profileService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password, builds the account record and persists it.
// Duplicate-key and hash-format failures from the store propagate unchanged.
func (srv *profileService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Email:        input.Email,
		CreatedAt:    time.Now(),
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Uint64("userID", newUser.ID))

	return &usecase.RegisterOutput{
		Message:  registerSuccessMessage,
		Username: newUser.Username,
	}, nil
}

// Login verifies the credentials and issues an access token. An unknown
// username and a wrong password are reported as the same outward failure so
// the endpoint cannot be used to enumerate usernames.
func (srv *profileService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	retrieved, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrQueryUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	if !srv.hasher.Check(input.Password, retrieved.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(retrieved.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Uint64("userID", retrieved.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.LoginOutput{
		Message:     loginSuccessMessage,
		AccessToken: token,
	}, nil
}

// UpdateAccount re-hashes the new password and replaces the account's
// credentials. The store re-validates the hash format before writing.
func (srv *profileService) UpdateAccount(ctx context.Context, input *usecase.UpdateAccountInput) error {
	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during account update", slog.Uint64("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password during account update")
	}

	return srv.userRepo.Update(ctx, input.UserID, newHash, input.NewEmail)
}

// DeleteAccount removes the account. Deletion is final.
func (srv *profileService) DeleteAccount(ctx context.Context, userID uint64) error {
	return srv.userRepo.Delete(ctx, userID)
}
