package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacketex894/login-project/internal/domain/entity"
	domainerrors "github.com/jacketex894/login-project/internal/domain/errors"
	"github.com/jacketex894/login-project/internal/domain/repository"
	mockService "github.com/jacketex894/login-project/internal/mocks/service"
)

// createRejectingRepository builds a repository whose hasher refuses every
// hash. The gorm handle is nil on purpose: the format gate must reject the
// write before any database work, so a test that reaches the database would
// panic and fail.
func createRejectingRepository(t *testing.T) (repository.UserRepository, *mockService.MockPasswordHasher) {
	t.Helper()

	hasher := mockService.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserRepository(nil, hasher, logger), hasher
}

func TestUserRepository_Create_RejectsMalformedHash(t *testing.T) {
	repo, hasher := createRejectingRepository(t)

	hasher.EXPECT().ValidHash("plaintext-password").Return(false)

	err := repo.Create(context.Background(), &entity.User{
		Username:     "alice",
		PasswordHash: "plaintext-password",
		Email:        "alice@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidHashedPassword)
}

func TestUserRepository_Update_RejectsMalformedHash(t *testing.T) {
	repo, hasher := createRejectingRepository(t)

	hasher.EXPECT().ValidHash("plaintext-password").Return(false)

	err := repo.Update(context.Background(), 42, "plaintext-password", "alice@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidHashedPassword)
}
