package postgres

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/jacketex894/login-project/internal/domain/entity"
	domainerrors "github.com/jacketex894/login-project/internal/domain/errors"
	"github.com/jacketex894/login-project/internal/domain/repository"
	"github.com/jacketex894/login-project/internal/domain/service"
	"github.com/jacketex894/login-project/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db     *gorm.DB
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewUserRepository is the constructor for userRepository. The active hasher
// is injected so the store can refuse writes whose password hash is not in
// the algorithm's canonical format. It returns the repository as a
// repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) repository.UserRepository {
	return &userRepository{
		db:     db,
		hasher: hasher,
		logger: logger,
	}
}

// Create persists a new account. The hash format check runs before any
// database work so a plaintext value can never be stored as if it were a hash.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if !repo.hasher.ValidHash(user.PasswordHash) {
		return domainerrors.ErrInvalidHashedPassword.WrapMessage("refusing to persist malformed password hash")
	}

	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// The username and email uniqueness constraints both collapse into
		// the single duplicate-key kind.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCreateUser.WrapMessage("missing required user information")
		}

		// Raw driver errors never cross the store boundary: log with context,
		// re-raise the domain kind. The failed insert has already rolled back.
		repo.logger.Error("Failed to create user",
			slog.String("operation", "create"),
			slog.String("username", user.Username),
			slog.Any("error", err),
		)

		return domainerrors.ErrCreateUser
	}

	// Propagate the generated id and timestamp back to the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindByUsername retrieves a single account by its unique username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrQueryUserNotFound
		}

		repo.logger.Error("Failed to query user",
			slog.String("operation", "query"),
			slog.String("username", username),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrQueryUser
	}

	return toUserDomain(&userM), nil
}

// Update replaces the password hash and email of the account with the given
// id. The hash format is re-validated before the write, mirroring Create.
func (repo *userRepository) Update(ctx context.Context, id uint64, newHash, newEmail string) error {
	if !repo.hasher.ValidHash(newHash) {
		return domainerrors.ErrInvalidHashedPassword.WrapMessage("refusing to persist malformed password hash")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash": newHash,
			"email":         newEmail,
		})

	if result.Error != nil {
		repo.logger.Error("Failed to update user",
			slog.String("operation", "update"),
			slog.Uint64("userID", id),
			slog.Any("error", result.Error),
		)

		return domainerrors.ErrUpdateUser
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrUpdateUserNotFound
	}

	return nil
}

// Delete removes the account with the given id. No soft delete; the row is gone.
func (repo *userRepository) Delete(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})

	if result.Error != nil {
		repo.logger.Error("Failed to delete user",
			slog.String("operation", "delete"),
			slog.Uint64("userID", id),
			slog.Any("error", result.Error),
		)

		return domainerrors.ErrDeleteUser
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrDeleteUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Email:        data.Email,
		CreatedAt:    data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Email:        data.Email,
		CreatedAt:    data.CreatedAt,
	}
}
