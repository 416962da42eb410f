// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/jacketex894/login-project/internal/domain/entity"
)

// UserRepository defines the standard operations for credential persistence.
// The application layer will depend on this interface, not the concrete implementation.
//
// Every write is atomic: it either commits fully or rolls back fully, and all
// failures surface as domain errors, never as raw driver errors.
type UserRepository interface {
	// Create persists a new account. The password hash format is validated
	// before the write; a malformed hash is rejected with
	// errors.ErrInvalidHashedPassword. Username or email collisions surface
	// as errors.ErrUsernameAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a single account by its unique username.
	// Returns errors.ErrQueryUserNotFound when no such account exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update replaces the password hash and email of the account with the
	// given id, re-validating the hash format first. Returns
	// errors.ErrUpdateUserNotFound when the id does not exist.
	Update(ctx context.Context, id uint64, newHash, newEmail string) error

	// Delete removes the account with the given id. Deletion is final.
	// Returns errors.ErrDeleteUserNotFound when the id does not exist.
	Delete(ctx context.Context, id uint64) error
}
