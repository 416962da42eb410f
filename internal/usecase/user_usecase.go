// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateAccountInput defines the data required to change an account's
// password and email. The new password arrives as plaintext and is re-hashed
// before it reaches the store.
type UpdateAccountInput struct {
	UserID      uint64
	NewPassword string
	NewEmail    string
}

// --- Output DTOs ---

// RegisterOutput confirms a successful registration.
type RegisterOutput struct {
	Message  string
	Username string
}

// LoginOutput confirms a successful login. The access token is handed to the
// delivery layer, which sets it as the access-token cookie.
type LoginOutput struct {
	Message     string
	AccessToken string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	UpdateAccount(ctx context.Context, input *UpdateAccountInput) error
	DeleteAccount(ctx context.Context, userID uint64) error
}
