// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/jacketex894/login-project/internal/domain/service"
)

// bcryptHashPattern matches the canonical bcrypt output: a $2a/$2b/$2y prefix
// followed by exactly 56 characters of cost, salt and digest.
var bcryptHashPattern = regexp.MustCompile(`^\$2[aby]\$.{56}$`)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher with the default cost.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost creates a bcryptHasher with a custom cost factor.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation, so each call produces a
// different hash for the same input.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidHash reports whether the string is structurally a bcrypt hash.
func (h *bcryptHasher) ValidHash(hash string) bool {
	return bcryptHashPattern.MatchString(hash)
}
