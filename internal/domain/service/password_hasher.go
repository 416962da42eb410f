// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The output is
	// self-contained: algorithm parameters and salt are embedded, so
	// verification needs no side channel. Two calls with the same input
	// produce different outputs (fresh random salt each time).
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// It returns false on any mismatch and never panics on malformed input.
	Check(password, hash string) bool

	// ValidHash reports whether the string is structurally a hash in this
	// algorithm's canonical format. It does no cryptographic work; the store
	// uses it to refuse persisting anything that could be plaintext.
	ValidHash(hash string) bool
}
