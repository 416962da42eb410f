// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single registered account.
type User struct {
	ID           uint64    // The unique identifier for the account, assigned by the store on creation.
	Username     string    // The account's unique login name. Cannot be empty.
	PasswordHash string    // The hashed password. Must match the active hasher's canonical format, never plaintext.
	Email        string    // The account's unique email address.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
