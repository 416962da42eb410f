package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("secret-password")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	assert.True(t, hasher.Check("secret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestArgon2Hasher_SaltedPerHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	second, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret-password", first))
	assert.True(t, hasher.Check("secret-password", second))
}

func TestArgon2Hasher_CheckMalformedHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty string", hash: ""},
		{name: "plaintext", hash: "secret-password"},
		{name: "bcrypt hash", hash: "$2b$12$hashedhashedhashedhashedhashedhashedhashedhashedhashedhh"},
		{name: "missing sections", hash: "$argon2id$v=19$m=65536,t=1,p=4"},
		{name: "bad salt encoding", hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!!$AAAA"},
		{name: "unsupported version", hash: "$argon2id$v=18$m=65536,t=1,p=4$c2FsdHNhbHQ$AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Check("secret-password", tt.hash))
		})
	}
}

// Parameters embedded in a stored hash are untrusted input. Zero rounds or
// parallelism would make argon2 panic inside Check, and an oversized memory
// claim would make every verification allocate gigabytes, so both the format
// gate and the decoder must refuse them.
func TestArgon2Hasher_RejectsOutOfRangeParameters(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	require.Contains(t, hash, "$m=65536,t=1,p=4$")

	tests := []struct {
		name   string
		params string
	}{
		{name: "zero rounds", params: "m=65536,t=0,p=4"},
		{name: "zero parallelism", params: "m=65536,t=1,p=0"},
		{name: "memory below parallelism floor", params: "m=4,t=1,p=4"},
		{name: "memory above ceiling", params: "m=4294967295,t=1,p=4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crafted := strings.Replace(hash, "m=65536,t=1,p=4", tt.params, 1)

			assert.NotPanics(t, func() {
				assert.False(t, hasher.Check("secret-password", crafted))
			})
		})
	}
}

func TestArgon2Hasher_ValidHashRejectsZeroParameters(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	assert.False(t, hasher.ValidHash(strings.Replace(hash, "t=1", "t=0", 1)))
	assert.False(t, hasher.ValidHash(strings.Replace(hash, "p=4", "p=0", 1)))
	assert.False(t, hasher.ValidHash(strings.Replace(hash, "m=65536", "m=0", 1)))
}

func TestArgon2Hasher_RejectsOutOfRangeKeyLength(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	// Swap the key section for an 8-byte value, below the minimum length.
	cut := strings.LastIndex(hash, "$")
	require.Positive(t, cut)
	crafted := hash[:cut+1] + "QUFBQUFBQUE"

	assert.NotPanics(t, func() {
		assert.False(t, hasher.Check("secret-password", crafted))
	})
}

func TestArgon2Hasher_ValidHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	assert.True(t, hasher.ValidHash(hash))
	assert.False(t, hasher.ValidHash(""))
	assert.False(t, hasher.ValidHash("secret-password"))
	assert.False(t, hasher.ValidHash("$2b$12$hashedhashedhashedhashedhashedhashedhashedhashedhashedhh"))
}

// Verification must work from the hash string alone: the parameters ride
// inside the PHC encoding, not in config.
func TestArgon2Hasher_SelfContainedVerification(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	other := NewArgon2Hasher()
	assert.True(t, other.Check("secret-password", hash))
}
