package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret-password")

	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)
	assert.True(t, hasher.Check("secret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

// Two hashes of the same password must differ: bcrypt embeds a fresh random
// salt on every call, and both must still verify.
func TestBcryptHasher_SaltedPerHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	second, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret-password", first))
	assert.True(t, hasher.Check("secret-password", second))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("secret-password", ""))
	assert.False(t, hasher.Check("secret-password", "not-a-hash"))
	assert.False(t, hasher.Check("secret-password", "secret-password"))
}

func TestBcryptHasher_ValidHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	tests := []struct {
		name string
		hash string
		want bool
	}{
		{name: "real hash", hash: hash, want: true},
		{name: "empty string", hash: "", want: false},
		{name: "plaintext", hash: "secret-password", want: false},
		{name: "truncated hash", hash: hash[:len(hash)-1], want: false},
		{name: "wrong prefix", hash: "$1a$" + hash[4:], want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.ValidHash(tt.hash))
		})
	}
}

func TestNewBcryptHasherWithCost_ClampsOutOfRange(t *testing.T) {
	// Out-of-range costs fall back to the default rather than failing at
	// hash time.
	hasher := NewBcryptHasherWithCost(bcrypt.MaxCost + 1)

	hash, err := hasher.Hash("secret-password")

	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
