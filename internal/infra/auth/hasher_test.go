package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacketex894/login-project/config"
)

func TestNewPasswordHasher_SelectsVariant(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		wantErr   bool
	}{
		{name: "default is bcrypt", algorithm: ""},
		{name: "bcrypt", algorithm: "bcrypt"},
		{name: "argon2", algorithm: "argon2"},
		{name: "unknown algorithm", algorithm: "md5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Auth: config.AuthConfig{Algorithm: tt.algorithm}}

			hasher, err := NewPasswordHasher(cfg)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, hasher)
		})
	}
}

// A hash produced by one variant must be rejected by the other variant's
// format check, so the store can tell which algorithm wrote a stored hash.
func TestNewPasswordHasher_FormatsAreDisjoint(t *testing.T) {
	bcryptHasher, err := NewPasswordHasher(&config.Config{Auth: config.AuthConfig{Algorithm: "bcrypt", BcryptCost: 4}})
	require.NoError(t, err)

	argonHasher, err := NewPasswordHasher(&config.Config{Auth: config.AuthConfig{Algorithm: "argon2"}})
	require.NoError(t, err)

	bcryptHash, err := bcryptHasher.Hash("secret-password")
	require.NoError(t, err)

	argonHash, err := argonHasher.Hash("secret-password")
	require.NoError(t, err)

	assert.True(t, bcryptHasher.ValidHash(bcryptHash))
	assert.False(t, bcryptHasher.ValidHash(argonHash))
	assert.True(t, argonHasher.ValidHash(argonHash))
	assert.False(t, argonHasher.ValidHash(bcryptHash))
}
