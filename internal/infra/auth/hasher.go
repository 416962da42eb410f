package auth

import (
	"github.com/jacketex894/login-project/config"
	"github.com/jacketex894/login-project/internal/domain/service"
	"github.com/jacketex894/login-project/internal/errors"
)

// NewPasswordHasher selects the hasher variant once at startup from
// configuration. The variant set is closed: bcrypt and argon2id.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	switch cfg.Auth.Algorithm {
	case "", "bcrypt":
		if cfg.Auth.BcryptCost > 0 {
			return NewBcryptHasherWithCost(cfg.Auth.BcryptCost), nil
		}

		return NewBcryptHasher(), nil
	case "argon2":
		return NewArgon2Hasher(), nil
	default:
		return nil, errors.Errorf("unsupported hash algorithm: %s", cfg.Auth.Algorithm)
	}
}
