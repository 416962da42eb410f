package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/jacketex894/login-project/internal/domain/service"
	"github.com/jacketex894/login-project/internal/errors"
)

// Argon2id parameters. The salt is regenerated per hash; the rest are encoded
// into the PHC string so verification needs no side channel.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
	argon2SaltLen = 16

	// Bounds for parameters read back out of a stored hash. The embedded
	// values are untrusted input: zero rounds or parallelism make argon2
	// panic, and an oversized memory claim turns every verification into a
	// giant allocation.
	argon2MaxMemory = 1 << 21 // 2 GiB in KiB
	argon2MaxKeyLen = 128
	argon2MinKeyLen = 16
)

// argon2HashPattern matches the PHC encoding:
// $argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
// Parameter values must be positive; argon2 rejects zero rounds and zero
// parallelism with a panic rather than an error.
var argon2HashPattern = regexp.MustCompile(`^\$argon2id\$v=19\$m=[1-9]\d*,t=[1-9]\d*,p=[1-9]\d*\$[A-Za-z0-9+/]+\$[A-Za-z0-9+/]+$`)

// argon2Hasher is a concrete implementation of the PasswordHasher interface using Argon2id.
type argon2Hasher struct{}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher() service.PasswordHasher {
	return &argon2Hasher{}
}

// Hash derives an Argon2id key from the password with a fresh random salt and
// encodes salt, key and parameters into a single PHC-format string.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate argon2 salt")
	}

	key := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Check re-derives the key with the parameters and salt embedded in the hash
// and compares in constant time. Any malformed input yields false.
func (h *argon2Hasher) Check(password, hash string) bool {
	salt, key, memory, time, threads, err := decodeArgon2Hash(hash)
	if err != nil {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(derived, key) == 1
}

// ValidHash reports whether the string is structurally a PHC argon2id hash.
func (h *argon2Hasher) ValidHash(hash string) bool {
	return argon2HashPattern.MatchString(hash)
}

func decodeArgon2Hash(hash string) (salt, key []byte, memory, time uint32, threads uint8, err error) {
	var version int
	if _, err = fmt.Sscanf(hash, "$argon2id$v=%d$m=%d,t=%d,p=%d$", &version, &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, errors.Wrap(err, "malformed argon2 hash")
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, errors.Errorf("unsupported argon2 version: %d", version)
	}

	if time < 1 || threads < 1 {
		return nil, nil, 0, 0, 0, errors.New("argon2 parameters out of range")
	}
	if memory < 8*uint32(threads) || memory > argon2MaxMemory {
		return nil, nil, 0, 0, 0, errors.New("argon2 memory parameter out of range")
	}

	parts := strings.Split(hash, "$")
	// parts: ["", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash]
	if len(parts) != 6 {
		return nil, nil, 0, 0, 0, errors.New("malformed argon2 hash")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, errors.Wrap(err, "malformed argon2 salt")
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, errors.Wrap(err, "malformed argon2 key")
	}
	if len(key) < argon2MinKeyLen || len(key) > argon2MaxKeyLen {
		return nil, nil, 0, 0, 0, errors.New("argon2 key length out of range")
	}

	return salt, key, memory, time, threads, nil
}
