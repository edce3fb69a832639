package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dkurganov/microblog/internal/model"
)

// ErrMalformedHash is returned when a stored hash cannot be decoded.
var ErrMalformedHash = errors.New("malformed password hash")

const (
	defaultMemoryKiB   uint32 = 64 * 1024
	defaultTime        uint32 = 3
	defaultParallelism uint8  = 2
	saltLength                = 16
	keyLength          uint32 = 32
)

// Argon2 hashes and verifies passwords with argon2id, storing parameters
// alongside the digest in PHC string format.
type Argon2 struct {
	memoryKiB   uint32
	time        uint32
	parallelism uint8
}

var _ model.PasswordHasher = (*Argon2)(nil)

// NewArgon2 creates a hasher with the default cost parameters.
func NewArgon2() *Argon2 {
	return &Argon2{
		memoryKiB:   defaultMemoryKiB,
		time:        defaultTime,
		parallelism: defaultParallelism,
	}
}

// Hash derives an argon2id digest from the password with a fresh random salt.
func (a *Argon2) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.time, a.memoryKiB, a.parallelism, keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.memoryKiB, a.time, a.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify reports whether the password matches the encoded hash. The stored
// parameters take precedence over the hasher's own, so old hashes keep
// verifying after a cost change.
func (a *Argon2) Verify(password, encodedHash string) (bool, error) {
	memoryKiB, time, parallelism, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memoryKiB, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeHash(encodedHash string) (memoryKiB, time uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	var par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memoryKiB, &time, &par); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}
	parallelism = uint8(par)

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	return memoryKiB, time, parallelism, salt, key, nil
}
