package crypto

import (
	"crypto/rand"
	"crypto/sha1" // #nosec G505 -- selectable legacy digest, not the default
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyBytes is the derived symmetric key length.
	KeyBytes = 32
	// SaltBytes is the per-write random salt length.
	SaltBytes = 16
)

// digests maps config digest names to hash constructors for PBKDF2.
var digests = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
}

// ValidDigest reports whether name selects a supported PBKDF2 digest.
func ValidDigest(name string) bool {
	_, ok := digests[name]
	return ok
}

// DeriveKey stretches password into a KeyBytes key via PBKDF2. The same
// password, salt, iterations and digest always yield the same key.
func DeriveKey(password string, salt []byte, iterations int, digest string) ([]byte, error) {
	if len(salt) != SaltBytes {
		return nil, errors.Errorf("bad salt length %d, want %d", len(salt), SaltBytes)
	}
	if iterations <= 0 {
		return nil, errors.Errorf("bad iteration count %d", iterations)
	}
	h, ok := digests[digest]
	if !ok {
		return nil, errors.Errorf("unknown digest %q", digest)
	}
	return pbkdf2.Key([]byte(password), salt, iterations, KeyBytes, h), nil
}

// NewSalt returns SaltBytes of fresh randomness. Every envelope write gets
// its own salt, so no two writes are keyed alike even under one password.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "generate salt")
	}
	return salt, nil
}
