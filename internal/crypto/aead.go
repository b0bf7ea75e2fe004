package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	"docvault/internal/domain"
)

const (
	// IVBytes is the nonce length shared by both supported AEADs.
	IVBytes = 12
	// TagBytes is the authentication tag length shared by both.
	TagBytes = 16
)

// newAEAD builds the AEAD selected by the config algorithm name.
func newAEAD(algorithm string, key []byte) (cipher.AEAD, error) {
	switch algorithm {
	case "aes-256-gcm":
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, errors.Wrap(err, "aes cipher")
		}
		return cipher.NewGCM(block)
	case "chacha20-poly1305":
		return chacha20poly1305.New(key)
	default:
		return nil, errors.Errorf("unknown algorithm %q", algorithm)
	}
}

// ValidAlgorithm reports whether name selects a supported AEAD.
func ValidAlgorithm(name string) bool {
	return name == "aes-256-gcm" || name == "chacha20-poly1305"
}

// Seal encrypts plaintext under key with a fresh random IV, returning the
// IV, the authentication tag, and the ciphertext as separate slices. The
// IV is never reused with the same key: every call draws new randomness.
func Seal(algorithm string, key, plaintext []byte) (iv, tag, ct []byte, err error) {
	aead, err := newAEAD(algorithm, key)
	if err != nil {
		return nil, nil, nil, err
	}
	iv = make([]byte, IVBytes)
	if _, err := rand.Read(iv); err != nil {
		return nil, nil, nil, errors.Wrap(err, "generate iv")
	}
	sealed := aead.Seal(nil, iv, plaintext, nil)
	// AEAD output is ciphertext followed by the tag; split so the envelope
	// can carry the tag as its own field.
	ct = sealed[:len(sealed)-TagBytes]
	tag = sealed[len(sealed)-TagBytes:]
	return iv, tag, ct, nil
}

// Open decrypts ct under key, verifying tag. Any mismatch — wrong key,
// flipped ciphertext byte, truncated input — yields
// domain.ErrAuthentication and no plaintext.
func Open(algorithm string, key, iv, tag, ct []byte) ([]byte, error) {
	aead, err := newAEAD(algorithm, key)
	if err != nil {
		return nil, err
	}
	if len(iv) != IVBytes || len(tag) != TagBytes {
		return nil, domain.ErrAuthentication
	}
	sealed := make([]byte, 0, len(ct)+len(tag))
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)
	pt, err := aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, domain.ErrAuthentication
	}
	return pt, nil
}
