package envelope

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"docvault/internal/crypto"
	"docvault/internal/domain"
	"docvault/internal/util/memzero"
)

// Decode parses on-disk bytes into the document collection.
//
// Plain mode parses data as a JSON array; anything else is
// domain.ErrFormat. Encrypted mode splits the salt off the first colon,
// requires exactly iv:tag:ciphertext in the remainder, derives the key and
// decrypts. A decryption failure surfaces as domain.ErrAuthentication;
// whether the password was wrong or the file was tampered with is not
// distinguishable.
func Decode(data []byte, cfg domain.Config) ([]domain.Document, error) {
	if !cfg.Encrypted() {
		return decodeJSON(data)
	}

	salt, rest, ok := strings.Cut(strings.TrimSpace(string(data)), ":")
	if !ok {
		return nil, errors.Wrap(domain.ErrFormat, "missing salt separator")
	}
	fields := strings.Split(rest, ":")
	if len(fields) != 3 {
		return nil, errors.Wrapf(domain.ErrFormat, "want iv:tag:ciphertext, got %d fields", len(fields))
	}
	saltRaw, err := hex.DecodeString(salt)
	if err != nil {
		return nil, errors.Wrap(domain.ErrFormat, "salt is not hex")
	}
	if len(saltRaw) != crypto.SaltBytes {
		return nil, errors.Wrapf(domain.ErrFormat, "salt is %d bytes, want %d", len(saltRaw), crypto.SaltBytes)
	}
	iv, err := hex.DecodeString(fields[0])
	if err != nil {
		return nil, errors.Wrap(domain.ErrFormat, "iv is not hex")
	}
	tag, err := hex.DecodeString(fields[1])
	if err != nil {
		return nil, errors.Wrap(domain.ErrFormat, "tag is not hex")
	}
	ct, err := hex.DecodeString(fields[2])
	if err != nil {
		return nil, errors.Wrap(domain.ErrFormat, "ciphertext is not hex")
	}

	key, err := crypto.DeriveKey(cfg.Password, saltRaw, cfg.Iterations, cfg.Digest)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	plaintext, err := crypto.Open(cfg.Algorithm, key, iv, tag, ct)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(plaintext)

	return decodeJSON(plaintext)
}

// Encode serializes docs for disk. Encrypted mode draws a fresh salt and
// IV on every call, including rewrites of unchanged data.
func Encode(docs []domain.Document, cfg domain.Config) ([]byte, error) {
	if docs == nil {
		docs = []domain.Document{}
	}
	if !cfg.Encrypted() {
		b, err := json.MarshalIndent(docs, "", "  ")
		return b, errors.Wrap(err, "marshal documents")
	}

	plaintext, err := json.Marshal(docs)
	if err != nil {
		return nil, errors.Wrap(err, "marshal documents")
	}
	defer memzero.Zero(plaintext)

	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, err
	}
	key, err := crypto.DeriveKey(cfg.Password, salt, cfg.Iterations, cfg.Digest)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	iv, tag, ct, err := crypto.Seal(cfg.Algorithm, key, plaintext)
	if err != nil {
		return nil, err
	}

	out := strings.Join([]string{
		hex.EncodeToString(salt),
		hex.EncodeToString(iv),
		hex.EncodeToString(tag),
		hex.EncodeToString(ct),
	}, ":")
	return []byte(out), nil
}

// decodeJSON unmarshals a JSON array of documents, mapping any parse
// failure to domain.ErrFormat.
func decodeJSON(data []byte) ([]domain.Document, error) {
	var docs []domain.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, errors.Wrap(domain.ErrFormat, err.Error())
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}
