package crypto_test

import (
	"bytes"
	"testing"

	"docvault/internal/crypto"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, crypto.SaltBytes)

	k1, err := crypto.DeriveKey("hunter2", salt, 1000, "sha256")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	k2, err := crypto.DeriveKey("hunter2", salt, 1000, "sha256")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatal("same inputs produced different keys")
	}
	if len(k1) != crypto.KeyBytes {
		t.Fatalf("key length %d, want %d", len(k1), crypto.KeyBytes)
	}
}

func TestDeriveKey_SaltChangesKey(t *testing.T) {
	s1 := bytes.Repeat([]byte{0x01}, crypto.SaltBytes)
	s2 := bytes.Repeat([]byte{0x02}, crypto.SaltBytes)

	k1, err := crypto.DeriveKey("hunter2", s1, 1000, "sha256")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	k2, err := crypto.DeriveKey("hunter2", s2, 1000, "sha256")
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if bytes.Equal(k1, k2) {
		t.Fatal("different salts produced the same key")
	}
}

func TestDeriveKey_Digests(t *testing.T) {
	salt := bytes.Repeat([]byte{0x03}, crypto.SaltBytes)
	for _, digest := range []string{"sha1", "sha256", "sha512"} {
		if _, err := crypto.DeriveKey("pw", salt, 100, digest); err != nil {
			t.Fatalf("DeriveKey(%s): %v", digest, err)
		}
	}
}

func TestDeriveKey_BadInputs(t *testing.T) {
	salt := bytes.Repeat([]byte{0x04}, crypto.SaltBytes)

	if _, err := crypto.DeriveKey("pw", salt, 100, "md5"); err == nil {
		t.Fatal("expected error for unknown digest")
	}
	if _, err := crypto.DeriveKey("pw", salt[:4], 100, "sha256"); err == nil {
		t.Fatal("expected error for short salt")
	}
	if _, err := crypto.DeriveKey("pw", salt, 0, "sha256"); err == nil {
		t.Fatal("expected error for zero iterations")
	}
}

func TestNewSalt_FreshEveryCall(t *testing.T) {
	s1, err := crypto.NewSalt()
	if err != nil {
		t.Fatalf("NewSalt: %v", err)
	}
	s2, err := crypto.NewSalt()
	if err != nil {
		t.Fatalf("NewSalt: %v", err)
	}
	if len(s1) != crypto.SaltBytes {
		t.Fatalf("salt length %d, want %d", len(s1), crypto.SaltBytes)
	}
	if bytes.Equal(s1, s2) {
		t.Fatal("two salts in a row were identical")
	}
}
