package envelope_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"strings"
	"testing"

	"docvault/internal/domain"
	"docvault/internal/envelope"
)

// low iteration count keeps the suite fast; the count is a config knob,
// not part of the format.
func encryptedCfg() domain.Config {
	return domain.Config{Password: "hunter2", Iterations: 1000}.Normalized()
}

func sampleDocs() []domain.Document {
	return []domain.Document{
		{"id": float64(1), "name": "Alice", "age": float64(25)},
		{"id": float64(2), "name": "Bob"},
	}
}

func TestPlain_RoundTrip(t *testing.T) {
	cfg := domain.Config{}.Normalized()

	b, err := envelope.Encode(sampleDocs(), cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := envelope.Decode(b, cfg)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, sampleDocs()) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", got, sampleDocs())
	}
}

func TestPlain_DecodeRejectsNonArray(t *testing.T) {
	cfg := domain.Config{}.Normalized()
	for _, data := range []string{`{"a":1}`, `not json`, `42`} {
		if _, err := envelope.Decode([]byte(data), cfg); !errors.Is(err, domain.ErrFormat) {
			t.Fatalf("Decode(%q): got %v, want ErrFormat", data, err)
		}
	}
}

func TestEncrypted_RoundTrip(t *testing.T) {
	for _, alg := range []string{"aes-256-gcm", "chacha20-poly1305"} {
		for _, digest := range []string{"sha256", "sha512"} {
			cfg := encryptedCfg()
			cfg.Algorithm = alg
			cfg.Digest = digest

			b, err := envelope.Encode(sampleDocs(), cfg)
			if err != nil {
				t.Fatalf("Encode(%s/%s): %v", alg, digest, err)
			}
			got, err := envelope.Decode(b, cfg)
			if err != nil {
				t.Fatalf("Decode(%s/%s): %v", alg, digest, err)
			}
			if !reflect.DeepEqual(got, sampleDocs()) {
				t.Fatalf("%s/%s: round trip mismatch", alg, digest)
			}
		}
	}
}

func TestEncrypted_FormatOnDisk(t *testing.T) {
	b, err := envelope.Encode(sampleDocs(), encryptedCfg())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	fields := strings.Split(string(b), ":")
	if len(fields) != 4 {
		t.Fatalf("envelope has %d fields, want 4", len(fields))
	}
	for i, f := range fields {
		if _, err := hex.DecodeString(f); err != nil {
			t.Fatalf("field %d is not hex: %v", i, err)
		}
	}
}

func TestEncrypted_FreshSaltAndIVPerEncode(t *testing.T) {
	cfg := encryptedCfg()
	b1, err := envelope.Encode(sampleDocs(), cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b2, err := envelope.Encode(sampleDocs(), cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if bytes.Equal(b1, b2) {
		t.Fatal("two encodes of identical data produced identical envelopes")
	}
	if strings.Split(string(b1), ":")[0] == strings.Split(string(b2), ":")[0] {
		t.Fatal("salt reused across encodes")
	}
}

func TestEncrypted_WrongPassword(t *testing.T) {
	b, err := envelope.Encode(sampleDocs(), encryptedCfg())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	cfg := encryptedCfg()
	cfg.Password = "wrong"
	if _, err := envelope.Decode(b, cfg); !errors.Is(err, domain.ErrAuthentication) {
		t.Fatalf("got %v, want ErrAuthentication", err)
	}
}

func TestEncrypted_TamperDetection(t *testing.T) {
	cfg := encryptedCfg()
	b, err := envelope.Encode(sampleDocs(), cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	fields := strings.Split(string(b), ":")

	// Flip one byte in the tag, then in the ciphertext.
	for _, idx := range []int{2, 3} {
		raw, err := hex.DecodeString(fields[idx])
		if err != nil {
			t.Fatalf("decode field %d: %v", idx, err)
		}
		raw[len(raw)/2] ^= 0x01
		tampered := append([]string(nil), fields...)
		tampered[idx] = hex.EncodeToString(raw)

		if _, err := envelope.Decode([]byte(strings.Join(tampered, ":")), cfg); !errors.Is(err, domain.ErrAuthentication) {
			t.Fatalf("tampered field %d: got %v, want ErrAuthentication", idx, err)
		}
	}
}

func TestEncrypted_MalformedEnvelope(t *testing.T) {
	cfg := encryptedCfg()
	// No separator, too few fields, too many fields, then one non-hex
	// component per position.
	cases := []string{
		"deadbeef",
		"aa:bb",
		"aa:bb:cc",
		"aa:bb:cc:dd:ee",
		"zz:bb:cc:dd",
		"aabb:zz:cc:dd",
		"aabb:cc:zz:dd",
		"aabb:cc:dd:zz",
	}
	for _, data := range cases {
		if _, err := envelope.Decode([]byte(data), cfg); !errors.Is(err, domain.ErrFormat) {
			t.Fatalf("Decode(%q): got %v, want ErrFormat", data, err)
		}
	}
}

func TestEncode_NilDocsIsEmptyArray(t *testing.T) {
	cfg := domain.Config{}.Normalized()
	b, err := envelope.Encode(nil, cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := envelope.Decode(b, cfg)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d docs, want 0", len(got))
	}
}
