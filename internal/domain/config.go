package domain

// Key-derivation and cipher defaults applied by Normalized.
const (
	DefaultIterations = 100000
	DefaultDigest     = "sha256"
	DefaultAlgorithm  = "aes-256-gcm"
)

// Config fixes the persistence parameters of a store for its whole
// lifetime: an empty Password selects plain-JSON mode, a non-empty one
// selects the encrypted envelope. Only ChangePassword may replace the
// active password, and only after the old one decoded the file.
type Config struct {
	Password   string
	Iterations int
	Digest     string
	Algorithm  string
}

// Encrypted reports whether the store persists through the encrypted
// envelope rather than plain JSON.
func (c Config) Encrypted() bool { return c.Password != "" }

// Normalized returns c with zero-valued fields replaced by defaults.
func (c Config) Normalized() Config {
	if c.Iterations <= 0 {
		c.Iterations = DefaultIterations
	}
	if c.Digest == "" {
		c.Digest = DefaultDigest
	}
	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
	}
	return c
}
