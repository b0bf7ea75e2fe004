package memzero

import "crypto/subtle"

// Zero overwrites b in place so derived keys and decrypted payloads do
// not outlive the envelope operation that produced them.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
