// Package crypto exposes the two primitives behind the encrypted envelope.
//
// Contents
//
//   - PBKDF2 password stretching with a configurable digest and iteration
//     count (DeriveKey, NewSalt)
//   - Authenticated encryption with a separately carried tag, selectable
//     between AES-256-GCM and ChaCha20-Poly1305 (Seal, Open)
//
// # Notes
//
// Derived keys are sensitive; callers should wipe them with
// memzero.Zero once the envelope operation completes. Open fails closed:
// on any tag mismatch it returns domain.ErrAuthentication and no
// plaintext.
package crypto
