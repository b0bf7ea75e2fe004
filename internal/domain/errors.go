package domain

import "errors"

var (
	// ErrFormat is returned when file content does not parse as the
	// expected envelope shape: malformed JSON in plain mode, or the wrong
	// number of colon-separated hex fields in encrypted mode.
	ErrFormat = errors.New("malformed store file")

	// ErrAuthentication is returned when authenticated decryption fails.
	// A wrong password and a tampered file are indistinguishable on
	// purpose; callers learn only that the store could not be opened.
	ErrAuthentication = errors.New("wrong password or corrupted store")

	// ErrNotFound is returned by Update and Delete-adjacent lookups when
	// no document has the requested id.
	ErrNotFound = errors.New("document not found")

	// ErrNotEncrypted is returned by ChangePassword on a store that was
	// opened without a password. The encryption mode is fixed at open time.
	ErrNotEncrypted = errors.New("store is not encrypted")
)
