// Package domain defines the core types shared across docvault: the
// Document record, the store Config, the typed error sentinels, and the
// DocumentStore interface implemented by internal/store.
package domain
