// Package store provides the single-file document store.
//
// A Store handle binds a file path to an immutable persistence Config.
// Every operation runs the full read-decode-mutate-encode-write cycle
// under the handle's mutex; nothing is cached between calls, so the file
// is always the source of truth. The design assumes one logical owner per
// file — two processes writing concurrently race, last writer wins.
//
// Writes replace the whole file through a temp file and rename in the
// same directory, narrowing the crash-mid-write window without changing
// the on-disk format.
package store
