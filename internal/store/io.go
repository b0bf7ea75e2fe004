package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// readFile reads the envelope at path; a missing file returns (nil, nil)
// so the caller can treat it as an empty store.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read store file")
	}
	return b, nil
}

// writeFile writes b via a temp file in the target directory, then
// atomically replaces path.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "chmod temp file")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}

	return errors.Wrap(os.Rename(tmp, path), "replace store file")
}
