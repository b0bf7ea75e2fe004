package store

import (
	"sync"

	"github.com/pkg/errors"

	"docvault/internal/crypto"
	"docvault/internal/domain"
	"docvault/internal/envelope"
)

const fileMode = 0o600

// Store is a document store backed by a single file. All operations are
// serialized by an internal mutex; see the package comment for the
// single-writer model this implies.
type Store struct {
	path string
	cfg  domain.Config
	mu   sync.Mutex
}

// Option adjusts the persistence configuration at Open time.
type Option func(*domain.Config)

// WithPassword switches the store into encrypted mode for its lifetime.
func WithPassword(password string) Option {
	return func(c *domain.Config) { c.Password = password }
}

// WithIterations overrides the PBKDF2 iteration count.
func WithIterations(n int) Option {
	return func(c *domain.Config) { c.Iterations = n }
}

// WithDigest overrides the PBKDF2 digest ("sha1", "sha256", "sha512").
func WithDigest(name string) Option {
	return func(c *domain.Config) { c.Digest = name }
}

// WithAlgorithm overrides the AEAD ("aes-256-gcm", "chacha20-poly1305").
func WithAlgorithm(name string) Option {
	return func(c *domain.Config) { c.Algorithm = name }
}

// Open binds path to a store handle. A missing file is created holding an
// empty collection; an existing file is decoded once, so opening an
// encrypted store with the wrong password fails here with
// domain.ErrAuthentication rather than on the first operation.
func Open(path string, opts ...Option) (*Store, error) {
	var cfg domain.Config
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = cfg.Normalized()

	if !crypto.ValidDigest(cfg.Digest) {
		return nil, errors.Errorf("unknown digest %q", cfg.Digest)
	}
	if !crypto.ValidAlgorithm(cfg.Algorithm) {
		return nil, errors.Errorf("unknown algorithm %q", cfg.Algorithm)
	}

	s := &Store{path: path, cfg: cfg}

	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if b == nil {
		if err := s.persist(nil); err != nil {
			return nil, err
		}
		return s, nil
	}
	if _, err := envelope.Decode(b, cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Encrypted reports whether the store persists encrypted.
func (s *Store) Encrypted() bool { return s.cfg.Encrypted() }

// Insert assigns the next free id, appends doc, persists, and returns the
// stored document. The input document is not mutated.
func (s *Store) Insert(doc domain.Document) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if err != nil {
		return nil, err
	}
	stored := doc.Clone()
	stored[domain.IDField] = nextID(docs)
	docs = append(docs, stored)
	if err := s.persist(docs); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// Find returns copies of every document matching query, in store order.
func (s *Store) Find(query domain.Document) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		if d.Matches(query) {
			out = append(out, d.Clone())
		}
	}
	return out, nil
}

// All returns every document in store order.
func (s *Store) All() ([]domain.Document, error) { return s.Find(nil) }

// Count returns the number of stored documents.
func (s *Store) Count() (int, error) {
	docs, err := s.Find(nil)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// Update merges updates over the document with the given id and persists.
// The reserved "id" field in updates is ignored: the original id always
// wins, so referential integrity survives careless payloads. Returns
// domain.ErrNotFound when no document has the id.
func (s *Store) Update(id int64, updates domain.Document) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if err != nil {
		return nil, err
	}
	for i, d := range docs {
		got, ok := d.ID()
		if !ok || got != id {
			continue
		}
		merged := d.Clone()
		for k, v := range updates {
			if k == domain.IDField {
				continue
			}
			merged[k] = v
		}
		docs[i] = merged
		if err := s.persist(docs); err != nil {
			return nil, err
		}
		return merged.Clone(), nil
	}
	return nil, errors.Wrapf(domain.ErrNotFound, "id %d", id)
}

// Delete removes the document with the given id if present and reports
// whether anything was removed. The store is persisted either way.
func (s *Store) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if err != nil {
		return false, err
	}
	kept := docs[:0]
	removed := false
	for _, d := range docs {
		if got, ok := d.ID(); ok && got == id && !removed {
			removed = true
			continue
		}
		kept = append(kept, d)
	}
	if err := s.persist(kept); err != nil {
		return false, err
	}
	return removed, nil
}

// ChangePassword re-encrypts the store under newPassword.
//
// Two phases: decode under oldPassword, then adopt newPassword and
// persist with a fresh salt and IV. A decode failure — wrong password or
// corrupted file — aborts with domain.ErrAuthentication before anything
// changes, so the file and the active configuration never disagree.
func (s *Store) ChangePassword(oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.Encrypted() {
		return domain.ErrNotEncrypted
	}

	oldCfg := s.cfg
	oldCfg.Password = oldPassword

	b, err := readFile(s.path)
	if err != nil {
		return err
	}
	docs := []domain.Document{}
	if b != nil {
		if docs, err = envelope.Decode(b, oldCfg); err != nil {
			return err
		}
	}

	newCfg := s.cfg
	newCfg.Password = newPassword
	out, err := envelope.Encode(docs, newCfg)
	if err != nil {
		return err
	}
	if err := writeFile(s.path, out, fileMode); err != nil {
		return err
	}
	s.cfg = newCfg
	return nil
}

// load reads and decodes the backing file. A file deleted out from under
// the handle reads as an empty collection, mirroring Open.
func (s *Store) load() ([]domain.Document, error) {
	b, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return []domain.Document{}, nil
	}
	return envelope.Decode(b, s.cfg)
}

// persist encodes docs and replaces the backing file.
func (s *Store) persist(docs []domain.Document) error {
	b, err := envelope.Encode(docs, s.cfg)
	if err != nil {
		return err
	}
	return writeFile(s.path, b, fileMode)
}

// nextID returns one past the highest id in docs, starting at 1.
func nextID(docs []domain.Document) int64 {
	var max int64
	for _, d := range docs {
		if id, ok := d.ID(); ok && id > max {
			max = id
		}
	}
	return max + 1
}

// Compile-time assertion that Store implements domain.DocumentStore.
var _ domain.DocumentStore = (*Store)(nil)
