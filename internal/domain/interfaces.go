package domain

// DocumentStore is the operation surface of a docvault store handle.
type DocumentStore interface {
	// Insert assigns a fresh unique id, persists, and returns the stored
	// document including its id.
	Insert(doc Document) (Document, error)

	// Find returns, in store order, every document matching the flat
	// equality query. A nil or empty query returns all documents.
	Find(query Document) ([]Document, error)

	// Update merges updates over the document with the given id and
	// persists. The original id always survives, even when updates carries
	// an "id" field. Returns ErrNotFound when no document has the id.
	Update(id int64, updates Document) (Document, error)

	// Delete removes the document with the given id, persisting either
	// way, and reports whether anything was removed.
	Delete(id int64) (bool, error)

	// ChangePassword re-encrypts the store under newPassword, all or
	// nothing: a failed decode under oldPassword leaves both the file and
	// the in-memory configuration untouched.
	ChangePassword(oldPassword, newPassword string) error
}
