package storage

import "github.com/redchainhq/redchain/internal/models"

// Document persists the GameState as one durable blob. Writes are synchronous
// and write-through; a failed Save leaves the in-memory state authoritative
// for the session.
type Document interface {
	Init() (models.GameState, error)
	Load() (models.GameState, error)
	Save(models.GameState) error
	Path() string
}

// BlobStore holds proof image payloads keyed by proof ID. It lives outside the
// GameState document; there is no cross-store transaction, and a metadata
// record referencing a missing blob (or the reverse) is accepted.
type BlobStore interface {
	Put(id string, payload []byte) error
	Get(id string) ([]byte, error)
	Delete(id string) error
	Close() error
}
