package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Vault is the proof image store: a single key/value table in its own SQLite
// database file, kept separate from the GameState document so image payloads
// never bloat the JSON blob.
type Vault struct {
	path string
	db   *sql.DB
}

func NewVault(path string) *Vault {
	return &Vault{path: path}
}

// Open creates the vault database (and its directory) on first use.
func (v *Vault) Open() error {
	if v.db != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(v.path), 0700); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}

	db, err := sql.Open("sqlite", v.path)
	if err != nil {
		return fmt.Errorf("failed to open vault: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS proofs (
			id TEXT PRIMARY KEY,
			payload BLOB NOT NULL
		)`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create proofs table: %w", err)
	}

	v.db = db
	return nil
}

func (v *Vault) Close() error {
	if v.db != nil {
		err := v.db.Close()
		v.db = nil
		return err
	}
	return nil
}

func (v *Vault) Put(id string, payload []byte) error {
	if err := v.Open(); err != nil {
		return err
	}
	_, err := v.db.Exec(`
		INSERT INTO proofs (id, payload) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload`,
		id, payload)
	return err
}

// Get returns the payload for the given proof ID, or nil when no blob exists.
// A missing blob is not an error; the document and the vault are two stores
// with no cross-store transaction.
func (v *Vault) Get(id string) ([]byte, error) {
	if err := v.Open(); err != nil {
		return nil, err
	}
	var payload []byte
	err := v.db.QueryRow("SELECT payload FROM proofs WHERE id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (v *Vault) Delete(id string) error {
	if err := v.Open(); err != nil {
		return err
	}
	_, err := v.db.Exec("DELETE FROM proofs WHERE id = ?", id)
	return err
}
