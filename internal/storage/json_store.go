package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redchainhq/redchain/internal/models"
)

// JSONStore persists the GameState document as a single indented JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

// Init creates the config directory and writes a fresh default document. It
// refuses to clobber an existing one.
func (s *JSONStore) Init() (models.GameState, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return models.GameState{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return models.GameState{}, fmt.Errorf("storage already initialized at %s", s.path)
	}

	state := models.DefaultGameState()
	if err := s.Save(state); err != nil {
		return models.GameState{}, err
	}
	return state, nil
}

// Load reads the document. Unknown fields in the file are ignored and missing
// fields come back as zero values; the game store normalizes the result, so
// documents written by older versions stay readable.
func (s *JSONStore) Load() (models.GameState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.GameState{}, fmt.Errorf("storage not initialized, run 'redchain init' first")
		}
		return models.GameState{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var state models.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return models.GameState{}, fmt.Errorf("failed to parse storage: %w", err)
	}
	return state, nil
}

func (s *JSONStore) Save(state models.GameState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}
