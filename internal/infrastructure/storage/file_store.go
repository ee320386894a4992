package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	domain "token_verifier/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	whitelistFileName = "whitelist.json"
	notesFileName     = "notes.json"
)

// FileStore persists the whitelist and the notes book as JSON files under a
// data directory. It implements port.WhitelistStore and port.NotesStore; the
// full collection is rewritten on every save (read-modify-write), mirroring
// the cookie storage of the browser UI.
type FileStore struct {
	dir        string
	loggerInfo func(msg string, args ...any)
	mu         sync.Mutex
}

// NewFileStore creates a new FileStore rooted at dir.
func NewFileStore(dir string, loggerInfo func(msg string, args ...any)) *FileStore {
	return &FileStore{dir: dir, loggerInfo: loggerInfo}
}

// LoadWhitelist reads the whitelist collection. A missing file yields an
// empty collection, not an error.
func (s *FileStore) LoadWhitelist() ([]domain.WhitelistedToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var tokens []domain.WhitelistedToken
	if err := s.readJSON(whitelistFileName, &tokens); err != nil {
		return nil, err
	}
	if tokens == nil {
		tokens = []domain.WhitelistedToken{}
	}
	return tokens, nil
}

// SaveWhitelist writes the full whitelist collection.
func (s *FileStore) SaveWhitelist(tokens []domain.WhitelistedToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeJSON(whitelistFileName, tokens); err != nil {
		return err
	}
	if s.loggerInfo != nil {
		s.loggerInfo("Whitelist saved", "count", len(tokens), "dir", s.dir)
	}
	return nil
}

// LoadNotes reads the notes collection. A missing file yields an empty
// collection, not an error.
func (s *FileStore) LoadNotes() ([]domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var notes []domain.Note
	if err := s.readJSON(notesFileName, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, nil
}

// SaveNotes writes the full notes collection.
func (s *FileStore) SaveNotes(notes []domain.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeJSON(notesFileName, notes); err != nil {
		return err
	}
	if s.loggerInfo != nil {
		s.loggerInfo("Notes saved", "count", len(notes), "dir", s.dir)
	}
	return nil
}

func (s *FileStore) readJSON(name string, out any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) writeJSON(name string, in any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, name)
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
