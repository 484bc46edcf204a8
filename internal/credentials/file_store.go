package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps one credentials entry per profile in a JSON file readable
// only by the owner.
type FileStore struct {
	path    string
	profile string
	mu      sync.Mutex
}

// NewFileStore keeps the credentials of profile in the JSON file at path.
func NewFileStore(path, profile string) *FileStore {
	return &FileStore{path: path, profile: profile}
}

// Load returns ErrNoCredentials when the file or the profile is missing.
func (s *FileStore) Load(_ context.Context) (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.read()
	if err != nil {
		return nil, err
	}
	creds, ok := profiles[s.profile]
	if !ok || creds == nil {
		return nil, ErrNoCredentials
	}
	return creds, nil
}

// Save replaces the profile entry and leaves other profiles untouched.
func (s *FileStore) Save(_ context.Context, creds *Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.read()
	if err != nil {
		return err
	}
	profiles[s.profile] = creds
	return s.write(profiles)
}

// Purge removes the profile entry.
func (s *FileStore) Purge(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := profiles[s.profile]; !ok {
		return nil
	}
	delete(profiles, s.profile)
	return s.write(profiles)
}

func (s *FileStore) read() (map[string]*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]*Credentials{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	profiles := map[string]*Credentials{}
	if len(data) == 0 {
		return profiles, nil
	}
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode credentials file: %w", err)
	}
	return profiles, nil
}

func (s *FileStore) write(profiles map[string]*Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}
	return nil
}
