// Package storage provides the client-durable key-value store used for the
// bearer token and the theme preference.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/plantdesk/portalctl/internal/core/ports"
)

const credentialsFile = "credentials.json"

// FileStore persists entries as a small JSON object under the user config
// directory. The file carries 0600 permissions since it holds the bearer
// token.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates the store rooted at dir, creating the directory if
// needed. An empty dir resolves to <user config dir>/portalctl.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("storage: resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "portalctl")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", dir, err)
	}
	return &FileStore{path: filepath.Join(dir, credentialsFile)}, nil
}

func (s *FileStore) Token() string {
	return s.get(ports.KeyAuthToken)
}

func (s *FileStore) SetToken(token string) error {
	return s.set(ports.KeyAuthToken, token)
}

func (s *FileStore) ClearToken() error {
	return s.unset(ports.KeyAuthToken)
}

func (s *FileStore) Theme() string {
	return s.get(ports.KeyTheme)
}

func (s *FileStore) SetTheme(theme string) error {
	return s.set(ports.KeyTheme, theme)
}

func (s *FileStore) get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return ""
	}
	return entries[key]
}

func (s *FileStore) set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return s.save(entries)
}

func (s *FileStore) unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.save(entries)
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", s.path, err)
	}
	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt file must not lock the user out; start fresh.
		return map[string]string{}, nil
	}
	return entries, nil
}

func (s *FileStore) save(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("storage: write %s: %w", s.path, err)
	}
	return nil
}
