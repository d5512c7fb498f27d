package store

import (
	"bytes"
	"errors"
	"fmt"
	"folio/internal/structures"
	"os"
	"sync"

	json "github.com/goccy/go-json"
)

// PreferencesInterface is the local key/value store for per-installation
// settings such as the theme mode.
type PreferencesInterface interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

type FilePreferences struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewPreferences(conf *structures.Config) (PreferencesInterface, error) {
	return OpenPreferences(conf.Preferences.FilePath)
}

func OpenPreferences(path string) (*FilePreferences, error) {
	p := &FilePreferences{path: path, values: map[string]string{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return p, nil
}

func (p *FilePreferences) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[key]
	return v, ok
}

// Set updates the value in memory first; a failed write leaves the new
// value readable for the rest of the process lifetime.
func (p *FilePreferences) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.values[key] = value
	data, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := writeFileAtomic(p.path, bytes.NewReader(data), 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
