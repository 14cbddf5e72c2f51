package metaconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned by a Backend that has nothing persisted yet.
var ErrNotFound = errors.New("metaconfig: no persisted config")

// Backend loads and saves the persisted config record.
type Backend interface {
	Load() (Config, error)
	Save(Config) error
}

// MemoryBackend keeps the record in memory. The zero value is empty.
type MemoryBackend struct {
	mu    sync.Mutex
	value *Config
	saves int
}

// NewMemoryBackend returns a MemoryBackend, optionally pre-seeded.
func NewMemoryBackend(seed ...Config) *MemoryBackend {
	b := &MemoryBackend{}
	if len(seed) > 0 {
		c := seed[0]
		b.value = &c
	}
	return b
}

func (b *MemoryBackend) Load() (Config, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.value == nil {
		return Config{}, ErrNotFound
	}
	return *b.value, nil
}

func (b *MemoryBackend) Save(c Config) error {
	b.mu.Lock()
	b.value = &c
	b.saves++
	b.mu.Unlock()
	return nil
}

// Saves reports how many times Save was called.
func (b *MemoryBackend) Saves() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saves
}

// FileBackend persists the record as a JSON document at Path.
type FileBackend struct {
	Path string
}

// NewFileBackend returns a FileBackend writing to path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{Path: path}
}

func (b *FileBackend) Load() (Config, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotFound
		}
		return Config{}, fmt.Errorf("read %s: %w", b.Path, err)
	}
	return decode(data)
}

// Save writes to a temp file in the same directory and renames it over Path,
// so a crash never leaves a half-written record behind.
func (b *FileBackend) Save(c Config) error {
	dir := filepath.Dir(b.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".metaconfig-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), b.Path)
}

func decode(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
