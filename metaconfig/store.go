package metaconfig

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Store owns the single Config value. Reads return copies; every mutation is
// saved through the backend before the new value becomes visible.
type Store struct {
	mu      sync.RWMutex
	config  Config
	backend Backend
	logger  *zap.Logger
}

// NewStore loads the persisted config from backend. A missing or unreadable
// record is not an error: the store starts from Defaults.
func NewStore(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{backend: backend, logger: logger}
	s.config = s.load()
	return s
}

func (s *Store) load() Config {
	c, err := s.backend.Load()
	switch {
	case err == nil:
		return c
	case errors.Is(err, ErrNotFound):
		s.logger.Debug("no persisted meta config, using defaults")
	default:
		s.logger.Warn("persisted meta config unreadable, using defaults", zap.Error(err))
	}
	return Defaults()
}

// Config returns the current config.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Update shallow-merges p onto the current config and persists the result.
// No validation happens here.
func (s *Store) Update(p Partial) (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := p.Apply(s.config)
	if err := s.backend.Save(next); err != nil {
		return s.config, fmt.Errorf("metaconfig: save: %w", err)
	}
	s.config = next
	s.logger.Info("meta config updated", zap.String("site_name", next.SiteName))
	return next, nil
}

// Reset replaces the config with Defaults and persists it.
func (s *Store) Reset() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	def := Defaults()
	if err := s.backend.Save(def); err != nil {
		return s.config, fmt.Errorf("metaconfig: save: %w", err)
	}
	s.config = def
	s.logger.Info("meta config reset to defaults")
	return def, nil
}
