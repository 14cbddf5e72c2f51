package metaengine

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eringen/metaengine/metaconfig"
)

// Storage backends for the meta config record.
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)

// Config holds the server settings for a metaengine site.
type Config struct {
	URL  string `yaml:"url"`  // Public origin used for canonical and absolute URLs (default "http://localhost:3000")
	Addr string `yaml:"addr"` // Listen address (default ":3000")

	Storage      string `yaml:"storage"`       // sqlite, file or memory (default sqlite)
	DatabasePath string `yaml:"database_path"` // SQLite path (default "data/meta.db")
	FilePath     string `yaml:"file_path"`     // JSON path for file storage (default "data/meta-config.json")
	StaticDir    string `yaml:"static_dir"`    // User static assets, served under /public (default "public")

	AdminPassword string `yaml:"admin_password"` // Required: admin login password
	SessionSecret string `yaml:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `yaml:"cookie_secure"`  // Set true for HTTPS

	LoginAttempts int           `yaml:"login_attempts"` // Failed logins allowed per window (default 5)
	LoginWindow   time.Duration `yaml:"login_window"`   // Login limiter window (default 1m)
}

func (c *Config) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Storage == "" {
		c.Storage = StorageSQLite
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/meta.db"
	}
	if c.FilePath == "" {
		c.FilePath = "data/meta-config.json"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LoginAttempts == 0 {
		c.LoginAttempts = 5
	}
	if c.LoginWindow == 0 {
		c.LoginWindow = time.Minute
	}
}

// LoadConfig reads an optional YAML file and applies METAENGINE_* environment
// overrides on top of it. Defaults are filled in by New.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.URL = EnvOr("METAENGINE_URL", cfg.URL)
	cfg.Addr = EnvOr("METAENGINE_ADDR", cfg.Addr)
	cfg.Storage = EnvOr("METAENGINE_STORAGE", cfg.Storage)
	cfg.DatabasePath = EnvOr("METAENGINE_DATABASE_PATH", cfg.DatabasePath)
	cfg.FilePath = EnvOr("METAENGINE_FILE_PATH", cfg.FilePath)
	cfg.StaticDir = EnvOr("METAENGINE_STATIC_DIR", cfg.StaticDir)
	cfg.AdminPassword = EnvOr("ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.SessionSecret = EnvOr("ADMIN_SESSION_SECRET", cfg.SessionSecret)
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = secure
	}
	return cfg, nil
}

// OpenMetaStore opens the configured backend and loads the meta config store.
// The returned close func releases the backend.
func OpenMetaStore(cfg Config, logger *zap.Logger) (*metaconfig.Store, func() error, error) {
	cfg.setDefaults()
	noop := func() error { return nil }
	switch cfg.Storage {
	case StorageSQLite:
		b, err := metaconfig.NewSQLiteBackend(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return metaconfig.NewStore(b, logger), b.Close, nil
	case StorageFile:
		return metaconfig.NewStore(metaconfig.NewFileBackend(cfg.FilePath), logger), noop, nil
	case StorageMemory:
		return metaconfig.NewStore(metaconfig.NewMemoryBackend(), logger), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides Config.StaticDir.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger sets the logger (default zap.NewNop).
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithMetaStore uses s instead of opening the configured backend.
func WithMetaStore(s *metaconfig.Store) Option {
	return func(a *App) {
		a.Meta = s
	}
}

// WithViews replaces the default views.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}
