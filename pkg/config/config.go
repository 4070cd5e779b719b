// Package config loads moodart settings.
//
// Settings are resolved in layers, each overriding the one before:
//
//  1. Built-in defaults ([Default]).
//  2. A TOML file, by default $XDG_CONFIG_HOME/moodart/config.toml.
//  3. A .env file in the working directory, if present.
//  4. MOODART_* environment variables.
//
// Command-line flags are applied on top by the CLI.
//
// Example config.toml:
//
//	size = 768
//	art_delay_min = "0s"
//	art_delay_max = "0s"
//
//	cache_backend = "redis"
//	redis_addr = "localhost:6379"
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// AppName is used for config and cache directories.
	AppName = "moodart"

	// EnvPrefix prefixes every environment variable.
	EnvPrefix = "MOODART_"

	// DefaultEnvFile is the dotenv file read from the working directory.
	DefaultEnvFile = ".env"
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

var (
	cacheBackends = []string{CacheNone, CacheFile, CacheRedis}
	logLevels     = []string{"debug", "info", "warn", "error"}
)

// =============================================================================
// Config
// =============================================================================

// Config holds every tunable setting.
type Config struct {
	// Rendering
	Size          int           `toml:"size" env:"SIZE"`
	ArtDelayMin   time.Duration `toml:"art_delay_min" env:"ART_DELAY_MIN"`
	ArtDelayMax   time.Duration `toml:"art_delay_max" env:"ART_DELAY_MAX"`
	StoryDelayMin time.Duration `toml:"story_delay_min" env:"STORY_DELAY_MIN"`
	StoryDelayMax time.Duration `toml:"story_delay_max" env:"STORY_DELAY_MAX"`

	// Cache
	CacheBackend  string        `toml:"cache_backend" env:"CACHE_BACKEND"`
	CacheDir      string        `toml:"cache_dir" env:"CACHE_DIR"`
	CacheTTL      time.Duration `toml:"cache_ttl" env:"CACHE_TTL"`
	RedisAddr     string        `toml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string        `toml:"redis_password,omitempty" env:"REDIS_PASSWORD"`
	RedisDB       int           `toml:"redis_db" env:"REDIS_DB"`

	// Server
	ListenAddr string        `toml:"listen_addr" env:"LISTEN_ADDR"`
	SessionTTL time.Duration `toml:"session_ttl" env:"SESSION_TTL"`

	// Logging
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`
}

// Default returns the built-in settings. Art takes 2-4s and stories 1.5-3s
// so interactive front ends feel like a remote service is at work.
func Default() *Config {
	return &Config{
		Size:          512,
		ArtDelayMin:   2 * time.Second,
		ArtDelayMax:   4 * time.Second,
		StoryDelayMin: 1500 * time.Millisecond,
		StoryDelayMax: 3 * time.Second,
		CacheBackend:  CacheFile,
		CacheDir:      defaultCacheDir(),
		CacheTTL:      7 * 24 * time.Hour,
		RedisAddr:     "localhost:6379",
		ListenAddr:    ":8080",
		SessionTTL:    24 * time.Hour,
		LogLevel:      "info",
	}
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if err := moodarterrors.ValidateSize(c.Size); err != nil {
		return err
	}
	if c.ArtDelayMin < 0 || c.ArtDelayMax < c.ArtDelayMin {
		return moodarterrors.New(moodarterrors.ErrCodeInvalidInput,
			"art delay range [%s, %s] is invalid", c.ArtDelayMin, c.ArtDelayMax)
	}
	if c.StoryDelayMin < 0 || c.StoryDelayMax < c.StoryDelayMin {
		return moodarterrors.New(moodarterrors.ErrCodeInvalidInput,
			"story delay range [%s, %s] is invalid", c.StoryDelayMin, c.StoryDelayMax)
	}
	if !slices.Contains(cacheBackends, c.CacheBackend) {
		return moodarterrors.New(moodarterrors.ErrCodeInvalidInput,
			"cache backend %q is not one of %v", c.CacheBackend, cacheBackends)
	}
	if c.CacheBackend == CacheFile && c.CacheDir == "" {
		return moodarterrors.New(moodarterrors.ErrCodeInvalidInput, "cache_dir is required for the file cache")
	}
	if c.CacheBackend == CacheRedis && c.RedisAddr == "" {
		return moodarterrors.New(moodarterrors.ErrCodeInvalidInput, "redis_addr is required for the redis cache")
	}
	if c.CacheTTL <= 0 {
		return moodarterrors.New(moodarterrors.ErrCodeInvalidInput, "cache_ttl must be positive")
	}
	if c.SessionTTL <= 0 {
		return moodarterrors.New(moodarterrors.ErrCodeInvalidInput, "session_ttl must be positive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (log.Level, error) {
	if !slices.Contains(logLevels, c.LogLevel) {
		return log.InfoLevel, moodarterrors.New(moodarterrors.ErrCodeInvalidInput,
			"log level %q is not one of %v", c.LogLevel, logLevels)
	}
	return log.ParseLevel(c.LogLevel)
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// =============================================================================
// Loading
// =============================================================================

// LoadOptions controls where Load looks.
type LoadOptions struct {
	// File is the TOML file. Empty means DefaultPath, which may be absent.
	// An explicit File must exist.
	File string

	// EnvFile is the dotenv file. Empty means DefaultEnvFile. A missing
	// dotenv file is ignored.
	EnvFile string

	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

// Load resolves the layered configuration and validates it.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if err := loadFile(cfg, opts.File); err != nil {
		return nil, err
	}

	environ, err := environment(opts)
	if err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return nil
		}
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("read config %s: unknown keys %v", path, undecoded)
	}
	return nil
}

// environment merges the dotenv file under the process environment, so real
// variables win over .env entries.
func environment(opts LoadOptions) (map[string]string, error) {
	path := opts.EnvFile
	if path == "" {
		path = DefaultEnvFile
	}
	merged, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		merged = make(map[string]string)
	}

	environ := opts.Environ
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}
	for k, v := range environ {
		merged[k] = v
	}
	return merged, nil
}

// =============================================================================
// Paths
// =============================================================================

// DefaultPath returns the config file location using XDG standard
// (~/.config/moodart/config.toml). It returns "" if no home is known.
func DefaultPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName, "config.toml")
}

// defaultCacheDir returns the cache directory using XDG standard
// (~/.cache/moodart/).
func defaultCacheDir() string {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cache", AppName)
}
