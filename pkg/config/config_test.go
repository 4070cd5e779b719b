package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
)

// isolated returns LoadOptions that never touch the caller's files or
// environment.
func isolated(t *testing.T) LoadOptions {
	t.Helper()
	dir := t.TempDir()
	return LoadOptions{
		File:    writeFile(t, dir, "config.toml", ""),
		EnvFile: filepath.Join(dir, "missing.env"),
		Environ: map[string]string{"MOODART_CACHE_DIR": dir},
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	cfg.CacheDir = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Size != 512 {
		t.Errorf("Size = %d, want 512", cfg.Size)
	}
	if cfg.ArtDelayMin != 2*time.Second || cfg.ArtDelayMax != 4*time.Second {
		t.Errorf("art delay = %s-%s, want 2s-4s", cfg.ArtDelayMin, cfg.ArtDelayMax)
	}
	if cfg.StoryDelayMin != 1500*time.Millisecond || cfg.StoryDelayMax != 3*time.Second {
		t.Errorf("story delay = %s-%s, want 1.5s-3s", cfg.StoryDelayMin, cfg.StoryDelayMax)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"no cache", func(c *Config) { c.CacheBackend = CacheNone; c.CacheDir = "" }, true},
		{"zero delays", func(c *Config) { c.ArtDelayMin, c.ArtDelayMax = 0, 0 }, true},
		{"size too small", func(c *Config) { c.Size = 1 }, false},
		{"size too large", func(c *Config) { c.Size = 100000 }, false},
		{"negative delay", func(c *Config) { c.ArtDelayMin = -time.Second }, false},
		{"inverted art delay", func(c *Config) { c.ArtDelayMin, c.ArtDelayMax = 3*time.Second, time.Second }, false},
		{"inverted story delay", func(c *Config) { c.StoryDelayMax = 0 }, false},
		{"unknown backend", func(c *Config) { c.CacheBackend = "memcached" }, false},
		{"file without dir", func(c *Config) { c.CacheDir = "" }, false},
		{"redis without addr", func(c *Config) { c.CacheBackend = CacheRedis; c.RedisAddr = "" }, false},
		{"zero cache ttl", func(c *Config) { c.CacheTTL = 0 }, false},
		{"zero session ttl", func(c *Config) { c.SessionTTL = 0 }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.CacheDir = "/tmp/moodart-test"
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !moodarterrors.Is(err, moodarterrors.ErrCodeInvalidInput) {
				t.Errorf("Validate() = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	level, err := cfg.Level()
	if err != nil {
		t.Fatal(err)
	}
	if level != log.DebugLevel {
		t.Errorf("Level() = %v, want debug", level)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(isolated(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Size != want.Size || cfg.CacheBackend != want.CacheBackend || cfg.ListenAddr != want.ListenAddr {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	opts := isolated(t)
	opts.File = writeFile(t, t.TempDir(), "config.toml", `
size = 256
art_delay_min = "0s"
art_delay_max = "500ms"
cache_backend = "none"
log_level = "debug"
`)

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Size != 256 {
		t.Errorf("Size = %d, want 256", cfg.Size)
	}
	if cfg.ArtDelayMin != 0 || cfg.ArtDelayMax != 500*time.Millisecond {
		t.Errorf("art delay = %s-%s, want 0s-500ms", cfg.ArtDelayMin, cfg.ArtDelayMax)
	}
	if cfg.CacheBackend != CacheNone {
		t.Errorf("CacheBackend = %q, want none", cfg.CacheBackend)
	}
	if cfg.StoryDelayMax != 3*time.Second {
		t.Errorf("unset key lost its default: StoryDelayMax = %s", cfg.StoryDelayMax)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"unknown key", "colour = \"red\"\n", "unknown keys"},
		{"bad syntax", "size = = 3\n", "read config"},
		{"invalid value", "size = 2\n", "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := isolated(t)
			opts.File = writeFile(t, t.TempDir(), "config.toml", tt.content)
			_, err := Load(opts)
			if err == nil || !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Load() = %v, want error containing %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	opts := isolated(t)
	opts.File = filepath.Join(t.TempDir(), "nope.toml")
	if _, err := Load(opts); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadEnvironment(t *testing.T) {
	opts := isolated(t)
	opts.File = writeFile(t, t.TempDir(), "config.toml", "size = 256\n")
	opts.Environ = map[string]string{
		"MOODART_SIZE":          "1024",
		"MOODART_CACHE_BACKEND": "redis",
		"MOODART_REDIS_DB":      "3",
		"MOODART_SESSION_TTL":   "1h",
		"UNRELATED":             "x",
	}

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Size != 1024 {
		t.Errorf("Size = %d, env should override file", cfg.Size)
	}
	if cfg.CacheBackend != CacheRedis || cfg.RedisDB != 3 {
		t.Errorf("redis settings = %q/%d", cfg.CacheBackend, cfg.RedisDB)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("SessionTTL = %s, want 1h", cfg.SessionTTL)
	}
}

func TestLoadDotEnv(t *testing.T) {
	opts := isolated(t)
	opts.EnvFile = writeFile(t, t.TempDir(), ".env", "MOODART_SIZE=128\nMOODART_LISTEN_ADDR=:9000\n")
	opts.Environ["MOODART_LISTEN_ADDR"] = ":7000"

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Size != 128 {
		t.Errorf("Size = %d, want 128 from .env", cfg.Size)
	}
	if cfg.ListenAddr != ":7000" {
		t.Errorf("ListenAddr = %q, process env should win over .env", cfg.ListenAddr)
	}
}

func TestLoadBadEnvironment(t *testing.T) {
	opts := isolated(t)
	opts.Environ["MOODART_SIZE"] = "huge"
	if _, err := Load(opts); err == nil {
		t.Error("expected parse error")
	}
}

func TestEncode(t *testing.T) {
	cfg := Default()
	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"size = 512", `cache_backend = "file"`, `listen_addr = ":8080"`} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded config missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "redis_password") {
		t.Error("empty password should be omitted")
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	want := filepath.Join("/custom/config", AppName, "config.toml")
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	want := filepath.Join(home, ".cache", AppName)
	if got := defaultCacheDir(); got != want {
		t.Errorf("defaultCacheDir() = %q, want %q", got, want)
	}

	t.Setenv("XDG_CACHE_HOME", "/custom/cache")
	if got := defaultCacheDir(); got != filepath.Join("/custom/cache", AppName) {
		t.Errorf("defaultCacheDir() = %q with XDG_CACHE_HOME", got)
	}
}
