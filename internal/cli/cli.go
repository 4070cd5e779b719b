package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/moodart/pkg/buildinfo"
	"github.com/matzehuels/moodart/pkg/cache"
	"github.com/matzehuels/moodart/pkg/config"
	"github.com/matzehuels/moodart/pkg/observability"
	"github.com/matzehuels/moodart/pkg/pipeline"
	"github.com/matzehuels/moodart/pkg/render"
	"github.com/matzehuels/moodart/pkg/story"
)

// =============================================================================
// Constants
// =============================================================================

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configFile string
	verbose    bool
}

// New creates a new CLI instance with a default logger and built-in config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "moodart",
		Short: "Moodart paints procedural artwork and short stories from a mood",
		Long: `Moodart turns a mood and a visual style into a procedurally generated
PNG, and writes short seven-paragraph stories in the same mood.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/moodart/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.storyCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves the layered config and applies its log level. The
// --verbose flag wins over the configured level.
func (c *CLI) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.LoadOptions{File: c.configFile})
	if err != nil {
		return err
	}
	c.Config = cfg

	level, _ := cfg.Level()
	if c.verbose {
		level = log.DebugLevel
		observability.SetGenerationHooks(observability.LogHooks{Logger: c.Logger})
		observability.SetCacheHooks(observability.LogHooks{Logger: c.Logger})
	}
	c.SetLogLevel(level)
	c.Logger.Debug("config loaded", "backend", cfg.CacheBackend, "size", cfg.Size)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The returned cache must be
// closed by the caller.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, cache.Cache, error) {
	cfg := c.Config
	ch, err := newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, nil, err
	}

	gen := render.New(
		render.WithSize(cfg.Size),
		render.WithDelay(cfg.ArtDelayMin, cfg.ArtDelayMax),
		render.WithLogger(c.Logger),
	)
	stories := story.NewEngine(
		story.WithDelay(cfg.StoryDelayMin, cfg.StoryDelayMax),
		story.WithLogger(c.Logger),
	)
	keyer := cache.NewScopedKeyer(nil, buildinfo.CacheScope())

	runner := pipeline.NewRunner(gen, stories, ch, keyer, c.Logger)
	runner.TTL = cfg.CacheTTL
	return runner, ch, nil
}

// newCache opens the configured cache backend.
func newCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.CacheBackend {
	case config.CacheFile:
		return cache.NewFileCache(cfg.CacheDir)
	case config.CacheRedis:
		rc, err := cache.ConnectRedis(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return rc, nil
	default:
		return cache.NewNullCache(), nil
	}
}

// =============================================================================
// Output Helpers
// =============================================================================

// ensureDir creates dir if needed.
func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}
