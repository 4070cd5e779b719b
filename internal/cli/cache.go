package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/moodart/pkg/cache"
	"github.com/matzehuels/moodart/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.CacheBackend == config.CacheNone {
				printInfo("Cache is disabled")
				return nil
			}
			ch, err := newCache(cmd.Context(), c.Config, false)
			if err != nil {
				return err
			}
			defer ch.Close()

			count, err := clearCache(cmd.Context(), ch)
			if err != nil {
				return err
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Backend: %s", describeCache(c.Config))
			return nil
		},
	}
}

// clearCache empties ch if its backend supports it.
func clearCache(ctx context.Context, ch cache.Cache) (int, error) {
	clearer, ok := ch.(cache.Clearer)
	if !ok {
		return 0, nil
	}
	n, err := clearer.Clear(ctx)
	if err != nil {
		return n, fmt.Errorf("clear cache: %w", err)
	}
	return n, nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(describeCache(c.Config))
		},
	}
}

// describeCache names the configured cache location.
func describeCache(cfg *config.Config) string {
	switch cfg.CacheBackend {
	case config.CacheFile:
		return cfg.CacheDir
	case config.CacheRedis:
		return fmt.Sprintf("redis://%s/%d", cfg.RedisAddr, cfg.RedisDB)
	default:
		return config.CacheNone
	}
}
