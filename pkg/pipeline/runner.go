package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/artwork"
	"github.com/matzehuels/moodart/pkg/cache"
	"github.com/matzehuels/moodart/pkg/observability"
	"github.com/matzehuels/moodart/pkg/render"
	"github.com/matzehuels/moodart/pkg/story"
)

// cacheKeyType labels art entries in cache hooks.
const cacheKeyType = "art"

// Runner encapsulates generation with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for its collaborators; it doesn't store
// results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Generator *render.Generator
	Stories   *story.Engine
	Cache     cache.Cache
	Keyer     cache.Keyer
	TTL       time.Duration
	Logger    *log.Logger
}

// NewRunner creates a runner. Nil collaborators get defaults: a 512px
// generator without delay, an unseeded story engine, a NullCache, a
// DefaultKeyer and a discarding logger.
func NewRunner(gen *render.Generator, stories *story.Engine, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if gen == nil {
		gen = render.New(render.WithLogger(logger))
	}
	if stories == nil {
		stories = story.NewEngine(story.WithLogger(logger))
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	return &Runner{
		Generator: gen,
		Stories:   stories,
		Cache:     c,
		Keyer:     keyer,
		TTL:       cache.DefaultTTL,
		Logger:    logger,
	}
}

// Generate renders one piece. On error no piece is produced.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	cfg := opts.Config()
	hooks := observability.Generation()
	hooks.OnGenerateStart(ctx, string(opts.Mood), string(opts.Style))

	start := time.Now()
	img, hit, err := r.renderWithCache(ctx, opts)
	elapsed := time.Since(start)
	hooks.OnGenerateComplete(ctx, string(opts.Mood), string(opts.Style), elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	piece := artwork.New(cfg, img)
	r.Logger.Info("generated art",
		"id", piece.ID,
		"mood", piece.Mood,
		"style", piece.Style,
		"seed", img.Seed,
		"cached", hit,
		"duration", elapsed)

	return &Result{
		Piece:    piece,
		CacheHit: hit,
		Stats: Stats{
			RenderTime: elapsed,
			Bytes:      len(img.PNG),
			Seed:       img.Seed,
		},
	}, nil
}

// renderWithCache returns the image for opts and whether it came from the
// cache. Only seeded requests touch the cache.
func (r *Runner) renderWithCache(ctx context.Context, opts Options) (render.Image, bool, error) {
	gen := r.Generator.Sized(opts.Size)
	if opts.Seed == 0 {
		img, err := gen.Generate(ctx, opts.Config(), 0)
		return img, false, err
	}

	key := r.Keyer.ArtKey(opts.Mood, opts.Style, opts.Size, opts.Seed)
	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		}
		if err == nil && hit {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			return render.Image{
				PNG:     data,
				DataURI: render.EncodeDataURI(data),
				Width:   opts.Size,
				Height:  opts.Size,
				Seed:    opts.Seed,
			}, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	img, err := gen.Generate(ctx, opts.Config(), opts.Seed)
	if err != nil {
		return render.Image{}, false, err
	}
	if err := r.Cache.Set(ctx, key, img.PNG, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(img.PNG))
	}
	return img, false, nil
}

// Story writes a story for mood.
func (r *Runner) Story(ctx context.Context, mood art.Mood) (story.Story, error) {
	start := time.Now()
	s, err := r.Stories.Generate(ctx, mood)
	observability.Generation().OnStoryComplete(ctx, string(mood), time.Since(start), err)
	if err != nil {
		return story.Story{}, fmt.Errorf("story: %w", err)
	}
	r.Logger.Info("wrote story", "id", s.ID, "mood", s.Mood, "title", s.Title)
	return s, nil
}
