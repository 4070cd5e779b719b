// Package pipeline runs art and story generation for every front end.
//
// The CLI and the HTTP API both go through a [Runner], so validation,
// caching, hooks and logging behave the same everywhere. A run takes a
// mood, a style and an optional prompt, seed and size, and returns a
// finished [artwork.Piece].
//
// # Caching
//
// When a request carries a non-zero seed its PNG is fully determined by
// mood, style, size and seed, so the Runner stores it under
// [cache.Keyer.ArtKey] and serves repeats from the cache. A cache hit still
// mints a fresh piece with its own id and timestamp. Requests without a seed
// always render.
//
// # Usage
//
//	runner := pipeline.NewRunner(render.New(), story.NewEngine(), fileCache, nil, logger)
//	result, err := runner.Generate(ctx, pipeline.Options{
//	    Mood:  art.Calm,
//	    Style: art.Watercolor,
//	    Seed:  42,
//	})
//	if err != nil {
//	    return err
//	}
//	png, _ := result.Piece.PNG()
//
// The Runner never retries. Callers that want to retry check
// errors.IsRetryable on the returned error.
package pipeline

import (
	"time"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/artwork"
	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
	"github.com/matzehuels/moodart/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMood is used when a request names no mood.
	DefaultMood = art.Happy

	// DefaultStyle is used when a request names no style.
	DefaultStyle = art.Abstract

	// DefaultSize is the default canvas edge length in pixels.
	DefaultSize = render.DefaultSize
)

// =============================================================================
// Options - Generation Request
// =============================================================================

// Options describes one art generation request.
// This struct supports JSON serialization for API requests.
type Options struct {
	Mood    art.Mood  `json:"mood"`
	Style   art.Style `json:"style"`
	Prompt  string    `json:"prompt,omitempty"`
	Seed    uint64    `json:"seed,omitempty"`
	Size    int       `json:"size,omitempty"`
	Refresh bool      `json:"refresh,omitempty"` // Bypass the cache read

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// SetDefaults fills empty fields.
func (o *Options) SetDefaults() {
	if o.Mood == "" {
		o.Mood = DefaultMood
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
}

// ValidateAndSetDefaults fills defaults, then checks every field.
// Mood and style are matched case-insensitively and normalized.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	mood, err := art.ParseMood(string(o.Mood))
	if err != nil {
		return err
	}
	style, err := art.ParseStyle(string(o.Style))
	if err != nil {
		return err
	}
	o.Mood, o.Style = mood, style

	if err := moodarterrors.ValidatePrompt(o.Prompt); err != nil {
		return err
	}
	if err := moodarterrors.ValidateSize(o.Size); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Config returns the generation config the options describe.
func (o Options) Config() art.GenerationConfig {
	return art.GenerationConfig{Mood: o.Mood, Style: o.Style, CustomPrompt: o.Prompt}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a generation run.
type Result struct {
	// Piece is the finished artwork.
	Piece artwork.Piece

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the PNG came from the cache.
	CacheHit bool
}

// Stats contains generation statistics.
type Stats struct {
	RenderTime time.Duration
	Bytes      int
	Seed       uint64
}
