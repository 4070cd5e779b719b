// Package pkg provides the core libraries for moodart, a procedural mood art
// and story engine.
//
// # Overview
//
// Moodart turns a feeling into a picture. A caller picks one of eight moods
// and one of ten visual styles; the engine derives a colour palette from the
// mood and paints a square PNG in the style, seeded so the same request can
// be reproduced exactly. A second engine writes short mood-driven stories
// from fixed phrase banks.
//
// The pkg directory is organized into these areas:
//
//  1. [art] - The closed Mood and Style enumerations and GenerationConfig
//  2. [palette] - Mood to colour palette and atmosphere mapping
//  3. [render] - The drawing surface, the ten style routines, and textures
//  4. [artwork] and [story] - The pieces and stories handed to callers
//  5. [gallery] and [session] - Per-user selection and history state
//  6. [pipeline] - Orchestration (validate → cache → render → piece)
//  7. [cache], [config], [observability] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through moodart:
//
//	Mood + Style (+ prompt, seed, size)
//	         ↓
//	    [pipeline] package (validate options, consult cache)
//	         ↓
//	    [palette] package (mood → colours)
//	         ↓
//	    [render] package (style routine on a square surface)
//	         ↓
//	    [artwork] package (PNG data URI + prompt + id)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/moodart/pkg/art"
//	    "github.com/matzehuels/moodart/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil, nil, nil)
//	res, err := runner.Generate(context.Background(), pipeline.Options{
//	    Mood:  art.Calm,
//	    Style: art.Watercolor,
//	    Seed:  42,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Piece.Prompt)
//
// # Errors
//
// Every failure carries a code from [errors]. UNKNOWN_MOOD and UNKNOWN_STYLE
// are rejected before anything is drawn. RENDERING_UNAVAILABLE is the only
// retryable failure.
//
// [art]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/art
// [palette]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/palette
// [render]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/render
// [artwork]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/artwork
// [story]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/story
// [gallery]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/gallery
// [session]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/session
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/moodart/pkg/errors
package pkg
