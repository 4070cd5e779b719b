// Package render turns a mood and a style into a finished PNG.
//
// # Overview
//
// A [Generator] runs the same fixed sequence for every request:
//
//  1. Validate the mood and style (UNKNOWN_MOOD / UNKNOWN_STYLE).
//  2. Wait out the simulated latency, honouring context cancellation.
//  3. Allocate a square RGBA canvas.
//  4. Paint the mood's atmosphere: a radial gradient centred on the canvas
//     through the three stops of [palette.Atmosphere].
//  5. Dispatch to exactly one renderer from [styles.For].
//  6. Apply the grain from [texture.Apply].
//  7. Encode to PNG and wrap it as a base64 data URI.
//
// Each call owns its canvas and its random source, so a single Generator
// is safe for concurrent use. There is no cancellation once drawing has
// started; the simulated wait is the only point where a request can be
// abandoned.
//
// # Seeds
//
// Every piece is drawn from a PCG generator seeded by a uint64. Passing a
// zero seed asks the Generator to pick one; the seed actually used is
// reported in [Image.Seed], and rendering the same mood, style, size and
// seed again yields byte-identical PNGs.
//
//	gen := render.New(render.WithSize(512), render.WithDelay(2*time.Second, 4*time.Second))
//	img, err := gen.Generate(ctx, art.GenerationConfig{Mood: art.Calm, Style: art.Watercolor}, 0)
//
// [palette.Atmosphere]: github.com/matzehuels/moodart/pkg/palette
// [styles.For]: github.com/matzehuels/moodart/pkg/render/styles
// [texture.Apply]: github.com/matzehuels/moodart/pkg/render/texture
package render
