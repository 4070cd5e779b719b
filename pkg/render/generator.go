package render

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"

	"github.com/matzehuels/moodart/pkg/art"
	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
	"github.com/matzehuels/moodart/pkg/palette"
	"github.com/matzehuels/moodart/pkg/render/styles"
	"github.com/matzehuels/moodart/pkg/render/texture"
)

// DefaultSize is the edge length of a rendered piece in pixels.
const DefaultSize = 512

// atmosphereReach is the outer radius of the atmosphere gradient relative
// to the canvas edge length.
const atmosphereReach = 400.0 / 512.0

// Image is one encoded piece.
type Image struct {
	PNG     []byte `json:"-"`
	DataURI string `json:"data_uri"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Seed    uint64 `json:"seed"`
}

// Generator renders pieces. The zero value is not usable; call New.
type Generator struct {
	size     int
	delayMin time.Duration
	delayMax time.Duration
	seeds    func() uint64
	logger   *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSize sets the canvas edge length in pixels (default 512).
func WithSize(px int) Option {
	return func(g *Generator) { g.size = px }
}

// WithDelay sets the simulated latency range. Each request waits a uniform
// duration in [min, max]. The default is no delay.
func WithDelay(min, max time.Duration) Option {
	return func(g *Generator) {
		g.delayMin = min
		g.delayMax = max
	}
}

// WithSeedSource replaces the source used to pick a seed when a request
// passes zero. The default draws from the runtime's random generator.
func WithSeedSource(fn func() uint64) Option {
	return func(g *Generator) { g.seeds = fn }
}

// WithLogger sets the logger for per-request debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		size:  DefaultSize,
		seeds: rand.Uint64,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.delayMax < g.delayMin {
		g.delayMax = g.delayMin
	}
	return g
}

// Size returns the canvas edge length.
func (g *Generator) Size() int { return g.size }

// Sized returns a copy of g that renders at px×px. Zero keeps the current size.
func (g *Generator) Sized(px int) *Generator {
	if px == 0 || px == g.size {
		return g
	}
	c := *g
	c.size = px
	return &c
}

// NewRand returns the random source a piece with the given seed is drawn from.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Generate renders one piece. A zero seed asks the Generator to choose one.
//
// Unknown moods or styles fail with UNKNOWN_MOOD or UNKNOWN_STYLE before any
// waiting. If ctx ends during the simulated wait, ctx.Err() is returned and
// nothing is drawn. A canvas that cannot be allocated or encoded fails with
// RENDERING_UNAVAILABLE, which callers may retry.
func (g *Generator) Generate(ctx context.Context, cfg art.GenerationConfig, seed uint64) (Image, error) {
	if err := cfg.Validate(); err != nil {
		return Image{}, err
	}
	if err := moodarterrors.ValidateSize(g.size); err != nil {
		return Image{}, err
	}
	renderer, err := styles.For(cfg.Style)
	if err != nil {
		return Image{}, err
	}
	if err := g.wait(ctx); err != nil {
		return Image{}, err
	}

	for seed == 0 {
		seed = g.seeds()
	}
	start := time.Now()
	data, err := g.paint(cfg.Mood, renderer, seed)
	if err != nil {
		g.logger.Warn("render failed", "mood", cfg.Mood, "style", cfg.Style, "size", g.size, "error", err)
		return Image{}, err
	}
	g.logger.Debug("rendered piece",
		"mood", cfg.Mood,
		"style", cfg.Style,
		"size", g.size,
		"seed", seed,
		"bytes", len(data),
		"duration", time.Since(start))

	return Image{
		PNG:     data,
		DataURI: EncodeDataURI(data),
		Width:   g.size,
		Height:  g.size,
		Seed:    seed,
	}, nil
}

func (g *Generator) wait(ctx context.Context) error {
	d := g.delayMin
	if span := g.delayMax - g.delayMin; span > 0 {
		d += rand.N(span + 1)
	}
	if d <= 0 {
		return ctx.Err()
	}
	g.logger.Debug("simulating latency", "delay", d)
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// paint draws and encodes the canvas. Allocation failures inside the
// drawing library surface as panics, which are reported as
// RENDERING_UNAVAILABLE.
func (g *Generator) paint(m art.Mood, renderer styles.Renderer, seed uint64) (data []byte, err error) {
	size := g.size
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = moodarterrors.New(moodarterrors.ErrCodeRenderingUnavailable,
				"draw %dx%d canvas: %v", size, size, r)
		}
	}()

	rng := NewRand(seed)
	dc := gg.NewContext(size, size)
	at := palette.Atmosphere(m)
	styles.FillRadial(dc, size, size, float64(size)*atmosphereReach, at[0], at[1], at[2])

	s := styles.NewSurface(dc, rng)
	renderer.Render(s, palette.For(m), size, size, m)
	texture.Apply(s.RGBA(), size, size, m, rng)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, moodarterrors.Wrap(moodarterrors.ErrCodeRenderingUnavailable, err, "encode png")
	}
	return buf.Bytes(), nil
}
