package styles

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// referenceWidth is the canvas width the renderers' lengths are tuned for.
const referenceWidth = 512.0

// Surface is the drawing target handed to a renderer: a gg context plus the
// request's random source. A Surface is owned by a single render call.
type Surface struct {
	*gg.Context
	Rand *rand.Rand
}

// NewSurface wraps dc and rng. The context must be backed by an
// *image.RGBA, which every gg.NewContext is.
func NewSurface(dc *gg.Context, rng *rand.Rand) *Surface {
	return &Surface{Context: dc, Rand: rng}
}

// RGBA returns the pixels behind the surface.
func (s *Surface) RGBA() *image.RGBA {
	return s.Image().(*image.RGBA)
}

// Float returns a uniform value in [0, n).
func (s *Surface) Float(n float64) float64 {
	return s.Rand.Float64() * n
}

// Between returns a uniform value in [lo, hi).
func (s *Surface) Between(lo, hi float64) float64 {
	return lo + s.Rand.Float64()*(hi-lo)
}

// Pick returns a uniformly chosen colour from cs.
func (s *Surface) Pick(cs []color.NRGBA) color.NRGBA {
	return cs[s.Rand.IntN(len(cs))]
}

// Layer returns a transparent offscreen context the size of the surface.
// Glows and shadows are drawn there and then merged with Composite.
func (s *Surface) Layer() *gg.Context {
	return gg.NewContext(s.Width(), s.Height())
}

// Composite blurs layer with a Gaussian of the given sigma and draws it over
// the surface, shifted by (dx, dy) pixels.
func (s *Surface) Composite(layer *gg.Context, sigma float64, dx, dy int) {
	blurred := imaging.Blur(layer.Image(), sigma)
	dst := s.RGBA()
	draw.Draw(dst, dst.Bounds().Add(image.Pt(dx, dy)), blurred, blurred.Bounds().Min, draw.Over)
}

// scale converts a length tuned for the reference canvas to canvas w.
func scale(w int) float64 {
	return float64(w) / referenceWidth
}

// blurSigma maps a canvas-style shadow blur radius to a Gaussian sigma.
func blurSigma(radius, k float64) float64 {
	return max(radius*k/2, 0.5)
}
