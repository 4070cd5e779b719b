// Package styles holds the ten art style renderers.
//
// A [Renderer] paints onto a [Surface] that already carries the mood's
// atmosphere background. Renderers draw shapes from the palette's primary,
// secondary and accent colours with alpha so layered shapes blend. Each one
// is self-contained: it never calls another renderer, never applies the
// grain texture, and touches no state outside the surface it is given.
//
// Lengths in the renderers are expressed for a 512px canvas and scale with
// the actual canvas width, so a 64px test render is a miniature of the
// full-size piece.
package styles

import (
	"github.com/matzehuels/moodart/pkg/art"
	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
	"github.com/matzehuels/moodart/pkg/palette"
)

// Renderer paints one style onto a surface. Implementations mutate the
// surface in place and draw all randomness from s.Rand.
type Renderer interface {
	Render(s *Surface, p palette.ColorPalette, w, h int, m art.Mood)
}

// RendererFunc adapts an ordinary function to the Renderer interface.
type RendererFunc func(s *Surface, p palette.ColorPalette, w, h int, m art.Mood)

// Render calls f.
func (f RendererFunc) Render(s *Surface, p palette.ColorPalette, w, h int, m art.Mood) {
	f(s, p, w, h, m)
}

// For returns the renderer for style. Values outside the enumeration are
// UNKNOWN_STYLE.
func For(style art.Style) (Renderer, error) {
	switch style {
	case art.Abstract:
		return RendererFunc(renderAbstract), nil
	case art.Impressionist:
		return RendererFunc(renderImpressionist), nil
	case art.Minimalist:
		return RendererFunc(renderMinimalist), nil
	case art.Surreal:
		return RendererFunc(renderSurreal), nil
	case art.Pixel:
		return RendererFunc(renderPixel), nil
	case art.Watercolor:
		return RendererFunc(renderWatercolor), nil
	case art.Geometric:
		return RendererFunc(renderGeometric), nil
	case art.Cosmic:
		return RendererFunc(renderCosmic), nil
	case art.Neon:
		return RendererFunc(renderNeon), nil
	case art.Vintage:
		return RendererFunc(renderVintage), nil
	}
	return nil, moodarterrors.New(moodarterrors.ErrCodeUnknownStyle, "unknown style: %q", string(style))
}

// All returns a renderer for every style.
func All() map[art.Style]Renderer {
	out := make(map[art.Style]Renderer, len(art.Styles()))
	for _, st := range art.Styles() {
		r, _ := For(st)
		out[st] = r
	}
	return out
}
