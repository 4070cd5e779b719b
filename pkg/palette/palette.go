// Package palette holds the static colour tables of the art engine.
//
// Two independent tables live here. [For] maps every mood to its named
// four-colour [ColorPalette]; renderers draw shapes from its primary,
// secondary and accent channels. [Atmosphere] maps every mood to the three
// stops of the radial background gradient painted before any renderer
// runs. The atmosphere stops are related to, but deliberately not equal to,
// the named palette: one sets the scene, the other paints on it.
//
// All tables are read-only after package initialization and safe for
// concurrent use.
package palette

import (
	"fmt"
	"image/color"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/moodart/pkg/art"
)

// ColorPalette is the four-colour scheme associated with a mood.
// Primary, Secondary and Accent are "#RRGGBB" hex strings; Background is a
// CSS gradient value suitable for a browser front end.
type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

var table = map[art.Mood]ColorPalette{
	art.Happy:       newPalette("#FFD700", "#FF6B6B", "#4ECDC4"),
	art.Calm:        newPalette("#87CEEB", "#98D8C8", "#E6F3FF"),
	art.Energetic:   newPalette("#FF4500", "#FF8C00", "#FFD700"),
	art.Mysterious:  newPalette("#4B0082", "#2E0249", "#8A2BE2"),
	art.Melancholic: newPalette("#708090", "#2F4F4F", "#B0C4DE"),
	art.Excited:     newPalette("#FF1493", "#FF69B4", "#FFB6C1"),
	art.Adventurous: newPalette("#32CD32", "#228B22", "#90EE90"),
	art.Dreamy:      newPalette("#DDA0DD", "#9370DB", "#E6E6FA"),
}

// newPalette builds a palette whose background runs diagonally from the
// primary to the secondary colour.
func newPalette(primary, secondary, accent string) ColorPalette {
	return ColorPalette{
		Primary:    primary,
		Secondary:  secondary,
		Accent:     accent,
		Background: fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", primary, secondary),
	}
}

// For returns the palette for m. It is total over the eight moods and pure;
// the returned value is a copy. Values outside the enumeration yield the
// zero palette, so callers validate moods first.
func For(m art.Mood) ColorPalette {
	return table[m]
}

// PrimaryColor returns the parsed primary colour, opaque black if unparsable.
func (p ColorPalette) PrimaryColor() color.NRGBA { return parseOrBlack(p.Primary) }

// SecondaryColor returns the parsed secondary colour, opaque black if unparsable.
func (p ColorPalette) SecondaryColor() color.NRGBA { return parseOrBlack(p.Secondary) }

// AccentColor returns the parsed accent colour, opaque black if unparsable.
func (p ColorPalette) AccentColor() color.NRGBA { return parseOrBlack(p.Accent) }

// Colors returns primary, secondary and accent in that order. Renderers
// that pick "a random palette colour" pick from this slice.
func (p ColorPalette) Colors() []color.NRGBA {
	return []color.NRGBA{p.PrimaryColor(), p.SecondaryColor(), p.AccentColor()}
}

// hexColor matches "#RGB" and "#RRGGBB". colorful.Hex alone accepts
// trailing garbage.
var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Parse converts a "#RRGGBB" (or "#RGB") string to an opaque colour.
func Parse(hex string) (color.NRGBA, error) {
	if !hexColor.MatchString(hex) {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: not a #RGB or #RRGGBB value", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	return fromColorful(c), nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level tables of literal colours.
func MustParse(hex string) color.NRGBA {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced by a (0 transparent, 255 opaque).
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Transparent returns c with zero alpha. Gradients that fade "to
// transparent" use this so the colour channels do not drift toward black
// on the way out.
func Transparent(c color.NRGBA) color.NRGBA {
	return WithAlpha(c, 0)
}

// Lighten blends c toward white by t in Lab space, preserving alpha.
func Lighten(c color.NRGBA, t float64) color.NRGBA {
	white := colorful.Color{R: 1, G: 1, B: 1}
	out := fromColorful(toColorful(c).BlendLab(white, t).Clamped())
	out.A = c.A
	return out
}

func parseOrBlack(hex string) color.NRGBA {
	c, err := Parse(hex)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return c
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
