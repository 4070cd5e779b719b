package styles

import (
	"image/color"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/palette"
)

var (
	paperColor  = palette.MustParse("#f4f1e8")
	vintageInks = []color.NRGBA{
		palette.MustParse("#8B7765"),
		palette.MustParse("#A0826D"),
		palette.MustParse("#B8956A"),
		palette.MustParse("#C9A96E"),
	}
)

// renderVintage lays down aged paper, 20 faint stains and 6 muted brown
// discs. It ignores the mood palette.
func renderVintage(s *Surface, _ palette.ColorPalette, w, h int, _ art.Mood) {
	k := scale(w)
	fw, fh := float64(w), float64(h)
	s.SetColor(paperColor)
	s.DrawRectangle(0, 0, fw, fh)
	s.Fill()

	for range 20 {
		alpha := uint8(s.Float(0.3) * 255)
		s.SetColor(color.NRGBA{R: 139, G: 119, B: 101, A: alpha})
		s.DrawCircle(s.Float(fw), s.Float(fh), s.Between(20, 70)*k)
		s.Fill()
	}

	for range 6 {
		s.SetColor(palette.WithAlpha(s.Pick(vintageInks), 0xCC))
		x, y := s.Float(fw), s.Float(fh)
		s.DrawCircle(x, y, s.Between(50, 150)*k)
		s.Fill()
	}
}
