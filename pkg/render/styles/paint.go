package styles

import (
	"math"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/palette"
)

// renderImpressionist dabs 200 short rotated brush strokes in random
// palette colours.
func renderImpressionist(s *Surface, p palette.ColorPalette, w, h int, _ art.Mood) {
	k := scale(w)
	colors := p.Colors()
	for range 200 {
		s.SetColor(palette.WithAlpha(s.Pick(colors), 0x60))
		x, y := s.Float(float64(w)), s.Float(float64(h))
		sw := s.Between(10, 40) * k
		sh := s.Between(3, 11) * k
		angle := s.Float(math.Pi)

		s.Push()
		s.Translate(x, y)
		s.Rotate(angle)
		s.DrawRectangle(-sw/2, -sh/2, sw, sh)
		s.Fill()
		s.Pop()
	}
}

// renderSurreal floats 6 soft blobs that fade from primary to nothing.
func renderSurreal(s *Surface, p palette.ColorPalette, w, h int, _ art.Mood) {
	k := scale(w)
	fw, fh := float64(w), float64(h)
	primary := p.PrimaryColor()
	for range 6 {
		s.SetFillStyle(newRadial(
			s.Float(fw), s.Float(fh), 0,
			s.Float(fw), s.Float(fh), 100*k,
			stop{0, palette.WithAlpha(primary, 0x80)},
			stop{1, palette.Transparent(primary)},
		))
		s.DrawCircle(s.Float(fw), s.Float(fh), s.Between(40, 120)*k)
		s.Fill()
	}
}

// renderWatercolor layers 12 large washes, each fading from primary through
// secondary to transparent.
func renderWatercolor(s *Surface, p palette.ColorPalette, w, h int, _ art.Mood) {
	k := scale(w)
	fw, fh := float64(w), float64(h)
	for range 12 {
		s.SetFillStyle(newRadial(
			s.Float(fw), s.Float(fh), 0,
			s.Float(fw), s.Float(fh), s.Between(50, 200)*k,
			stop{0, palette.WithAlpha(p.PrimaryColor(), 0x40)},
			stop{0.5, palette.WithAlpha(p.SecondaryColor(), 0x30)},
			stop{1, palette.Transparent(p.SecondaryColor())},
		))
		s.DrawCircle(s.Float(fw), s.Float(fh), s.Between(60, 180)*k)
		s.Fill()
	}
}
