package styles

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/palette"
)

// renderAbstract draws 8 closed 20-point radial waveforms, each filled with
// a diagonal primary→secondary gradient.
func renderAbstract(s *Surface, p palette.ColorPalette, w, h int, _ art.Mood) {
	k := scale(w)
	fw, fh := float64(w), float64(h)
	for range 8 {
		grad := newLinear(0, 0, fw, fh,
			stop{0, palette.WithAlpha(p.PrimaryColor(), 0x80)},
			stop{1, palette.WithAlpha(p.SecondaryColor(), 0x60)},
		)
		s.SetFillStyle(grad)

		cx, cy := s.Float(fw), s.Float(fh)
		radius := s.Between(50, 200) * k
		for j := range 20 {
			angle := float64(j) / 20 * 2 * math.Pi
			r := radius * (0.7 + math.Sin(float64(j)*0.5)*0.3)
			x, y := cx+math.Cos(angle)*r, cy+math.Sin(angle)*r
			if j == 0 {
				s.MoveTo(x, y)
			} else {
				s.LineTo(x, y)
			}
		}
		s.ClosePath()
		s.Fill()
	}
}

// renderGeometric draws 12 randomly rotated shapes from
// {triangle, square, circle, diamond}.
func renderGeometric(s *Surface, p palette.ColorPalette, w, h int, _ art.Mood) {
	k := scale(w)
	colors := p.Colors()
	for range 12 {
		s.SetColor(palette.WithAlpha(s.Pick(colors), 0xAA))
		x, y := s.Float(float64(w)), s.Float(float64(h))
		size := s.Between(40, 120) * k
		shape := s.Rand.IntN(4)

		s.Push()
		s.Translate(x, y)
		s.Rotate(s.Float(math.Pi))
		half := size / 2
		switch shape {
		case 0:
			s.MoveTo(0, -half)
			s.LineTo(-half, half)
			s.LineTo(half, half)
			s.ClosePath()
		case 1:
			s.DrawRectangle(-half, -half, size, size)
		case 2:
			s.DrawCircle(0, 0, half)
		case 3:
			s.MoveTo(0, -half)
			s.LineTo(half, 0)
			s.LineTo(0, half)
			s.LineTo(-half, 0)
			s.ClosePath()
		}
		s.Fill()
		s.Pop()
	}
}

// renderMinimalist draws a bar, a circle and a second bar at fixed
// proportions of the canvas, lifted off the background by a soft shadow.
func renderMinimalist(s *Surface, p palette.ColorPalette, w, h int, _ art.Mood) {
	k := scale(w)
	fw, fh := float64(w), float64(h)

	shadow := s.Layer()
	drawMinimalist(shadow, fw, fh, [3]color.Color{shadowColor, shadowColor, shadowColor})
	offset := int(math.Round(5 * k))
	s.Composite(shadow, blurSigma(10, k), offset, offset)

	drawMinimalist(s.Context, fw, fh, [3]color.Color{
		palette.WithAlpha(p.PrimaryColor(), 0xCC),
		palette.WithAlpha(p.SecondaryColor(), 0xCC),
		palette.WithAlpha(p.AccentColor(), 0xCC),
	})
}

func drawMinimalist(dc *gg.Context, fw, fh float64, fills [3]color.Color) {
	dc.SetColor(fills[0])
	dc.DrawRectangle(fw*0.1, fh*0.3, fw*0.8, fh*0.05)
	dc.Fill()

	dc.SetColor(fills[1])
	dc.DrawCircle(fw*0.3, fh*0.6, fw*0.08)
	dc.Fill()

	dc.SetColor(fills[2])
	dc.DrawRectangle(fw*0.5, fh*0.7, fw*0.4, fh*0.03)
	dc.Fill()
}
