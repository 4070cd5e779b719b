package styles

import (
	"image/color"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/palette"
)

// PixelSize is the edge length of one pixel-art cell.
const PixelSize = 16

// pixelFill is the probability that a pixel-art cell is painted.
const pixelFill = 0.4

type cell struct {
	x, y float64
	c    color.NRGBA
}

// renderPixel tiles the canvas with PixelSize cells and paints roughly 40%
// of them in flat palette colours with a faint glow.
func renderPixel(s *Surface, p palette.ColorPalette, w, h int, _ art.Mood) {
	colors := p.Colors()
	var cells []cell
	for x := 0; x < w; x += PixelSize {
		for y := 0; y < h; y += PixelSize {
			if s.Rand.Float64() < pixelFill {
				cells = append(cells, cell{float64(x), float64(y), s.Pick(colors)})
			}
		}
	}

	glow := s.Layer()
	for _, c := range cells {
		glow.SetColor(c.c)
		glow.DrawRectangle(c.x, c.y, PixelSize, PixelSize)
		glow.Fill()
	}
	s.Composite(glow, blurSigma(5, 1), 0, 0)

	for _, c := range cells {
		s.SetColor(c.c)
		s.DrawRectangle(c.x, c.y, PixelSize, PixelSize)
		s.Fill()
	}
}

var (
	spaceColors = []color.Color{
		palette.MustParse("#0a0a2e"),
		palette.MustParse("#16213e"),
		palette.MustParse("#0f0f23"),
	}
	starColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type star struct {
	x, y, r float64
}

// renderCosmic replaces the atmosphere with deep space, scatters 150 stars
// of which about a fifth twinkle, and drifts 5 nebulae across them.
// Star radii are pixel-sized and do not scale with the canvas.
func renderCosmic(s *Surface, p palette.ColorPalette, w, h int, _ art.Mood) {
	k := scale(w)
	fw, fh := float64(w), float64(h)
	FillRadial(s.Context, w, h, fw/2, spaceColors...)

	s.SetColor(starColor)
	var twinkling []star
	for range 150 {
		st := star{x: s.Float(fw), y: s.Float(fh), r: s.Between(1, 4)}
		s.DrawCircle(st.x, st.y, st.r)
		s.Fill()
		if s.Rand.Float64() > 0.8 {
			twinkling = append(twinkling, st)
		}
	}
	if len(twinkling) > 0 {
		glow := s.Layer()
		glow.SetColor(starColor)
		for _, st := range twinkling {
			glow.DrawCircle(st.x, st.y, st.r)
			glow.Fill()
		}
		s.Composite(glow, blurSigma(10, 1), 0, 0)
		s.SetColor(starColor)
		for _, st := range twinkling {
			s.DrawCircle(st.x, st.y, st.r)
			s.Fill()
		}
	}

	for range 5 {
		s.SetFillStyle(newRadial(
			s.Float(fw), s.Float(fh), 0,
			s.Float(fw), s.Float(fh), s.Between(100, 300)*k,
			stop{0, palette.WithAlpha(p.PrimaryColor(), 0x60)},
			stop{0.5, palette.WithAlpha(p.SecondaryColor(), 0x40)},
			stop{1, palette.Transparent(p.SecondaryColor())},
		))
		s.DrawCircle(s.Float(fw), s.Float(fh), s.Between(75, 225)*k)
		s.Fill()
	}
}

var neonBackground = palette.MustParse("#0a0a0a")

type neonStroke struct {
	c                      color.NRGBA
	width                  float64
	x0, y0, cx, cy, x1, y1 float64
}

// renderNeon blacks out the canvas and draws 8 quadratic strokes wrapped in
// a heavy glow.
func renderNeon(s *Surface, p palette.ColorPalette, w, h int, _ art.Mood) {
	k := scale(w)
	fw, fh := float64(w), float64(h)
	s.SetColor(neonBackground)
	s.DrawRectangle(0, 0, fw, fh)
	s.Fill()

	colors := p.Colors()
	strokes := make([]neonStroke, 8)
	for i := range strokes {
		st := neonStroke{c: s.Pick(colors), width: s.Between(4, 12) * k}
		st.x0, st.y0 = s.Float(fw), s.Float(fh)
		st.x1, st.y1 = s.Float(fw), s.Float(fh)
		st.cx = (st.x0+st.x1)/2 + (s.Rand.Float64()-0.5)*200*k
		st.cy = (st.y0+st.y1)/2 + (s.Rand.Float64()-0.5)*200*k
		strokes[i] = st
	}

	glow := s.Layer()
	glow.SetLineCapRound()
	for _, st := range strokes {
		glow.SetColor(palette.Lighten(st.c, 0.2))
		glow.SetLineWidth(st.width * 2)
		glow.MoveTo(st.x0, st.y0)
		glow.QuadraticTo(st.cx, st.cy, st.x1, st.y1)
		glow.Stroke()
	}
	s.Composite(glow, blurSigma(20, k), 0, 0)

	s.SetLineCapRound()
	for _, st := range strokes {
		s.SetColor(st.c)
		s.SetLineWidth(st.width)
		s.MoveTo(st.x0, st.y0)
		s.QuadraticTo(st.cx, st.cy, st.x1, st.y1)
		s.Stroke()
	}
}
