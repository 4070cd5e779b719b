package styles

import (
	"image/color"

	"github.com/fogleman/gg"
)

// shadowColor is the translucent black used under minimalist shapes.
var shadowColor = color.NRGBA{A: 0x33}

type stop struct {
	offset float64
	color  color.Color
}

func newLinear(x0, y0, x1, y1 float64, stops ...stop) gg.Gradient {
	g := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, st := range stops {
		g.AddColorStop(st.offset, st.color)
	}
	return g
}

func newRadial(x0, y0, r0, x1, y1, r1 float64, stops ...stop) gg.Gradient {
	g := gg.NewRadialGradient(x0, y0, r0, x1, y1, r1)
	for _, st := range stops {
		g.AddColorStop(st.offset, st.color)
	}
	return g
}

// FillRadial paints the whole w×h canvas of dc with a radial gradient
// centred on the canvas, running from radius 0 to r through the given
// colours at evenly spaced offsets.
func FillRadial(dc *gg.Context, w, h int, r float64, colors ...color.Color) {
	cx, cy := float64(w)/2, float64(h)/2
	stops := make([]stop, len(colors))
	for i, c := range colors {
		off := 0.0
		if len(colors) > 1 {
			off = float64(i) / float64(len(colors)-1)
		}
		stops[i] = stop{off, c}
	}
	dc.SetFillStyle(newRadial(cx, cy, 0, cx, cy, r, stops...))
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
}
