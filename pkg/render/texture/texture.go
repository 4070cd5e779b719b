// Package texture adds a fine grain to a finished canvas.
//
// The grain is the last step of every render: it runs once over the whole
// surface after the style renderer, never inside one.
package texture

import (
	"image"
	"math/rand/v2"

	"github.com/matzehuels/moodart/pkg/art"
)

// Amplitude is the largest offset, in channel units, added to or removed
// from a colour channel.
const Amplitude = 10

// Apply perturbs the R, G and B channels of every pixel inside the w×h
// region at the image origin by independent uniform offsets in
// [-Amplitude, Amplitude]. Results are clamped to [0, 255] and never exceed
// the pixel's alpha, since *image.RGBA is alpha-premultiplied. Alpha itself
// is left untouched.
//
// The mood is accepted so grain can later vary by mood; it does not affect
// the output today.
func Apply(img *image.RGBA, w, h int, _ art.Mood, rng *rand.Rand) {
	if img == nil || rng == nil {
		return
	}
	b := img.Bounds()
	w = min(w, b.Dx())
	h = min(h, b.Dy())
	for y := 0; y < h; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+4 : x*4+4]
			a := int(px[3])
			for c := 0; c < 3; c++ {
				px[c] = clamp(int(px[c])+rng.IntN(2*Amplitude+1)-Amplitude, a)
			}
		}
	}
}

func clamp(v, hi int) uint8 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return uint8(hi)
	}
	return uint8(v)
}
