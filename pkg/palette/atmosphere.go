package palette

import (
	"image/color"

	"github.com/matzehuels/moodart/pkg/art"
)

// Gradient stop offsets of the atmosphere gradient.
var AtmosphereStops = [3]float64{0, 0.5, 1}

var atmosphere = map[art.Mood][3]color.NRGBA{
	art.Happy:       {MustParse("#FFE066"), MustParse("#FF6B9D"), MustParse("#4ECDC4")},
	art.Calm:        {MustParse("#E3F2FD"), MustParse("#81C784"), MustParse("#4FC3F7")},
	art.Energetic:   {MustParse("#FF5722"), MustParse("#FF9800"), MustParse("#FFC107")},
	art.Mysterious:  {MustParse("#1A237E"), MustParse("#512DA8"), MustParse("#7B1FA2")},
	art.Melancholic: {MustParse("#90A4AE"), MustParse("#607D8B"), MustParse("#455A64")},
	art.Excited:     {MustParse("#E91E63"), MustParse("#FF5722"), MustParse("#FF9800")},
	art.Adventurous: {MustParse("#4CAF50"), MustParse("#8BC34A"), MustParse("#CDDC39")},
	art.Dreamy:      {MustParse("#E1BEE7"), MustParse("#CE93D8"), MustParse("#BA68C8")},
}

// Atmosphere returns the centre, middle and edge colours of the radial
// background gradient for m, matching AtmosphereStops. The table is kept
// apart from For on purpose. Values outside the enumeration yield three
// zero (transparent) colours.
func Atmosphere(m art.Mood) [3]color.NRGBA {
	return atmosphere[m]
}
