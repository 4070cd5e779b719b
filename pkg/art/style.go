package art

import (
	"strings"

	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
)

// Style is the visual rendering technique used for a piece.
type Style string

// The ten supported styles.
const (
	Abstract      Style = "abstract"
	Impressionist Style = "impressionist"
	Minimalist    Style = "minimalist"
	Surreal       Style = "surreal"
	Pixel         Style = "pixel"
	Watercolor    Style = "watercolor"
	Geometric     Style = "geometric"
	Cosmic        Style = "cosmic"
	Neon          Style = "neon"
	Vintage       Style = "vintage"
)

var styles = []Style{Abstract, Impressionist, Minimalist, Surreal, Pixel, Watercolor, Geometric, Cosmic, Neon, Vintage}

// StyleInfo holds display metadata for a style.
type StyleInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

var styleInfo = map[Style]StyleInfo{
	Abstract:      {Label: "Abstract", Description: "Fluid forms and vibrant colors", Emoji: "🎨"},
	Impressionist: {Label: "Impressionist", Description: "Soft brushstrokes and light play", Emoji: "🖌️"},
	Minimalist:    {Label: "Minimalist", Description: "Clean lines and simple forms", Emoji: "⬜"},
	Surreal:       {Label: "Surreal", Description: "Dreamlike and imaginative", Emoji: "🌀"},
	Pixel:         {Label: "Pixel Art", Description: "Retro 8-bit style graphics", Emoji: "🎮"},
	Watercolor:    {Label: "Watercolor", Description: "Soft, flowing paint effects", Emoji: "💧"},
	Geometric:     {Label: "Geometric", Description: "Sharp angles and patterns", Emoji: "🔺"},
	Cosmic:        {Label: "Cosmic", Description: "Space-themed stellar art", Emoji: "🌌"},
	Neon:          {Label: "Neon", Description: "Glowing cyberpunk aesthetics", Emoji: "⚡"},
	Vintage:       {Label: "Vintage", Description: "Classic retro styling", Emoji: "📷"},
}

// Styles returns all styles in display order. The slice is a fresh copy.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// Valid reports whether s is one of the ten styles.
func (s Style) Valid() bool {
	_, ok := styleInfo[s]
	return ok
}

// Info returns the display metadata for s. Invalid styles yield the zero value.
func (s Style) Info() StyleInfo {
	return styleInfo[s]
}

func (s Style) String() string { return string(s) }

// ParseStyle converts user input to a Style. Matching ignores case and
// surrounding whitespace. Anything outside the enumeration is UNKNOWN_STYLE.
func ParseStyle(s string) (Style, error) {
	st := Style(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", moodarterrors.New(moodarterrors.ErrCodeUnknownStyle, "unknown style: %q", s)
	}
	return st, nil
}
