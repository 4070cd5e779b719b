// Package artwork builds the finished art pieces kept in a gallery.
//
// A [Piece] is created once by [New] and never modified afterwards: it
// carries a snapshot of the mood's palette, the prompt shown to the user and
// the encoded image. Pieces are plain values; copy them freely.
package artwork

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/palette"
	"github.com/matzehuels/moodart/pkg/render"
)

// Piece is one generated artwork.
type Piece struct {
	ID        string               `json:"id"`
	Mood      art.Mood             `json:"mood"`
	Style     art.Style            `json:"style"`
	Palette   palette.ColorPalette `json:"palette"`
	Prompt    string               `json:"prompt"`
	CreatedAt time.Time            `json:"created_at"`
	ImageData string               `json:"image_data"`
	Width     int                  `json:"width"`
	Height    int                  `json:"height"`
	Seed      uint64               `json:"seed"`
}

// New assembles a Piece from a generation request and its rendered image.
// A blank custom prompt is replaced by DefaultPrompt.
func New(cfg art.GenerationConfig, img render.Image) Piece {
	prompt := cfg.CustomPrompt
	if strings.TrimSpace(prompt) == "" {
		prompt = DefaultPrompt(cfg.Mood, cfg.Style)
	}
	return Piece{
		ID:        NewID(),
		Mood:      cfg.Mood,
		Style:     cfg.Style,
		Palette:   palette.For(cfg.Mood),
		Prompt:    prompt,
		CreatedAt: time.Now(),
		ImageData: img.DataURI,
		Width:     img.Width,
		Height:    img.Height,
		Seed:      img.Seed,
	}
}

// DefaultPrompt is the caption used when the user supplies none.
func DefaultPrompt(m art.Mood, s art.Style) string {
	return fmt.Sprintf("A beautiful %s artwork expressing %s emotions", s, m)
}

// NewID returns a fresh time-ordered identifier. IDs sort lexically in
// creation order and stay unique at any call rate.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Filename is the download name of the piece's image.
func (p Piece) Filename() string {
	return "mood-art-" + p.ID + ".png"
}

// PNG decodes the piece's image data.
func (p Piece) PNG() ([]byte, error) {
	return render.DecodeDataURI(p.ImageData)
}
