// Package gallery holds the per-user collection of generated pieces and
// stories.
//
// The collection is modelled as a small state machine. [State] is a plain
// value; [Reduce] applies one [Action] and returns the next state without
// touching its input. [Store] wraps a State behind a mutex for callers that
// share it across goroutines, such as the HTTP API.
//
// Pieces and stories are kept newest first. When several generations run
// concurrently, pieces land in the order their AddPiece is dispatched,
// which is the order they finish.
package gallery

import (
	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/artwork"
	"github.com/matzehuels/moodart/pkg/story"
)

// State is a snapshot of a gallery.
type State struct {
	Mood      art.Mood        `json:"mood"`
	Style     art.Style       `json:"style"`
	Pieces    []artwork.Piece `json:"pieces"`
	CurrentID string          `json:"current_id,omitempty"`
	Pending   int             `json:"pending"`
	Stories   []story.Story   `json:"stories"`
	LastError string          `json:"last_error,omitempty"`
}

// Initial returns the state of a fresh gallery: happy, abstract, empty.
func Initial() State {
	return State{Mood: art.Happy, Style: art.Abstract}
}

// Generating reports whether any generation is in flight.
func (s State) Generating() bool { return s.Pending > 0 }

// Current returns the selected piece, if any.
func (s State) Current() (artwork.Piece, bool) {
	if s.CurrentID == "" {
		return artwork.Piece{}, false
	}
	return s.Piece(s.CurrentID)
}

// Piece finds a piece by id.
func (s State) Piece(id string) (artwork.Piece, bool) {
	for _, p := range s.Pieces {
		if p.ID == id {
			return p, true
		}
	}
	return artwork.Piece{}, false
}

// Story finds a story by id.
func (s State) Story(id string) (story.Story, bool) {
	for _, st := range s.Stories {
		if st.ID == id {
			return st, true
		}
	}
	return story.Story{}, false
}

// clone copies the slices so the result can be handed out while the
// store keeps changing.
func (s State) clone() State {
	s.Pieces = append([]artwork.Piece(nil), s.Pieces...)
	s.Stories = append([]story.Story(nil), s.Stories...)
	return s
}
