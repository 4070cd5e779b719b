package gallery

import (
	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/artwork"
	"github.com/matzehuels/moodart/pkg/story"
)

// Action is one gallery transition. The set of actions is closed.
type Action interface {
	apply(State) State
}

// SelectMood changes the mood used for the next generation. Values outside
// the enumeration are ignored.
type SelectMood struct{ Mood art.Mood }

// SelectStyle changes the style used for the next generation. Values
// outside the enumeration are ignored.
type SelectStyle struct{ Style art.Style }

// StartGeneration records that a generation is in flight.
type StartGeneration struct{}

// AddPiece puts a finished piece at the front of the gallery and selects it.
type AddPiece struct{ Piece artwork.Piece }

// GenerationFailed ends an in-flight generation without a piece.
type GenerationFailed struct{ Err string }

// SetCurrent selects a piece by id. An empty id clears the selection; an
// unknown id leaves the state unchanged.
type SetCurrent struct{ ID string }

// RemovePiece drops a piece. If it was selected, the selection is cleared.
type RemovePiece struct{ ID string }

// AddStory puts a story at the front of the story list.
type AddStory struct{ Story story.Story }

// RemoveStory drops a story.
type RemoveStory struct{ ID string }

// Reduce returns the state after applying a. It never modifies s.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

func (a SelectMood) apply(s State) State {
	if a.Mood.Valid() {
		s.Mood = a.Mood
	}
	return s
}

func (a SelectStyle) apply(s State) State {
	if a.Style.Valid() {
		s.Style = a.Style
	}
	return s
}

func (StartGeneration) apply(s State) State {
	s.Pending++
	s.LastError = ""
	return s
}

func (a AddPiece) apply(s State) State {
	pieces := make([]artwork.Piece, 0, len(s.Pieces)+1)
	pieces = append(pieces, a.Piece)
	s.Pieces = append(pieces, s.Pieces...)
	s.CurrentID = a.Piece.ID
	s.Pending = max(s.Pending-1, 0)
	return s
}

func (a GenerationFailed) apply(s State) State {
	s.Pending = max(s.Pending-1, 0)
	s.LastError = a.Err
	return s
}

func (a SetCurrent) apply(s State) State {
	if a.ID == "" {
		s.CurrentID = ""
		return s
	}
	if _, ok := s.Piece(a.ID); ok {
		s.CurrentID = a.ID
	}
	return s
}

func (a RemovePiece) apply(s State) State {
	pieces := make([]artwork.Piece, 0, len(s.Pieces))
	for _, p := range s.Pieces {
		if p.ID != a.ID {
			pieces = append(pieces, p)
		}
	}
	s.Pieces = pieces
	if s.CurrentID == a.ID {
		s.CurrentID = ""
	}
	return s
}

func (a AddStory) apply(s State) State {
	stories := make([]story.Story, 0, len(s.Stories)+1)
	stories = append(stories, a.Story)
	s.Stories = append(stories, s.Stories...)
	return s
}

func (a RemoveStory) apply(s State) State {
	stories := make([]story.Story, 0, len(s.Stories))
	for _, st := range s.Stories {
		if st.ID != a.ID {
			stories = append(stories, st)
		}
	}
	s.Stories = stories
	return s
}
