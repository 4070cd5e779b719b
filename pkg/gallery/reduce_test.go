package gallery

import (
	"reflect"
	"testing"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/artwork"
	"github.com/matzehuels/moodart/pkg/story"
)

func piece(id string) artwork.Piece {
	return artwork.Piece{ID: id, Mood: art.Happy, Style: art.Abstract}
}

func withPieces(ids ...string) State {
	s := Initial()
	for i := len(ids) - 1; i >= 0; i-- {
		s = Reduce(s, AddPiece{Piece: piece(ids[i])})
	}
	return s
}

func ids(ps []artwork.Piece) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestInitial(t *testing.T) {
	s := Initial()
	if s.Mood != art.Happy || s.Style != art.Abstract {
		t.Errorf("Initial() = %s/%s, want happy/abstract", s.Mood, s.Style)
	}
	if len(s.Pieces) != 0 || s.CurrentID != "" || s.Generating() {
		t.Errorf("Initial() not empty: %+v", s)
	}
}

func TestSelect(t *testing.T) {
	s := Reduce(Initial(), SelectMood{Mood: art.Calm})
	s = Reduce(s, SelectStyle{Style: art.Neon})
	if s.Mood != art.Calm || s.Style != art.Neon {
		t.Errorf("got %s/%s, want calm/neon", s.Mood, s.Style)
	}
	s = Reduce(s, SelectMood{Mood: "angry"})
	s = Reduce(s, SelectStyle{Style: "cubist"})
	if s.Mood != art.Calm || s.Style != art.Neon {
		t.Errorf("invalid selection changed state: %s/%s", s.Mood, s.Style)
	}
}

func TestGenerationLifecycle(t *testing.T) {
	s := Reduce(Initial(), StartGeneration{})
	s = Reduce(s, StartGeneration{})
	if s.Pending != 2 || !s.Generating() {
		t.Fatalf("Pending = %d, want 2", s.Pending)
	}
	s = Reduce(s, AddPiece{Piece: piece("a")})
	if s.Pending != 1 || s.CurrentID != "a" {
		t.Errorf("after AddPiece: pending %d current %q", s.Pending, s.CurrentID)
	}
	s = Reduce(s, GenerationFailed{Err: "RENDERING_UNAVAILABLE"})
	if s.Generating() {
		t.Error("still generating after failure")
	}
	if s.LastError != "RENDERING_UNAVAILABLE" {
		t.Errorf("LastError = %q", s.LastError)
	}
	s = Reduce(s, GenerationFailed{})
	if s.Pending != 0 {
		t.Errorf("Pending went negative: %d", s.Pending)
	}
	s = Reduce(s, StartGeneration{})
	if s.LastError != "" {
		t.Error("StartGeneration should clear LastError")
	}
}

func TestAddPiecePrepends(t *testing.T) {
	s := Initial()
	for _, id := range []string{"first", "second", "third"} {
		s = Reduce(s, AddPiece{Piece: piece(id)})
	}
	if got, want := ids(s.Pieces), []string{"third", "second", "first"}; !reflect.DeepEqual(got, want) {
		t.Errorf("pieces = %v, want %v", got, want)
	}
	if s.CurrentID != "third" {
		t.Errorf("CurrentID = %q, want third", s.CurrentID)
	}
}

func TestRemovePiece(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		remove      string
		wantIDs     []string
		wantCurrent string
	}{
		{"current", "a", "a", []string{"b", "c"}, ""},
		{"not current", "a", "b", []string{"a", "c"}, "a"},
		{"unknown", "a", "zzz", []string{"a", "b", "c"}, "a"},
		{"no selection", "", "c", []string{"a", "b"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(withPieces("a", "b", "c"), SetCurrent{ID: tt.current})
			s = Reduce(s, RemovePiece{ID: tt.remove})
			if got := ids(s.Pieces); !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("pieces = %v, want %v", got, tt.wantIDs)
			}
			if s.CurrentID != tt.wantCurrent {
				t.Errorf("CurrentID = %q, want %q", s.CurrentID, tt.wantCurrent)
			}
		})
	}
}

func TestSetCurrent(t *testing.T) {
	s := withPieces("a", "b")
	s = Reduce(s, SetCurrent{ID: "b"})
	if p, ok := s.Current(); !ok || p.ID != "b" {
		t.Errorf("Current() = %v, %v", p.ID, ok)
	}
	s = Reduce(s, SetCurrent{ID: "missing"})
	if s.CurrentID != "b" {
		t.Errorf("unknown id changed selection to %q", s.CurrentID)
	}
	s = Reduce(s, SetCurrent{})
	if _, ok := s.Current(); ok {
		t.Error("empty id should clear the selection")
	}
}

func TestStories(t *testing.T) {
	s := Reduce(Initial(), AddStory{Story: story.Story{ID: "s1"}})
	s = Reduce(s, AddStory{Story: story.Story{ID: "s2"}})
	if s.Stories[0].ID != "s2" {
		t.Errorf("stories not newest first: %v", s.Stories)
	}
	if _, ok := s.Story("s1"); !ok {
		t.Error("Story(s1) not found")
	}
	s = Reduce(s, RemoveStory{ID: "s2"})
	if len(s.Stories) != 1 || s.Stories[0].ID != "s1" {
		t.Errorf("after remove: %v", s.Stories)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := Reduce(withPieces("a", "b", "c"), AddStory{Story: story.Story{ID: "s"}})
	snapshot := before.clone()
	actions := []Action{
		AddPiece{Piece: piece("d")},
		RemovePiece{ID: "b"},
		SetCurrent{ID: "c"},
		SelectMood{Mood: art.Dreamy},
		StartGeneration{},
		GenerationFailed{Err: "x"},
		AddStory{Story: story.Story{ID: "t"}},
		RemoveStory{ID: "s"},
	}
	for _, a := range actions {
		_ = Reduce(before, a)
		if !reflect.DeepEqual(before, snapshot) {
			t.Fatalf("%T mutated its input", a)
		}
	}
	if Reduce(before, nil).CurrentID != before.CurrentID {
		t.Error("nil action changed state")
	}
}
