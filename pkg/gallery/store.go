package gallery

import (
	"fmt"
	"sync"

	"github.com/matzehuels/moodart/pkg/artwork"
	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
	"github.com/matzehuels/moodart/pkg/story"
)

// ErrNotFound is returned when an id names no piece or story.
var ErrNotFound = moodarterrors.New(moodarterrors.ErrCodeNotFound, "not found in gallery")

// Store is a gallery shared between goroutines.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore returns a store holding the initial state.
func NewStore() *Store {
	return &Store{state: Initial()}
}

// Dispatch applies a and returns a snapshot of the resulting state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state.clone()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Append adds a finished piece to the front and selects it.
func (s *Store) Append(p artwork.Piece) {
	s.Dispatch(AddPiece{Piece: p})
}

// Remove deletes a piece by id.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.Piece(id); !ok {
		return fmt.Errorf("piece %q: %w", id, ErrNotFound)
	}
	s.state = Reduce(s.state, RemovePiece{ID: id})
	return nil
}

// List returns the pieces, newest first.
func (s *Store) List() []artwork.Piece {
	return s.Snapshot().Pieces
}

// SetCurrent selects a piece. An empty id clears the selection.
func (s *Store) SetCurrent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if _, ok := s.state.Piece(id); !ok {
			return fmt.Errorf("piece %q: %w", id, ErrNotFound)
		}
	}
	s.state = Reduce(s.state, SetCurrent{ID: id})
	return nil
}

// Current returns the selected piece, if any.
func (s *Store) Current() (artwork.Piece, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Current()
}

// Piece returns a piece by id.
func (s *Store) Piece(id string) (artwork.Piece, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.state.Piece(id)
	if !ok {
		return artwork.Piece{}, fmt.Errorf("piece %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// Story returns a story by id.
func (s *Store) Story(id string) (story.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.state.Story(id)
	if !ok {
		return story.Story{}, fmt.Errorf("story %q: %w", id, ErrNotFound)
	}
	return st, nil
}

// RemoveStory deletes a story by id.
func (s *Store) RemoveStory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.Story(id); !ok {
		return fmt.Errorf("story %q: %w", id, ErrNotFound)
	}
	s.state = Reduce(s.state, RemoveStory{ID: id})
	return nil
}
