package web

import (
	"sync"

	"github.com/Shivanand-hulikatti/activity-board/internal/board"
)

// Form holds the signup form's field values.
type Form struct {
	Email    string
	Activity string
}

// State is the page's rendered state and the board.View the controller
// writes into. There is one State per process: every visitor sees the same
// board, form values and status message. Handlers and the controller run on different goroutines, so
// every access goes through the mutex.
type State struct {
	mu     sync.RWMutex
	board  board.BoardView
	loaded bool
	form   Form
}

// NewState returns an empty, not-yet-loaded State.
func NewState() *State {
	return &State{}
}

// RenderBoard replaces the rendered activity list and selector.
func (s *State) RenderBoard(v board.BoardView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = v
	s.loaded = true
}

// ResetForm clears the signup form.
func (s *State) ResetForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = Form{}
}

// SetForm records what the user typed so a failed submit redisplays it.
func (s *State) SetForm(f Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

// Snapshot returns the current board, form, and whether any load succeeded.
func (s *State) Snapshot() (board.BoardView, Form, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board, s.form, s.loaded
}
