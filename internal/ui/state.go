package ui

import "github.com/desertthunder/listen/internal/models"

// SelectionState is a cursor over a non-empty, read-only list of links.
type SelectionState struct {
	links  []models.ResolvedLink
	cursor int
}

// NewSelectionState places the cursor on the first link. links must not be empty.
func NewSelectionState(links []models.ResolvedLink) *SelectionState {
	return &SelectionState{links: links}
}

// Cursor returns the index of the highlighted link.
func (s *SelectionState) Cursor() int { return s.cursor }

// Links returns the list being navigated.
func (s *SelectionState) Links() []models.ResolvedLink { return s.links }

// Selected returns the highlighted link.
func (s *SelectionState) Selected() models.ResolvedLink { return s.links[s.cursor] }

// Up moves the cursor up, wrapping from the first link to the last.
func (s *SelectionState) Up() {
	if s.cursor == 0 {
		s.cursor = len(s.links) - 1
		return
	}
	s.cursor--
}

// Down moves the cursor down, wrapping from the last link to the first.
func (s *SelectionState) Down() {
	s.cursor = (s.cursor + 1) % len(s.links)
}

// Handle applies key. moved asks for a redraw; selected ends the selection on the current cursor.
//
// End of input selects like Enter so that closing stdin keeps the highlighted choice.
func (s *SelectionState) Handle(key Key) (moved, selected bool) {
	switch key {
	case KeyUp:
		s.Up()
		return true, false
	case KeyDown:
		s.Down()
		return true, false
	case KeyEnter, KeyEOF:
		return false, true
	default:
		return false, false
	}
}
