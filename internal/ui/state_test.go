package ui

import (
	"testing"

	tu "github.com/desertthunder/listen/internal/testing"
)

func TestSelectionState(t *testing.T) {
	links := tu.SampleLinks(3)

	t.Run("starts on the first link", func(t *testing.T) {
		s := NewSelectionState(links)
		if s.Cursor() != 0 {
			t.Errorf("expected cursor 0, got %d", s.Cursor())
		}
		if s.Selected() != links[0] {
			t.Errorf("expected %v, got %v", links[0], s.Selected())
		}
	})

	t.Run("down advances and wraps", func(t *testing.T) {
		s := NewSelectionState(links)
		for _, want := range []int{1, 2, 0} {
			s.Down()
			if s.Cursor() != want {
				t.Errorf("expected cursor %d, got %d", want, s.Cursor())
			}
		}
	})

	t.Run("up wraps to the last link", func(t *testing.T) {
		s := NewSelectionState(links)
		s.Up()
		if s.Cursor() != 2 {
			t.Errorf("expected cursor 2, got %d", s.Cursor())
		}
		s.Up()
		if s.Cursor() != 1 {
			t.Errorf("expected cursor 1, got %d", s.Cursor())
		}
	})

	t.Run("single link stays put", func(t *testing.T) {
		s := NewSelectionState(links[:1])
		s.Up()
		s.Down()
		if s.Cursor() != 0 {
			t.Errorf("expected cursor 0, got %d", s.Cursor())
		}
	})

	t.Run("handle", func(t *testing.T) {
		tests := []struct {
			key          Key
			wantMoved    bool
			wantSelected bool
			wantCursor   int
		}{
			{key: KeyDown, wantMoved: true, wantCursor: 1},
			{key: KeyUp, wantMoved: true, wantCursor: 2},
			{key: KeyUnknown, wantCursor: 0},
			{key: KeyEnter, wantSelected: true, wantCursor: 0},
			{key: KeyEOF, wantSelected: true, wantCursor: 0},
		}

		for _, tt := range tests {
			t.Run(tt.key.String(), func(t *testing.T) {
				s := NewSelectionState(links)
				moved, selected := s.Handle(tt.key)
				if moved != tt.wantMoved || selected != tt.wantSelected {
					t.Errorf("expected (%v, %v), got (%v, %v)", tt.wantMoved, tt.wantSelected, moved, selected)
				}
				if s.Cursor() != tt.wantCursor {
					t.Errorf("expected cursor %d, got %d", tt.wantCursor, s.Cursor())
				}
			})
		}
	})
}
