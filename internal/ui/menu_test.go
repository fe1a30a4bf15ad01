package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/listen/internal/models"
	tu "github.com/desertthunder/listen/internal/testing"
)

const (
	up    = "\x1b[A"
	down  = "\x1b[B"
	enter = "\r"
)

func TestMenuChoose(t *testing.T) {
	links := tu.SampleLinks(3)

	tests := []struct {
		name  string
		input string
		want  models.Platform
	}{
		{name: "enter keeps the first link", input: enter, want: models.AppleMusic},
		{name: "down twice", input: down + down + enter, want: models.YouTubeMusic},
		{name: "up wraps", input: up + enter, want: models.YouTubeMusic},
		{name: "down wraps", input: down + down + down + enter, want: models.AppleMusic},
		{name: "unknown bytes are ignored", input: "xq" + down + "\x1b[C" + enter, want: models.Spotify},
		{name: "end of input selects", input: down, want: models.Spotify},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := tu.NewMockTerminal(tt.input)
			link, ok, err := NewMenu(term).Choose(links)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ok {
				t.Fatal("expected a selection")
			}
			if link.Platform != tt.want {
				t.Errorf("expected %v, got %v", tt.want, link.Platform)
			}
			if term.Restored != 1 {
				t.Errorf("expected raw mode to be released once, got %d", term.Restored)
			}
		})
	}

	t.Run("renders header and every link", func(t *testing.T) {
		term := tu.NewMockTerminal(enter)
		if _, _, err := NewMenu(term).Choose(links); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := term.Output.String()
		if !strings.HasPrefix(out, clearScreen) {
			t.Error("expected output to start with a screen clear")
		}
		if !strings.Contains(out, menuHeader) {
			t.Errorf("expected header in output, got %q", out)
		}
		for _, link := range links {
			if !strings.Contains(out, link.Platform.DisplayName()) || !strings.Contains(out, link.ConvertedURL) {
				t.Errorf("expected %v in output", link.Platform)
			}
		}
		if !strings.HasSuffix(out, clearScreen) {
			t.Error("expected screen to be cleared after selection")
		}
	})

	t.Run("redraws after each move", func(t *testing.T) {
		term := tu.NewMockTerminal(down + "x" + down + enter)
		if _, _, err := NewMenu(term).Choose(links); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := strings.Count(term.Output.String(), menuHeader); got != 3 {
			t.Errorf("expected 3 renders, got %d", got)
		}
	})

	t.Run("pointer follows the cursor", func(t *testing.T) {
		menu := NewMenu(tu.NewMockTerminal(""))
		state := NewSelectionState(links)
		state.Down()

		lines := strings.Split(strings.TrimSuffix(menu.View(state), "\n"), "\n")
		if len(lines) != 4 {
			t.Fatalf("expected header plus 3 lines, got %d", len(lines))
		}
		if strings.HasPrefix(lines[1], pointer) || !strings.HasPrefix(lines[2], pointer) {
			t.Errorf("expected pointer on the second link, got %q", lines[1:])
		}
	})

	t.Run("non-interactive terminal is declined", func(t *testing.T) {
		term := tu.NewMockTerminal(enter)
		term.Interactive = false

		_, ok, err := NewMenu(term).Choose(links)
		if ok || err != nil {
			t.Errorf("expected decline without error, got ok=%v err=%v", ok, err)
		}
		if term.Output.Len() != 0 {
			t.Error("expected nothing written")
		}
	})

	t.Run("raw mode unavailable is declined", func(t *testing.T) {
		term := tu.NewMockTerminal(enter)
		term.RawErr = errors.New("not a tty")

		_, ok, err := NewMenu(term).Choose(links)
		if ok || err != nil {
			t.Errorf("expected decline without error, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("read failure is reported", func(t *testing.T) {
		readErr := errors.New("boom")
		term := tu.NewMockTerminal("")
		term.Input = &tu.FReader{Err: readErr}

		_, ok, err := NewMenu(term).Choose(links)
		if ok {
			t.Error("expected no selection")
		}
		if !errors.Is(err, readErr) {
			t.Errorf("expected read error, got %v", err)
		}
		if term.Restored != 1 {
			t.Errorf("expected raw mode to be released, got %d", term.Restored)
		}
	})

	t.Run("empty list is declined", func(t *testing.T) {
		_, ok, err := NewMenu(tu.NewMockTerminal(enter)).Choose(nil)
		if ok || err != nil {
			t.Errorf("expected decline without error, got ok=%v err=%v", ok, err)
		}
	})
}

func TestPlatformColors(t *testing.T) {
	for _, p := range models.Platforms() {
		if platformColors[p] == "" {
			t.Errorf("expected a color for %v", p)
		}
	}
}
