package system

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/desertthunder/listen/internal/shared"
)

// Clipboard writes text to the system clipboard.
type Clipboard struct {
	write       func(string) error
	unsupported bool
}

// NewClipboard returns a [Clipboard] backed by pbcopy, xclip/xsel/wl-copy, or the Windows clipboard API.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// Copy replaces the clipboard contents with text.
func (c *Clipboard) Copy(text string) error {
	if c.unsupported {
		return fmt.Errorf("%w: no clipboard utility available", shared.ErrClipboardFailure)
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrClipboardFailure, err)
	}
	return nil
}
