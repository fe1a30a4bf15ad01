//go:build !(darwin || dragonfly || freebsd || netbsd || openbsd || linux)

package terminal

import "golang.org/x/term"

// makeCbreak falls back to full raw mode where termios is unavailable (e.g. the Windows console).
func makeCbreak(fd int) (func() error, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, state) }, nil
}
