//go:build darwin || dragonfly || freebsd || netbsd || openbsd || linux

package terminal

import "golang.org/x/sys/unix"

// makeCbreak disables canonical input and echo on fd and returns a func restoring the previous termios.
func makeCbreak(fd int) (func() error, error) {
	original, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}

	raw := *original
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}

	return func() error {
		return unix.IoctlSetTermios(fd, ioctlWriteTermios, original)
	}, nil
}
