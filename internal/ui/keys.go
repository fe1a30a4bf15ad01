package ui

import (
	"errors"
	"io"
)

// Key is a decoded navigation event.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEOF
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEOF:
		return "eof"
	default:
		return "unknown"
	}
}

const (
	byteLF  = 10
	byteCR  = 13
	byteESC = 27
	byteCSI = '['
	byteUp  = 'A'
	byteDn  = 'B'
)

type decodeState int

const (
	stateGround decodeState = iota // between keys
	stateEscape                    // after ESC
	stateCSI                       // after ESC [
)

// KeyDecoder decodes raw terminal bytes into [Key] events.
//
// The zero value is ready to use.
type KeyDecoder struct {
	state decodeState
}

// Feed advances the decoder by one byte. done is false while an escape sequence is still open.
func (d *KeyDecoder) Feed(b byte) (key Key, done bool) {
	switch d.state {
	case stateEscape:
		if b == byteCSI {
			d.state = stateCSI
			return KeyUnknown, false
		}
		d.state = stateGround
		return KeyUnknown, true

	case stateCSI:
		d.state = stateGround
		switch b {
		case byteUp:
			return KeyUp, true
		case byteDn:
			return KeyDown, true
		}
		return KeyUnknown, true

	default:
		switch b {
		case byteLF, byteCR:
			return KeyEnter, true
		case byteESC:
			d.state = stateEscape
			return KeyUnknown, false
		}
		return KeyUnknown, true
	}
}

// End reports end of input. An open escape sequence becomes [KeyUnknown]; otherwise it is [KeyEOF].
func (d *KeyDecoder) End() Key {
	if d.state != stateGround {
		d.state = stateGround
		return KeyUnknown
	}
	return KeyEOF
}

// ReadKey reads from r until d completes one key.
func ReadKey(r io.ByteReader, d *KeyDecoder) (Key, error) {
	for {
		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return d.End(), nil
		}
		if err != nil {
			d.state = stateGround
			return KeyUnknown, err
		}

		if key, done := d.Feed(b); done {
			return key, nil
		}
	}
}
