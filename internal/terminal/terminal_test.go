package terminal

import (
	"errors"
	"io"
	"os"
	"testing"
)

func newPipeTerminal(t *testing.T) (*Terminal, *os.File) {
	t.Helper()
	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	t.Cleanup(func() {
		inR.Close()
		inW.Close()
		outR.Close()
		outW.Close()
	})
	return New(inR, outW), inW
}

type fakeRaw struct {
	err      error
	acquired int
	restored int
}

func (f *fakeRaw) makeRaw(int) (func() error, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.acquired++
	return func() error {
		f.restored++
		return nil
	}, nil
}

func TestTerminal(t *testing.T) {
	t.Run("pipes are not interactive", func(t *testing.T) {
		term, _ := newPipeTerminal(t)
		if term.IsInteractive() {
			t.Error("expected pipe to be non-interactive")
		}

		ran := false
		engaged, err := term.WithRawMode(func() error {
			ran = true
			return nil
		})
		if engaged || err != nil || ran {
			t.Errorf("expected not engaged without running fn, got engaged=%v err=%v ran=%v", engaged, err, ran)
		}
	})

	t.Run("ReadByte reads buffered input", func(t *testing.T) {
		term, w := newPipeTerminal(t)
		if _, err := w.Write([]byte{27, '[', 'A'}); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		w.Close()

		for _, want := range []byte{27, '[', 'A'} {
			got, err := term.ReadByte()
			if err != nil || got != want {
				t.Fatalf("expected %d, got %d (%v)", want, got, err)
			}
		}
		if _, err := term.ReadByte(); !errors.Is(err, io.EOF) {
			t.Errorf("expected EOF, got %v", err)
		}
	})
}

func TestWithRawMode(t *testing.T) {
	interactive := func(term *Terminal, raw *fakeRaw) {
		term.isTerminal = func(int) bool { return true }
		term.makeRaw = raw.makeRaw
	}

	t.Run("acquisition failure is not an error", func(t *testing.T) {
		term, _ := newPipeTerminal(t)
		raw := &fakeRaw{err: errors.New("inappropriate ioctl for device")}
		interactive(term, raw)

		engaged, err := term.WithRawMode(func() error {
			t.Error("fn must not run")
			return nil
		})
		if engaged || err != nil {
			t.Errorf("expected (false, nil), got (%v, %v)", engaged, err)
		}
	})

	t.Run("restores after success", func(t *testing.T) {
		term, _ := newPipeTerminal(t)
		raw := &fakeRaw{}
		interactive(term, raw)

		engaged, err := term.WithRawMode(func() error {
			if raw.restored != 0 {
				t.Error("expected raw mode to be held while fn runs")
			}
			return nil
		})
		if !engaged || err != nil {
			t.Fatalf("expected (true, nil), got (%v, %v)", engaged, err)
		}
		if raw.acquired != 1 || raw.restored != 1 {
			t.Errorf("expected one acquire and one restore, got %d/%d", raw.acquired, raw.restored)
		}
	})

	t.Run("restores after error", func(t *testing.T) {
		term, _ := newPipeTerminal(t)
		raw := &fakeRaw{}
		interactive(term, raw)

		boom := errors.New("boom")
		engaged, err := term.WithRawMode(func() error { return boom })
		if !engaged || !errors.Is(err, boom) {
			t.Fatalf("expected (true, boom), got (%v, %v)", engaged, err)
		}
		if raw.restored != 1 {
			t.Errorf("expected restore, got %d", raw.restored)
		}
	})

	t.Run("restores after panic", func(t *testing.T) {
		term, _ := newPipeTerminal(t)
		raw := &fakeRaw{}
		interactive(term, raw)

		func() {
			defer func() {
				if recover() == nil {
					t.Error("expected panic to propagate")
				}
			}()
			term.WithRawMode(func() error { panic("render failed") })
		}()

		if raw.restored != 1 {
			t.Errorf("expected restore after panic, got %d", raw.restored)
		}
	})
}
