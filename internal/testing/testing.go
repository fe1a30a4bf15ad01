// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/listen/internal/models"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// FReader fails every read with Err
type FReader struct {
	Err error
}

func (f *FReader) Read(p []byte) (int, error) {
	if f.Err == nil {
		return 0, errors.New("read failed")
	}
	return 0, f.Err
}

// MockClipboard records copied text and optionally fails
type MockClipboard struct {
	Copied []string
	Err    error
}

func (m *MockClipboard) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Copied = append(m.Copied, text)
	return nil
}

// MockLocale reports a fixed country code
type MockLocale struct {
	Code string
}

func (m MockLocale) CountryCode() (string, bool) {
	return m.Code, m.Code != ""
}

// MockTerminal is a scripted terminal: reads come from Input and writes land in Output.
//
// RawErr makes raw-mode acquisition fail; Restored counts how often raw mode was released.
type MockTerminal struct {
	Interactive bool
	RawErr      error
	Input       io.Reader
	Output      bytes.Buffer
	InRaw       bool
	Restored    int
}

func NewMockTerminal(input string) *MockTerminal {
	return &MockTerminal{Interactive: true, Input: bytes.NewBufferString(input)}
}

func (m *MockTerminal) IsInteractive() bool { return m.Interactive }

func (m *MockTerminal) WithRawMode(fn func() error) (bool, error) {
	if m.RawErr != nil {
		return false, nil
	}
	m.InRaw = true
	defer func() {
		m.InRaw = false
		m.Restored++
	}()
	return true, fn()
}

func (m *MockTerminal) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(m.Input, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (m *MockTerminal) Write(p []byte) (int, error) { return m.Output.Write(p) }

// MockResolver returns fixed links or an error and counts calls
type MockResolver struct {
	Links []models.ResolvedLink
	Err   error
	Calls int
}

func (m *MockResolver) ResolveAll(_ context.Context, _ string) ([]models.ResolvedLink, error) {
	m.Calls++
	return m.Links, m.Err
}

// SampleLinks returns n links in platform declaration order.
func SampleLinks(n int) []models.ResolvedLink {
	links := make([]models.ResolvedLink, 0, n)
	for _, p := range models.Platforms()[:n] {
		links = append(links, models.ResolvedLink{
			ConvertedURL:  "https://example.com/" + p.Key() + "/track/1",
			SourcePageURL: "https://song.link/s/1",
			Platform:      p,
		})
	}
	return links
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
