package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/desertthunder/listen/internal/models"
)

// defaultChoice is the 1-based index chosen by an empty answer.
const defaultChoice = 1

// Prompt is the line-oriented fallback selector.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt creates a prompt reading answers from in and writing to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	return &Prompt{in: reader, out: out}
}

// Choose lists links and asks for a number until the answer is valid.
//
// An empty answer, or end of input, picks the first link. links must not be empty.
func (p *Prompt) Choose(links []models.ResolvedLink) (models.ResolvedLink, error) {
	if len(links) == 0 {
		return models.ResolvedLink{}, errors.New("no links to choose from")
	}

	fmt.Fprintln(p.out, "Available streaming platforms:")
	for i, link := range links {
		fmt.Fprintf(p.out, "%d. %s - %s\n", i+1, link.Platform.DisplayName(), link.ConvertedURL)
	}

	for {
		fmt.Fprintf(p.out, "Select a platform [1-%d] (press Enter for %s): ",
			len(links), links[defaultChoice-1].Platform.DisplayName())

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return models.ResolvedLink{}, fmt.Errorf("failed to read selection: %w", err)
		}

		choice, ok := parseChoice(line, len(links))
		if ok {
			return links[choice-1], nil
		}

		fmt.Fprintf(p.out, "Invalid selection. Please enter a number between 1 and %d.\n", len(links))
	}
}

// parseChoice returns the 1-based choice in line, defaulting when the line is blank.
func parseChoice(line string, count int) (int, bool) {
	input := strings.TrimSpace(line)
	if input == "" {
		return defaultChoice, true
	}

	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > count {
		return 0, false
	}
	return choice, true
}
