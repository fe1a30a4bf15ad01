// package formatter renders resolved links as plain text, JSON, CSV or Markdown
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/desertthunder/listen/internal/models"
	"github.com/desertthunder/listen/internal/shared"
	"github.com/samber/lo"
)

const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Formats lists the accepted values of --format.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatCSV, FormatMarkdown}
}

// Write renders links in format to w. An empty format means [FormatText].
func Write(w io.Writer, links []models.ResolvedLink, format string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(format) {
	case "", FormatText:
		data, err = ExportToText(links)
	case FormatJSON:
		data, err = ExportToJSON(links)
	case FormatCSV:
		data, err = ExportToCSV(links)
	case FormatMarkdown, "md":
		data, err = ExportToMarkdown(links)
	default:
		return fmt.Errorf("%w: unknown format '%s' (expected one of %s)",
			shared.ErrInvalidFlag, format, strings.Join(Formats(), ", "))
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// ExportToText writes one "<Display name>: <url>" line per link.
func ExportToText(links []models.ResolvedLink) ([]byte, error) {
	var buf bytes.Buffer

	width := lo.Max(lo.Map(links, func(l models.ResolvedLink, _ int) int { return len(l.Platform.DisplayName()) }))
	for _, link := range links {
		buf.WriteString(fmt.Sprintf("%-*s  %s\n", width+1, link.Platform.DisplayName()+":", link.ConvertedURL))
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts links to an indented JSON array.
func ExportToJSON(links []models.ResolvedLink) ([]byte, error) {
	if links == nil {
		links = []models.ResolvedLink{}
	}

	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// ExportToCSV converts links to CSV with columns: Platform, Name, URL, Page URL
func ExportToCSV(links []models.ResolvedLink) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Platform", "Name", "URL", "Page URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, link := range links {
		record := []string{
			link.Platform.Key(),
			link.Platform.DisplayName(),
			link.ConvertedURL,
			link.SourcePageURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts links to a bulleted list headed by the song.link page.
func ExportToMarkdown(links []models.ResolvedLink) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Streaming links\n\n")

	if len(links) > 0 && links[0].SourcePageURL != "" {
		buf.WriteString(fmt.Sprintf("**Page**: <%s>\n\n", links[0].SourcePageURL))
	}

	for _, link := range links {
		buf.WriteString(fmt.Sprintf("- [%s](%s)\n", link.Platform.DisplayName(), link.ConvertedURL))
	}

	return buf.Bytes(), nil
}
