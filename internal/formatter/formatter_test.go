package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/listen/internal/models"
	"github.com/desertthunder/listen/internal/shared"
	th "github.com/desertthunder/listen/internal/testing"
)

func TestExporters(t *testing.T) {
	links := th.SampleLinks(3)

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(links)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d: %q", len(lines), data)
		}
		for i, link := range links {
			if !strings.HasPrefix(lines[i], link.Platform.DisplayName()+":") {
				t.Errorf("line %d: expected display name prefix, got %q", i, lines[i])
			}
			if !strings.HasSuffix(lines[i], link.ConvertedURL) {
				t.Errorf("line %d: expected URL suffix, got %q", i, lines[i])
			}
		}

		if idx := strings.Index(lines[0], "https"); idx != strings.Index(lines[2], "https") {
			t.Errorf("expected aligned URLs, got %q", lines)
		}
	})

	t.Run("ExportToText with no links", func(t *testing.T) {
		data, err := ExportToText(nil)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}
		if len(data) != 0 {
			t.Errorf("expected empty output, got %q", data)
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(links)
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		var decoded []map[string]string
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(decoded) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(decoded))
		}
		if decoded[1]["platform"] != "spotify" {
			t.Errorf("expected platform key spotify, got %q", decoded[1]["platform"])
		}
		if decoded[1]["url"] != links[1].ConvertedURL {
			t.Errorf("expected url %q, got %q", links[1].ConvertedURL, decoded[1]["url"])
		}
		if decoded[1]["pageUrl"] != links[1].SourcePageURL {
			t.Errorf("expected pageUrl %q, got %q", links[1].SourcePageURL, decoded[1]["pageUrl"])
		}
	})

	t.Run("ExportToJSON with no links", func(t *testing.T) {
		data, err := ExportToJSON(nil)
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}
		if strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("expected empty array, got %q", data)
		}
	})

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(links)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "Platform,Name,URL,Page URL\n") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "appleMusic,Apple Music,"+links[0].ConvertedURL+","+links[0].SourcePageURL) {
			t.Errorf("CSV missing first record, got: %s", output)
		}
		if got := strings.Count(output, "\n"); got != 4 {
			t.Errorf("expected 4 lines, got %d", got)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(links)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "# Streaming links\n") {
			t.Errorf("Markdown missing title, got: %s", output)
		}
		if !strings.Contains(output, "**Page**: <https://song.link/s/1>") {
			t.Errorf("Markdown missing page URL, got: %s", output)
		}
		if !strings.Contains(output, "- [YouTube Music]("+links[2].ConvertedURL+")") {
			t.Errorf("Markdown missing link item, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown without page URL", func(t *testing.T) {
		data, err := ExportToMarkdown([]models.ResolvedLink{{ConvertedURL: "https://x", Platform: models.Tidal}})
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}
		if strings.Contains(string(data), "**Page**") {
			t.Errorf("expected no page line, got: %s", data)
		}
	})
}

func TestWrite(t *testing.T) {
	links := th.SampleLinks(2)

	tests := []struct {
		format string
		want   string
	}{
		{format: "", want: "Apple Music:"},
		{format: FormatText, want: "Spotify:"},
		{format: FormatJSON, want: `"platform": "appleMusic"`},
		{format: "JSON", want: `"platform": "spotify"`},
		{format: FormatCSV, want: "Platform,Name,URL,Page URL"},
		{format: FormatMarkdown, want: "- [Spotify]("},
		{format: "md", want: "# Streaming links"},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, links, tt.format); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in output, got %q", tt.want, buf.String())
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := Write(&buf, links, "yaml")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
		if buf.Len() != 0 {
			t.Error("expected nothing written")
		}
	})

	t.Run("write failure", func(t *testing.T) {
		if err := Write(&th.FWriter{}, links, FormatText); err == nil {
			t.Error("expected error")
		}
	})
}
