package extract

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	yterrs "github.com/ytget/ytdlp/errs"

	"github.com/ytget/yt-fetch/internal/errs"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
		wantErr  bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://example.com/watch?v=dQw4w9WgXcQ", "", true},
		{"https://www.youtube.com/watch", "", true},
		{"not a url at all ://", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		id, err := ParseVideoID(test.url)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseVideoID(%q): expected error, got id %q", test.url, id)
			} else if !errors.Is(err, errs.ErrInvalidURL) {
				t.Errorf("ParseVideoID(%q): expected ErrInvalidURL, got %v", test.url, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVideoID(%q): unexpected error %v", test.url, err)
			continue
		}
		if id != test.expected {
			t.Errorf("ParseVideoID(%q) = %q, expected %q", test.url, id, test.expected)
		}
	}
}

// TestMapExtractionError checks that the sentinels the extraction library
// actually returns each resolve to their dedicated message, not the
// generic fallthrough.
func TestMapExtractionError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"private", yterrs.ErrPrivate, "the video is private"},
		{"unavailable", yterrs.ErrVideoUnavailable, "unavailable or has been removed"},
		{"age restricted", yterrs.ErrAgeRestricted, "age restricted"},
		{"geo blocked", yterrs.ErrGeoBlocked, "not available in your region"},
		{"rate limited", yterrs.ErrRateLimited, "try again later"},
		{"generic", errors.New("connection reset"), "connection reset"},
	}

	for _, test := range tests {
		mapped := mapExtractionError(fmt.Errorf("resolve: %w", test.err))
		if !errors.Is(mapped, errs.ErrExtraction) {
			t.Errorf("%s: expected mapped error to wrap ErrExtraction, got %v", test.name, mapped)
		}
		if !strings.Contains(mapped.Error(), test.wantMsg) {
			t.Errorf("%s: expected message containing %q, got %q", test.name, test.wantMsg, mapped.Error())
		}
	}
}
