package app

import (
	"strconv"
	"strings"

	"github.com/ytget/yt-fetch/internal/model"
)

// ResolveQuality resolves a --quality argument against the displayed format
// list. It accepts a resolution label ("720p", bare "720") or a 1-based index
// into the list. Returns the position of the matched format, or false when
// nothing matches.
func ResolveQuality(formats []model.Format, quality string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(quality))
	if q == "" {
		return 0, false
	}

	for i, f := range formats {
		if strings.EqualFold(f.Resolution, q) {
			return i, true
		}
	}

	if n, err := strconv.Atoi(q); err == nil {
		if n >= 1 && n <= len(formats) {
			return n - 1, true
		}
		// A bare height like "720" names a tier, not an index.
		for i, f := range formats {
			if f.Height == n {
				return i, true
			}
		}
	}

	// Prefix match covers labels with a frame rate suffix, e.g. "720p60".
	for i, f := range formats {
		if strings.HasPrefix(strings.ToLower(f.Resolution), q) {
			return i, true
		}
	}

	return 0, false
}
