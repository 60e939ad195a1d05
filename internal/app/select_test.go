package app

import (
	"testing"

	"github.com/ytget/yt-fetch/internal/model"
)

func sampleFormats() []model.Format {
	return []model.Format{
		{Itag: 37, Resolution: "1080p", Height: 1080},
		{Itag: 22, Resolution: "720p", Height: 720},
		{Itag: 59, Resolution: "480p", Height: 480},
	}
}

func TestResolveQuality(t *testing.T) {
	formats := sampleFormats()

	tests := []struct {
		quality  string
		expected int
		ok       bool
	}{
		{"720p", 1, true},
		{"720P", 1, true},
		{"1080p", 0, true},
		{"720", 1, true},  // bare height, not an index
		{"2", 1, true},    // 1-based menu index
		{"3", 2, true},
		{"4k", 0, false},
		{"2160p", 0, false},
		{"0", 0, false},
		{"9", 0, false},
		{"", 0, false},
		{"  720p  ", 1, true},
	}

	for _, test := range tests {
		idx, ok := ResolveQuality(formats, test.quality)
		if ok != test.ok {
			t.Errorf("ResolveQuality(%q): ok = %v, expected %v", test.quality, ok, test.ok)
			continue
		}
		if ok && idx != test.expected {
			t.Errorf("ResolveQuality(%q) = %d, expected %d", test.quality, idx, test.expected)
		}
	}
}

func TestResolveQuality_FramerateSuffix(t *testing.T) {
	formats := []model.Format{
		{Itag: 1, Resolution: "1080p60", Height: 1080},
		{Itag: 2, Resolution: "720p", Height: 720},
	}

	idx, ok := ResolveQuality(formats, "1080p")
	if !ok {
		t.Fatal("Expected '1080p' to match the 1080p60 entry")
	}
	if idx != 0 {
		t.Errorf("ResolveQuality('1080p') = %d, expected 0", idx)
	}
}
