package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "downloads")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected directory %s to exist", dir)
	}

	// Second call on an existing directory is a no-op.
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		ext   string
		want  string
	}{
		{"plain title", "My Video", "mp4", "My Video.mp4"},
		{"unsafe characters collapse", `A/B\C:D*E?F"G<H>I|J`, "mp4", "A_B_C_D_E_F_G_H_I_J.mp4"},
		{"consecutive unsafe run", "What?!: the // sequel", "mp4", "What_!_ the _ sequel.mp4"},
		{"empty title", "", "mp4", "video.mp4"},
		{"whitespace title", "   ", "mp4", "video.mp4"},
		{"empty extension", "clip", "", "clip.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFilename(tt.title, tt.ext); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSafeFilenameTruncation(t *testing.T) {
	got := SafeFilename(strings.Repeat("a", 300), "mp4")

	base := strings.TrimSuffix(got, ".mp4")
	if len(base) != 120 {
		t.Errorf("Expected base truncated to 120 characters, got %d", len(base))
	}
}
