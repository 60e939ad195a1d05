package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestQuietStdLog(t *testing.T) {
	orig := log.Writer()
	defer log.SetOutput(orig)

	Level = 0
	QuietStdLog()
	if log.Writer() != io.Discard {
		t.Error("Expected the default logger to be discarded at level 0")
	}

	log.SetOutput(orig)
	Level = 1
	defer func() { Level = 0 }()
	QuietStdLog()
	if log.Writer() != orig {
		t.Error("Expected the default logger untouched in debug runs")
	}
}

func TestSetupLoggingCapturesStdLog(t *testing.T) {
	orig := log.Writer()
	defer log.SetOutput(orig)

	dir := t.TempDir()
	if err := SetupLogging(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Library chatter through the default logger must land in the file,
	// not on the terminal.
	log.Print("Starting download for URL https://example.invalid")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Starting download for URL") {
		t.Error("Expected default-logger output in the file log")
	}
	if log.Writer() == orig {
		t.Error("Expected the default logger redirected away from the terminal")
	}
}
