// Package logging provides leveled, colored console output with an optional
// rotating file log alongside the downloads.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ANSI color sequences
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"

	redError     = colorRed + "[Error] " + colorReset
	greenSuccess = colorGreen + "[Success] " + colorReset
	yellowDebug  = colorYellow + "[Debug] " + colorReset
	blueInfo     = colorBlue + "[Info] " + colorReset
)

const logFileName = "yt-fetch.log"

var (
	// Level controls console verbosity. Debug messages only print at 1 and above.
	Level int

	mu       sync.Mutex
	loggable bool
	logger   *log.Logger
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging creates and/or opens the rotating log file inside targetDir.
func SetupLogging(targetDir string) error {
	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(targetDir, logFileName),
		MaxSize:    1, // MB before rotation
		MaxBackups: 3,
		Compress:   true,
	}

	mu.Lock()
	defer mu.Unlock()

	logger = log.New(logFile, "", log.LstdFlags)
	loggable = true

	// The extraction library writes through the stdlib default logger.
	// Route it into the file so it cannot corrupt the progress line.
	if Level == 0 {
		log.SetOutput(logFile)
	}

	logger.Printf("=========== %v ===========", time.Now().Format(time.RFC1123Z))
	return nil
}

// QuietStdLog silences the stdlib default logger unless debug verbosity
// keeps it on stderr. SetupLogging later points it at the file log instead.
func QuietStdLog() {
	if Level == 0 {
		log.SetOutput(io.Discard)
	}
}

// I prints an informational message.
func I(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(blueInfo+format+"\n", args...)
	fmt.Print(msg)
	write(msg)
}

// S prints a success message.
func S(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(greenSuccess+format+"\n", args...)
	fmt.Print(msg)
	write(msg)
}

// E prints an error message to stderr.
func E(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(redError+format+"\n", args...)
	fmt.Fprint(os.Stderr, msg)
	write(msg)
}

// W prints a warning message to stderr.
func W(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(colorYellow+"[Warning] "+colorReset+format+"\n", args...)
	fmt.Fprint(os.Stderr, msg)
	write(msg)
}

// D prints a debug message when the verbosity level allows it.
func D(l int, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if l > Level {
		return
	}
	msg := fmt.Sprintf(yellowDebug+format+"\n", args...)
	fmt.Print(msg)
	write(msg)
}

// P prints a raw message without any tag.
func P(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format+"\n", args...)
	fmt.Print(msg)
	write(msg)
}

// write mirrors msg into the log file with ANSI sequences stripped.
// Callers hold mu.
func write(msg string) {
	if loggable {
		logger.Print(ansiEscape.ReplaceAllString(msg, ""))
	}
}
