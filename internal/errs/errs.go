// Package errs defines the sentinel errors surfaced to the user. Every
// failure the tool reports wraps one of these so the entrypoint can map it
// to an exit code without string matching.
package errs

import (
	"errors"
)

var (
	// ErrInvalidURL indicates the input is not a recognizable video URL.
	ErrInvalidURL = errors.New("invalid video URL")
	// ErrExtraction indicates the provider could not be queried for formats.
	ErrExtraction = errors.New("failed to fetch video info")
	// ErrNoFormats indicates no downloadable mp4 video+audio format exists.
	ErrNoFormats = errors.New("no suitable formats found")
	// ErrDownload indicates a failure during the transfer itself.
	ErrDownload = errors.New("download failed")
	// ErrUserInterrupt indicates the user cancelled the run.
	ErrUserInterrupt = errors.New("cancelled by user")
)
