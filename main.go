// Package main is the entrypoint of yt-fetch.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytget/yt-fetch/internal/cfg"
	"github.com/ytget/yt-fetch/internal/errs"
	"github.com/ytget/yt-fetch/internal/logging"
)

// Exit codes
const (
	exitOK        = 0
	exitFailure   = 1
	exitInterrupt = 130
)

func main() {
	os.Exit(run())
}

// run executes the pipeline and maps the outcome to an exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cfg.Execute(ctx)
	if err == nil {
		return exitOK
	}

	if errors.Is(err, errs.ErrUserInterrupt) || ctx.Err() != nil {
		logging.P("\nDownload cancelled by user")
		return exitInterrupt
	}

	logging.E("%v", err)
	return exitFailure
}
