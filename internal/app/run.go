// Package app wires the pipeline: config, probe, quality selection, download.
// Control flow is strictly linear; a single run downloads a single video.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ytget/yt-fetch/internal/config"
	"github.com/ytget/yt-fetch/internal/download"
	"github.com/ytget/yt-fetch/internal/errs"
	"github.com/ytget/yt-fetch/internal/extract"
	"github.com/ytget/yt-fetch/internal/logging"
	"github.com/ytget/yt-fetch/internal/model"
	"github.com/ytget/yt-fetch/internal/platform"
	"github.com/ytget/yt-fetch/internal/ui"
)

// Options carries the parsed command line request.
type Options struct {
	URL        string
	Quality    string
	NoProgress bool
	Reveal     bool
}

// App holds the collaborators of one run.
type App struct {
	Settings  *config.Settings
	Extractor extract.Extractor
	Fetcher   download.Fetcher
	Prompter  *ui.Prompter
	Out       io.Writer
}

// Run executes one download end to end.
func (a *App) Run(ctx context.Context, opts Options) error {
	videoURL := strings.TrimSpace(opts.URL)
	if videoURL == "" {
		var err error
		videoURL, err = a.Prompter.ReadURL(ctx)
		if err != nil {
			return err
		}
	}

	logging.I("Fetching video information...")
	video, err := a.Extractor.Probe(ctx, videoURL)
	if err != nil {
		return err
	}
	logging.I("Video: %s", video.Title)

	formats := extract.MuxedMP4(video.Formats)
	if len(formats) == 0 {
		return fmt.Errorf("%w: the video offers no mp4 encoding with both video and audio", errs.ErrNoFormats)
	}

	format, err := a.selectFormat(ctx, formats, opts.Quality)
	if err != nil {
		return err
	}
	logging.D(1, "Selected format itag=%d (%s)", format.Itag, format.Resolution)

	dir := a.Settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("%w: cannot create download directory %s: %v", errs.ErrDownload, dir, err)
	}

	svc := download.NewService(a.Fetcher, dir)
	renderer := ui.NewRenderer(a.Out)
	if !opts.NoProgress {
		svc.SetUpdateCallback(renderer.Update)
	}

	logging.I("Downloading: %s", video.Title)
	logging.I("Saving to: %s", dir)

	task, err := svc.Run(ctx, video, format)
	renderer.Finish()
	if err != nil {
		return err
	}

	logging.S("Downloaded %s: %s", task.GetDisplayTitle(), task.OutputPath)

	if opts.Reveal {
		if err := platform.OpenFileInManager(task.OutputPath); err != nil {
			logging.W("Could not reveal file: %v", err)
		}
	}

	return nil
}

// selectFormat resolves an explicit quality request, degrading to the
// interactive menu when the request is absent or matches nothing.
func (a *App) selectFormat(ctx context.Context, formats []model.Format, quality string) (model.Format, error) {
	if q := strings.TrimSpace(quality); q != "" {
		if idx, ok := ResolveQuality(formats, q); ok {
			return formats[idx], nil
		}
		fmt.Fprintf(a.Out, "Quality %q not found. Available options:\n", quality)
	}
	return a.Prompter.SelectFormat(ctx, formats)
}
