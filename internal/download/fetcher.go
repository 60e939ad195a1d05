package download

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-fetch/internal/model"
	"github.com/ytget/yt-fetch/internal/platform"
)

// FetcherOptions configures the library-backed fetcher.
type FetcherOptions struct {
	HTTPClient   *http.Client
	RateLimitBps int64 // 0 disables limiting
}

// ytdlpFetcher drives ytdlp.Downloader for one format at a time.
type ytdlpFetcher struct {
	opts FetcherOptions
}

// NewFetcher creates a Fetcher backed by the ytget/ytdlp library.
func NewFetcher(opts FetcherOptions) Fetcher {
	return &ytdlpFetcher{opts: opts}
}

// Fetch downloads the format identified by its itag into destDir. The output
// filename is derived from the video title the same way the library derives
// it, so the returned path matches the file on disk.
func (f *ytdlpFetcher) Fetch(ctx context.Context, videoURL string, format model.Format, destDir string, progress func(model.Progress)) (string, error) {
	d := ytdlp.New().
		WithFormat(fmt.Sprintf("itag=%d", format.Itag), model.ContainerMP4).
		WithOutputPath(destDir)

	if f.opts.HTTPClient != nil {
		d = d.WithHTTPClient(f.opts.HTTPClient)
	}
	if f.opts.RateLimitBps > 0 {
		d = d.WithRateLimit(f.opts.RateLimitBps)
	}
	if progress != nil {
		d = d.WithProgress(func(p ytdlp.Progress) {
			progress(model.Progress{
				TotalBytes:      p.TotalSize,
				DownloadedBytes: p.DownloadedSize,
				Percent:         p.Percent,
			})
		})
	}

	info, err := d.Download(ctx, videoURL)
	if err != nil {
		return "", err
	}

	name := platform.SafeFilename(info.Title, model.ContainerMP4)
	return filepath.Join(destDir, name), nil
}
