package download

import (
	"context"

	"github.com/ytget/yt-fetch/internal/model"
)

// Fetcher transfers one selected format into a destination directory,
// reporting progress synchronously through the callback. It returns the path
// of the written file.
type Fetcher interface {
	Fetch(ctx context.Context, videoURL string, format model.Format, destDir string, progress func(model.Progress)) (string, error)
}
