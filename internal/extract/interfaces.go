package extract

import (
	"context"

	"github.com/ytget/yt-fetch/internal/model"
)

// Extractor resolves a video URL into metadata and the full format list.
type Extractor interface {
	Probe(ctx context.Context, videoURL string) (*model.Video, error)
}
