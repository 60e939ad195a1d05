package extract

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	yterrs "github.com/ytget/ytdlp/errs"
	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-fetch/internal/errs"
	"github.com/ytget/yt-fetch/internal/logging"
	"github.com/ytget/yt-fetch/internal/model"
)

// Service probes videos through the ytget/ytdlp extraction library.
type Service struct {
	httpClient *http.Client
}

// NewService creates a new extraction service. httpClient may be nil, in
// which case the library's default client is used.
func NewService(httpClient *http.Client) *Service {
	return &Service{httpClient: httpClient}
}

// Probe fetches the metadata and available formats for videoURL.
func (s *Service) Probe(ctx context.Context, videoURL string) (*model.Video, error) {
	if _, err := ParseVideoID(videoURL); err != nil {
		return nil, err
	}

	d := ytdlp.New()
	if s.httpClient != nil {
		d = d.WithHTTPClient(s.httpClient)
	}

	logging.D(1, "Resolving player response for %s", videoURL)
	_, info, err := d.ResolveURL(ctx, videoURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errs.ErrUserInterrupt
		}
		return nil, mapExtractionError(err)
	}

	return &model.Video{
		ID:       info.ID,
		Title:    info.Title,
		Duration: info.Duration,
		Formats:  FromTypes(info.Formats),
	}, nil
}

// ParseVideoID extracts the video ID from the usual YouTube URL shapes.
func ParseVideoID(videoURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(videoURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrInvalidURL, err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch host {
	case "youtu.be":
		if id := strings.TrimPrefix(u.Path, "/"); id != "" {
			return id, nil
		}
	case "youtube.com", "m.youtube.com":
		if strings.HasPrefix(u.Path, "/watch") {
			if id := u.Query().Get("v"); id != "" {
				return id, nil
			}
		}
		if strings.HasPrefix(u.Path, "/shorts/") {
			if id := strings.TrimPrefix(u.Path, "/shorts/"); id != "" {
				return id, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", errs.ErrInvalidURL, videoURL)
}

// mapExtractionError translates collaborator sentinels into user-readable
// extraction failures.
func mapExtractionError(err error) error {
	switch {
	case errors.Is(err, yterrs.ErrPrivate):
		return fmt.Errorf("%w: the video is private", errs.ErrExtraction)
	case errors.Is(err, yterrs.ErrVideoUnavailable):
		return fmt.Errorf("%w: the video is unavailable or has been removed", errs.ErrExtraction)
	case errors.Is(err, yterrs.ErrAgeRestricted):
		return fmt.Errorf("%w: the video is age restricted", errs.ErrExtraction)
	case errors.Is(err, yterrs.ErrGeoBlocked):
		return fmt.Errorf("%w: the video is not available in your region", errs.ErrExtraction)
	case errors.Is(err, yterrs.ErrRateLimited):
		return fmt.Errorf("%w: the provider is rate limiting requests, try again later", errs.ErrExtraction)
	default:
		return fmt.Errorf("%w: %v", errs.ErrExtraction, err)
	}
}
