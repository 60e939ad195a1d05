package download

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-fetch/internal/errs"
	"github.com/ytget/yt-fetch/internal/model"
)

// Service handles the download of one selected format per run
type Service struct {
	fetcher     Fetcher
	downloadDir string
	onUpdate    func(*model.DownloadTask) // callback for progress rendering
}

// NewService creates a new download service
func NewService(fetcher Fetcher, downloadDir string) *Service {
	return &Service{
		fetcher:     fetcher,
		downloadDir: downloadDir,
	}
}

// SetUpdateCallback sets the callback function for task updates. The callback
// runs synchronously on the transfer goroutine and must not block.
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// Run downloads the selected format of video into the configured directory.
// It returns the finished task; on failure the task carries the last error.
func (s *Service) Run(ctx context.Context, video *model.Video, format model.Format) (*model.DownloadTask, error) {
	task := &model.DownloadTask{
		ID:     generateTaskID(),
		URL:    videoWatchURL(video.ID),
		Format: format,
		Title:  video.Title,
		Status: model.TaskStatusPending,
		ETASec: -1,
	}
	s.notifyUpdate(task)

	task.Status = model.TaskStatusStarting
	task.StartedAt = time.Now()
	s.notifyUpdate(task)

	task.Status = model.TaskStatusDownloading
	s.notifyUpdate(task)

	outputPath, err := s.fetcher.Fetch(ctx, task.URL, format, s.downloadDir, func(p model.Progress) {
		s.updateTaskProgress(task, p)
	})

	task.FinishedAt = time.Now()

	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			task.Status = model.TaskStatusStopped
			task.LastError = errs.ErrUserInterrupt.Error()
			s.notifyUpdate(task)
			return task, errs.ErrUserInterrupt
		}
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		s.notifyUpdate(task)
		return task, fmt.Errorf("%w: %v", errs.ErrDownload, err)
	}

	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.Percent = 100
	task.OutputPath = outputPath
	s.notifyUpdate(task)

	return task, nil
}

// updateTaskProgress folds one progress sample into the task
func (s *Service) updateTaskProgress(task *model.DownloadTask, p model.Progress) {
	task.TotalBytes = p.TotalBytes
	task.Downloaded = p.DownloadedBytes

	if p.TotalBytes > 0 {
		percent := float64(p.DownloadedBytes) / float64(p.TotalBytes) * 100
		task.Percent = int(percent)
		task.Progress = percent / 100.0
	}

	elapsed := time.Since(task.StartedAt)
	if elapsed.Seconds() > 0 && p.DownloadedBytes > 0 {
		bytesPerSecond := float64(p.DownloadedBytes) / elapsed.Seconds()
		task.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)

		if p.TotalBytes > 0 {
			remaining := float64(p.TotalBytes - p.DownloadedBytes)
			task.ETASec = int(remaining / bytesPerSecond)
		}
	}

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}

// videoWatchURL rebuilds the canonical watch URL for a video ID
func videoWatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
