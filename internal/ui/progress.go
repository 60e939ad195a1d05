package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/ytget/yt-fetch/internal/model"
)

// Byte size units
const (
	KiB = 1 << 10
	MiB = 1 << 20
	GiB = 1 << 30
)

// Renderer draws the single-line transfer progress on a terminal.
type Renderer struct {
	out     io.Writer
	lastLen int
}

// NewRenderer creates a progress renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Update redraws the progress line from a task snapshot. It is invoked
// synchronously from the transfer and only formats and writes one line.
func (r *Renderer) Update(task *model.DownloadTask) {
	if task.Status != model.TaskStatusDownloading {
		return
	}

	speed := task.Speed
	if speed == "" {
		speed = "—"
	}

	line := fmt.Sprintf("[download] %5.1f%% of %s at %s ETA %s",
		task.Progress*100, HumanBytes(task.TotalBytes), speed, task.GetETAString())

	// Pad with spaces so a shrinking line fully overwrites the previous one.
	pad := ""
	if r.lastLen > len(line) {
		pad = strings.Repeat(" ", r.lastLen-len(line))
	}
	r.lastLen = len(line)

	fmt.Fprint(r.out, "\r"+line+pad)
}

// Finish terminates the progress line after the transfer ended.
func (r *Renderer) Finish() {
	if r.lastLen > 0 {
		fmt.Fprintln(r.out)
		r.lastLen = 0
	}
}

// HumanBytes formats a byte count for display.
func HumanBytes(n int64) string {
	switch {
	case n <= 0:
		return "?"
	case n >= GiB:
		return fmt.Sprintf("%.1fGiB", float64(n)/GiB)
	case n >= MiB:
		return fmt.Sprintf("%.1fMiB", float64(n)/MiB)
	case n >= KiB:
		return fmt.Sprintf("%.1fKiB", float64(n)/KiB)
	default:
		return fmt.Sprintf("%dB", n)
	}
}
