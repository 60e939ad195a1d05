package model

// Container constants
const (
	ContainerMP4 = "mp4"
)

// Format describes one downloadable encoding of a video as offered by the
// source platform.
type Format struct {
	Itag       int    // opaque format ID understood by the extractor
	Resolution string // human readable quality tier, e.g. "720p"
	Height     int    // parsed pixel height, 0 if unknown
	Container  string // MIME subtype, e.g. "mp4" or "webm"
	MimeType   string // full MIME type including codecs
	HasVideo   bool
	HasAudio   bool
	Bitrate    int
	Size       int64 // content length in bytes, 0 if unknown
}

// IsMuxedMP4 reports whether the format is an mp4 container carrying both a
// video and an audio stream, i.e. playable without merging.
func (f Format) IsMuxedMP4() bool {
	return f.Container == ContainerMP4 && f.HasVideo && f.HasAudio
}

// Video holds the metadata of one probed video.
type Video struct {
	ID       string
	Title    string
	Duration int // seconds, 0 if unknown
	Formats  []Format
}

// Progress is a single progress sample reported during a transfer.
type Progress struct {
	TotalBytes      int64
	DownloadedBytes int64
	Percent         float64
}
