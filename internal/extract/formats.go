package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ytget/ytdlp/types"

	"github.com/ytget/yt-fetch/internal/model"
)

var heightRe = regexp.MustCompile(`([0-9]{3,4})p`)

// Codec prefixes observed in YouTube MIME type strings. Progressive (muxed)
// formats list one codec of each kind; adaptive formats list exactly one.
var (
	videoCodecPrefixes = []string{"avc1", "avc3", "vp8", "vp9", "vp09", "av01", "hev1", "hvc1"}
	audioCodecPrefixes = []string{"mp4a", "opus", "vorbis", "ac-3", "ec-3"}
)

// mimeSubtype extracts the container subtype (e.g. mp4, webm) from a full
// MIME type like `video/mp4; codecs="avc1.64001F, mp4a.40.2"`.
func mimeSubtype(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	parts := strings.Split(mime, "/")
	if len(parts) == 2 {
		return parts[1]
	}
	return ""
}

// mimeCodecs extracts the codec list from the codecs parameter of a MIME type.
func mimeCodecs(mime string) []string {
	lower := strings.ToLower(mime)
	i := strings.Index(lower, "codecs=")
	if i < 0 {
		return nil
	}
	spec := strings.Trim(strings.TrimSpace(lower[i+len("codecs="):]), `"`)
	if spec == "" {
		return nil
	}
	parts := strings.Split(spec, ",")
	codecs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			codecs = append(codecs, p)
		}
	}
	return codecs
}

// hasVideoStream reports whether the MIME type declares a video codec.
func hasVideoStream(mime string) bool {
	codecs := mimeCodecs(mime)
	if len(codecs) == 0 {
		return strings.HasPrefix(strings.ToLower(mime), "video/")
	}
	for _, c := range codecs {
		for _, p := range videoCodecPrefixes {
			if strings.HasPrefix(c, p) {
				return true
			}
		}
	}
	return false
}

// hasAudioStream reports whether the MIME type declares an audio codec.
func hasAudioStream(mime string) bool {
	if strings.HasPrefix(strings.ToLower(mime), "audio/") {
		return true
	}
	for _, c := range mimeCodecs(mime) {
		for _, p := range audioCodecPrefixes {
			if strings.HasPrefix(c, p) {
				return true
			}
		}
	}
	return false
}

// parseHeight extracts the pixel height from a quality label such as "720p".
func parseHeight(label string) int {
	m := heightRe.FindStringSubmatch(label)
	if len(m) >= 2 {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return v
		}
	}
	return 0
}

// FromTypes converts the collaborator's format list into domain formats.
func FromTypes(in []types.Format) []model.Format {
	out := make([]model.Format, 0, len(in))
	for _, f := range in {
		out = append(out, model.Format{
			Itag:       f.Itag,
			Resolution: f.Quality,
			Height:     parseHeight(f.Quality),
			Container:  mimeSubtype(f.MimeType),
			MimeType:   f.MimeType,
			HasVideo:   hasVideoStream(f.MimeType),
			HasAudio:   hasAudioStream(f.MimeType),
			Bitrate:    f.Bitrate,
			Size:       f.Size,
		})
	}
	return out
}

// MuxedMP4 filters to mp4 formats carrying both a video and an audio stream
// and sorts them by resolution descending, bitrate as tiebreak.
func MuxedMP4(in []model.Format) []model.Format {
	out := make([]model.Format, 0, len(in))
	for _, f := range in {
		if f.IsMuxedMP4() {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Height != out[j].Height {
			return out[i].Height > out[j].Height
		}
		return out[i].Bitrate > out[j].Bitrate
	})
	return out
}
