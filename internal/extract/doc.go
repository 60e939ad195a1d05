package extract

// Package extract lists the downloadable encodings of a video. It wraps the
// ytget/ytdlp extraction library behind a small interface and converts the
// library's format metadata into domain formats with explicit container and
// stream-composition flags.
