package download

// Package download executes the transfer of one selected format through the
// ytget/ytdlp library. It owns the task lifecycle and derives speed and ETA
// from the raw byte counts the library reports.
