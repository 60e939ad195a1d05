package model

// Package model defines domain data structures used across the app: the
// probed video with its available formats, the download task, and status
// enums. Structures are immutable within a single run except the task,
// which carries explicit state transitions.
