package ui

// Package ui implements the terminal surface: the interactive prompts (URL
// and quality menu) and the single-line progress rendering. All input and
// output streams are injectable for tests.
