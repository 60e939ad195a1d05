package platform

// Package platform contains OS integration glue: filesystem helpers, safe
// filename derivation, and the open/reveal of finished downloads.
