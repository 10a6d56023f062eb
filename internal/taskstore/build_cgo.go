//go:build cgo_sqlite
// +build cgo_sqlite

package taskstore

// This file is compiled when building with CGO and the cgo_sqlite tag.
//
// Build command:
//   CGO_ENABLED=1 go build -tags "cgo_sqlite" ./...
//
// The C-backed driver provides:
//   - Faster bulk imports and large list scans
//   - Battle-tested SQLite build
//   - Requires a C compiler on the build host
//
// Driver used: github.com/mattn/go-sqlite3

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite3"

	// BuildMode describes the current build configuration
	BuildMode = "cgo"
)
