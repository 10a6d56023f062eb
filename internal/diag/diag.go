// Package diag provides an explicitly injected diagnostics recorder for
// the search core.
//
// Nothing in the core requires diagnostics to run; components accept a
// Recorder and fall back to the no-op implementation when given nil.
// There is deliberately no package-level global to attach to.
package diag

import (
	"log"
	"time"
)

// Recorder receives notifications about search activity.
type Recorder interface {
	// SearchStarted fires when a scoring pass begins for query.
	SearchStarted(query string)

	// SearchCompleted fires when a scoring pass settles, with the
	// number of matches and the elapsed scoring time.
	SearchCompleted(query string, matches int, elapsed time.Duration)
}

// Nop is a Recorder that discards everything.
type Nop struct{}

func (Nop) SearchStarted(string) {}

func (Nop) SearchCompleted(string, int, time.Duration) {}

// OrNop returns r, or a Nop recorder when r is nil.
func OrNop(r Recorder) Recorder {
	if r == nil {
		return Nop{}
	}
	return r
}

// LogRecorder writes search activity to a standard library logger.
type LogRecorder struct {
	Logger *log.Logger
}

// NewLogRecorder creates a LogRecorder writing to logger.
func NewLogRecorder(logger *log.Logger) *LogRecorder {
	return &LogRecorder{Logger: logger}
}

func (r *LogRecorder) SearchStarted(query string) {
	r.Logger.Printf("search started: %q", query)
}

func (r *LogRecorder) SearchCompleted(query string, matches int, elapsed time.Duration) {
	r.Logger.Printf("search completed: %q matches=%d elapsed=%s", query, matches, elapsed)
}
