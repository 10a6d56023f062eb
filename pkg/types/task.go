package types

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single task record as seen by the search core.
//
// Title is required and always present; the search core trusts this and
// does not re-validate it on every scoring pass. Description and Project
// are optional; an empty string means the field is absent and simply
// never matches. Deleted and Abandoned tasks are excluded from every
// search and suggestion operation unconditionally.
type Task struct {
	// Identification
	ID uuid.UUID

	// Searchable fields
	Title       string
	Description string // Optional
	Project     string // Optional project label

	// Status flags
	Completed bool
	Deleted   bool // Soft-deleted, hidden from search
	Abandoned bool // Given up, hidden from search

	// Dates
	DueDate     *time.Time // Nullable
	CompletedAt *time.Time // Nullable
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Searchable reports whether the task participates in search and
// suggestion scans.
func (t *Task) Searchable() bool {
	return !t.Deleted && !t.Abandoned
}

// Validate checks if the task satisfies the contract the search core
// relies on.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrInvalidTaskID
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	return nil
}
