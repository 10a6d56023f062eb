package taskstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/tasksearch/pkg/types"
)

var (
	// ErrNotFound is returned when a requested task doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when trying to create a duplicate task
	ErrAlreadyExists = errors.New("already exists")
)

// Store defines the interface for persisting and querying tasks.
//
// The store is the search core's input collaborator: ActiveTasks feeds
// the search engine a snapshot of records, and the engine never writes
// anything back. Delete and Abandon are soft operations; rows are
// flagged, never removed, which is what makes deleted tasks provably
// absent from search output end to end.
type Store interface {
	// Task operations
	CreateTask(ctx context.Context, task *types.Task) error
	GetTask(ctx context.Context, id uuid.UUID) (*types.Task, error)
	UpdateTask(ctx context.Context, task *types.Task) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
	AbandonTask(ctx context.Context, id uuid.UUID) error
	CompleteTask(ctx context.Context, id uuid.UUID) error

	// Listing operations
	ListTasks(ctx context.Context, filter *ListFilter) ([]types.Task, error)
	ActiveTasks(ctx context.Context) ([]types.Task, error)

	// Bulk operations
	BulkImport(ctx context.Context, tasks []types.Task, workers int) (*ImportStats, error)

	// Status operations
	GetStatus(ctx context.Context) (*Status, error)

	// Database operations
	Close() error
}

// ListFilter narrows ListTasks output. The zero value lists every row,
// including soft-deleted and abandoned ones.
type ListFilter struct {
	Project          string // Exact project label, empty matches all
	OnlyCompleted    bool
	OnlyIncomplete   bool
	IncludeDeleted   bool
	IncludeAbandoned bool
}

// ImportStats contains statistics about a bulk import operation.
type ImportStats struct {
	Imported int
	Skipped  int
	Failed   int
	Duration time.Duration

	ErrorMessages []string
}

// Status reports store contents and health.
type Status struct {
	TotalTasks     int
	ActiveTasks    int
	CompletedTasks int
	DeletedTasks   int
	AbandonedTasks int

	DatabaseAccessible bool
}
