package taskstore

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/tasksearch/pkg/types"
)

// importBatchSize is the number of tasks validated per worker batch.
const importBatchSize = 50

// BulkImport inserts a batch of tasks, validating concurrently and
// writing each batch in its own transaction. Tasks with a nil ID get a
// fresh uuid; tasks failing validation are counted and skipped, they
// never abort the import.
func (s *SQLiteStore) BulkImport(ctx context.Context, tasks []types.Task, workers int) (*ImportStats, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	startTime := time.Now()
	stats := &ImportStats{}

	var imported, skipped, failed int32
	var mu sync.Mutex // Protects stats.ErrorMessages

	// Use errgroup for concurrent batch processing with error propagation
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < len(tasks); i += importBatchSize {
		end := i + importBatchSize
		if end > len(tasks) {
			end = len(tasks)
		}
		batch := tasks[i:end]

		g.Go(func() error {
			return s.importBatch(gctx, batch, &imported, &skipped, &failed, &mu, stats)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Imported = int(imported)
	stats.Skipped = int(skipped)
	stats.Failed = int(failed)
	stats.Duration = time.Since(startTime)
	return stats, nil
}

// importBatch inserts one batch of tasks within a transaction.
func (s *SQLiteStore) importBatch(ctx context.Context, batch []types.Task,
	imported, skipped, failed *int32, mu *sync.Mutex, stats *ImportStats) error {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO tasks (id, title, description, project, completed, deleted, abandoned,
		                   due_date, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	for i := range batch {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		task := batch[i]
		if task.ID == uuid.Nil {
			task.ID = uuid.New()
		}

		if err := task.Validate(); err != nil {
			atomic.AddInt32(skipped, 1)
			mu.Lock()
			stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("%s: %v", task.ID, err))
			mu.Unlock()
			continue
		}

		createdAt := task.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		_, err := tx.ExecContext(ctx, query,
			task.ID.String(), task.Title, task.Description, task.Project,
			task.Completed, task.Deleted, task.Abandoned,
			nullTime(task.DueDate), nullTime(task.CompletedAt),
			createdAt, now)
		if err != nil {
			atomic.AddInt32(failed, 1)
			mu.Lock()
			stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("%s: %v", task.ID, err))
			mu.Unlock()
			// Continue with the rest of the batch
			continue
		}

		atomic.AddInt32(imported, 1)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
