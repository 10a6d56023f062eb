package taskstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/tasksearch/pkg/types"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStore creates a new SQLite task store instance
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const taskColumns = `id, title, description, project, completed, deleted, abandoned,
       due_date, completed_at, created_at, updated_at`

// CreateTask inserts a new task. A nil task ID is assigned a fresh
// uuid. Title must be non-empty.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *types.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	query := `
		INSERT INTO tasks (id, title, description, project, completed, deleted, abandoned,
		                   due_date, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		task.ID.String(), task.Title, task.Description, task.Project,
		task.Completed, task.Deleted, task.Abandoned,
		nullTime(task.DueDate), nullTime(task.CompletedAt),
		task.CreatedAt, task.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetTask fetches one task by ID, including soft-deleted rows.
func (s *SQLiteStore) GetTask(ctx context.Context, id uuid.UUID) (*types.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id.String()))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// UpdateTask rewrites a task's mutable fields.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *types.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	task.UpdatedAt = time.Now()

	query := `
		UPDATE tasks
		SET title = ?, description = ?, project = ?, completed = ?,
		    deleted = ?, abandoned = ?, due_date = ?, completed_at = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Project, task.Completed,
		task.Deleted, task.Abandoned,
		nullTime(task.DueDate), nullTime(task.CompletedAt),
		task.UpdatedAt, task.ID.String())
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return requireRow(result)
}

// DeleteTask soft-deletes a task. The row stays; the flag removes it
// from every search and suggestion scan.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return s.setFlag(ctx, id, "deleted")
}

// AbandonTask marks a task abandoned, removing it from search scans.
func (s *SQLiteStore) AbandonTask(ctx context.Context, id uuid.UUID) error {
	return s.setFlag(ctx, id, "abandoned")
}

// CompleteTask marks a task completed, stamping completed_at.
func (s *SQLiteStore) CompleteTask(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET completed = 1, completed_at = ?, updated_at = ? WHERE id = ?`,
		now, now, id.String())
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	return requireRow(result)
}

// setFlag sets a boolean status column to 1.
func (s *SQLiteStore) setFlag(ctx context.Context, id uuid.UUID, column string) error {
	// column is a compile-time constant at every call site, never user
	// input.
	query := fmt.Sprintf(`UPDATE tasks SET %s = 1, updated_at = ? WHERE id = ?`, column)
	result, err := s.db.ExecContext(ctx, query, time.Now(), id.String())
	if err != nil {
		return fmt.Errorf("failed to flag task %s: %w", column, err)
	}
	return requireRow(result)
}

// ListTasks returns tasks matching the filter in creation order.
func (s *SQLiteStore) ListTasks(ctx context.Context, filter *ListFilter) ([]types.Task, error) {
	if filter == nil {
		filter = &ListFilter{IncludeDeleted: true, IncludeAbandoned: true}
	}

	var conditions []string
	var args []interface{}

	if !filter.IncludeDeleted {
		conditions = append(conditions, "deleted = 0")
	}
	if !filter.IncludeAbandoned {
		conditions = append(conditions, "abandoned = 0")
	}
	if filter.Project != "" {
		conditions = append(conditions, "project = ?")
		args = append(args, filter.Project)
	}
	if filter.OnlyCompleted {
		conditions = append(conditions, "completed = 1")
	}
	if filter.OnlyIncomplete {
		conditions = append(conditions, "completed = 0")
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// ActiveTasks returns every task that participates in search, in
// creation order. Implements the search engine's TaskSource.
func (s *SQLiteStore) ActiveTasks(ctx context.Context) ([]types.Task, error) {
	return s.ListTasks(ctx, &ListFilter{})
}

// GetStatus reports row counts and database health
func (s *SQLiteStore) GetStatus(ctx context.Context) (*Status, error) {
	status := &Status{}

	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN deleted = 0 AND abandoned = 0 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(completed), 0),
		       COALESCE(SUM(deleted), 0),
		       COALESCE(SUM(abandoned), 0)
		FROM tasks
	`
	err := s.db.QueryRowContext(ctx, query).Scan(
		&status.TotalTasks, &status.ActiveTasks, &status.CompletedTasks,
		&status.DeletedTasks, &status.AbandonedTasks)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	status.DatabaseAccessible = s.db.PingContext(ctx) == nil
	return status, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanTask
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanTask reads one task row.
func scanTask(row scanner) (*types.Task, error) {
	var task types.Task
	var idStr string
	var dueDate, completedAt sql.NullTime

	err := row.Scan(
		&idStr, &task.Title, &task.Description, &task.Project,
		&task.Completed, &task.Deleted, &task.Abandoned,
		&dueDate, &completedAt, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("malformed task id %q: %w", idStr, err)
	}
	task.ID = id

	if dueDate.Valid {
		t := dueDate.Time
		task.DueDate = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		task.CompletedAt = &t
	}

	return &task, nil
}

// nullTime converts an optional time to its SQL representation.
func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

// requireRow converts a zero-row update into ErrNotFound.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
