package taskstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/tasksearch/pkg/types"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCreateAndGetTask(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	task := &types.Task{
		Title:       "Learn React",
		Description: "Work through the hooks guide",
		Project:     "learning",
		DueDate:     &due,
	}

	require.NoError(t, store.CreateTask(ctx, task))
	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.False(t, task.CreatedAt.IsZero())

	got, err := store.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Learn React", got.Title)
	assert.Equal(t, "Work through the hooks guide", got.Description)
	assert.Equal(t, "learning", got.Project)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
	assert.Nil(t, got.CompletedAt)
}

func TestCreateTaskValidation(t *testing.T) {
	store := newTestStore(t)

	err := store.CreateTask(context.Background(), &types.Task{Title: ""})

	assert.ErrorIs(t, err, types.ErrEmptyTitle)
}

func TestCreateTaskDuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task := &types.Task{ID: uuid.New(), Title: "Once"}
	require.NoError(t, store.CreateTask(ctx, task))

	err := store.CreateTask(ctx, &types.Task{ID: task.ID, Title: "Twice"})

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestGetTaskNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetTask(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTask(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task := &types.Task{Title: "Draft report"}
	require.NoError(t, store.CreateTask(ctx, task))

	task.Title = "Final report"
	task.Project = "quarterly"
	require.NoError(t, store.UpdateTask(ctx, task))

	got, err := store.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final report", got.Title)
	assert.Equal(t, "quarterly", got.Project)
}

func TestUpdateTaskNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.UpdateTask(context.Background(), &types.Task{ID: uuid.New(), Title: "Ghost"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteTask(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task := &types.Task{Title: "Ship release"}
	require.NoError(t, store.CreateTask(ctx, task))
	require.NoError(t, store.CompleteTask(ctx, task.ID))

	got, err := store.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.NotNil(t, got.CompletedAt)
}

func TestSoftDeleteExcludedFromActive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	kept := &types.Task{Title: "Keep me"}
	gone := &types.Task{Title: "Delete me"}
	dropped := &types.Task{Title: "Abandon me"}
	require.NoError(t, store.CreateTask(ctx, kept))
	require.NoError(t, store.CreateTask(ctx, gone))
	require.NoError(t, store.CreateTask(ctx, dropped))

	require.NoError(t, store.DeleteTask(ctx, gone.ID))
	require.NoError(t, store.AbandonTask(ctx, dropped.ID))

	active, err := store.ActiveTasks(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, kept.ID, active[0].ID)

	// The rows survive; only the flags changed.
	row, err := store.GetTask(ctx, gone.ID)
	require.NoError(t, err)
	assert.True(t, row.Deleted)

	row, err = store.GetTask(ctx, dropped.ID)
	require.NoError(t, err)
	assert.True(t, row.Abandoned)
}

func TestListTasksFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	done := &types.Task{Title: "Done", Project: "alpha", Completed: true}
	open := &types.Task{Title: "Open", Project: "alpha"}
	other := &types.Task{Title: "Other", Project: "beta"}
	require.NoError(t, store.CreateTask(ctx, done))
	require.NoError(t, store.CreateTask(ctx, open))
	require.NoError(t, store.CreateTask(ctx, other))

	alpha, err := store.ListTasks(ctx, &ListFilter{Project: "alpha"})
	require.NoError(t, err)
	assert.Len(t, alpha, 2)

	completed, err := store.ListTasks(ctx, &ListFilter{OnlyCompleted: true})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, done.ID, completed[0].ID)

	incomplete, err := store.ListTasks(ctx, &ListFilter{OnlyIncomplete: true})
	require.NoError(t, err)
	assert.Len(t, incomplete, 2)
}

func TestGetStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := &types.Task{Title: "A", Completed: true}
	b := &types.Task{Title: "B"}
	c := &types.Task{Title: "C"}
	require.NoError(t, store.CreateTask(ctx, a))
	require.NoError(t, store.CreateTask(ctx, b))
	require.NoError(t, store.CreateTask(ctx, c))
	require.NoError(t, store.DeleteTask(ctx, c.ID))

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, status.TotalTasks)
	assert.Equal(t, 2, status.ActiveTasks)
	assert.Equal(t, 1, status.CompletedTasks)
	assert.Equal(t, 1, status.DeletedTasks)
	assert.Equal(t, 0, status.AbandonedTasks)
	assert.True(t, status.DatabaseAccessible)
}

func TestBulkImport(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tasks := make([]types.Task, 0, 120)
	for i := 0; i < 120; i++ {
		tasks = append(tasks, types.Task{ID: uuid.New(), Title: "Imported task"})
	}
	// Invalid rows are skipped, not fatal.
	tasks = append(tasks, types.Task{ID: uuid.New(), Title: ""})

	stats, err := store.BulkImport(ctx, tasks, 4)
	require.NoError(t, err)
	assert.Equal(t, 120, stats.Imported)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Failed)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, status.TotalTasks)
}
