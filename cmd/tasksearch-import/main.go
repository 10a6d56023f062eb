// Command tasksearch-import loads tasks from a JSON file into the
// local task store.
//
// Usage:
//
//	tasksearch-import -db ~/.tasksearch/tasks.db tasks.json
//
// The input file is a JSON array of task objects:
//
//	[
//	  {"title": "Learn React", "project": "study"},
//	  {"title": "完成项目文档", "description": "编写项目的详细文档"}
//	]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/dshills/tasksearch/internal/config"
	"github.com/dshills/tasksearch/internal/taskstore"
	"github.com/dshills/tasksearch/pkg/types"
)

// importTask is the JSON shape accepted by the importer.
type importTask struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Project     string `json:"project,omitempty"`
	Completed   bool   `json:"completed,omitempty"`
	DueDate     string `json:"due_date,omitempty"` // RFC 3339
}

func main() {
	dbPath := flag.String("db", "", "task database path (default ~/.tasksearch/tasks.db)")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent import workers")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-db path] [-workers n] tasks.json\n", os.Args[0])
		os.Exit(2)
	}

	path := *dbPath
	if path == "" {
		cfg := config.Default()
		var err error
		path, err = cfg.StorePath()
		if err != nil {
			log.Fatalf("Failed to resolve database path: %v", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	tasks, err := readTasks(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read tasks: %v", err)
	}

	store, err := taskstore.NewSQLiteStore(path)
	if err != nil {
		log.Fatalf("Failed to open task store: %v", err)
	}
	defer func() { _ = store.Close() }()

	stats, err := store.BulkImport(context.Background(), tasks, *workers)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Printf("Imported: %d\n", stats.Imported)
	fmt.Printf("Skipped:  %d\n", stats.Skipped)
	fmt.Printf("Failed:   %d\n", stats.Failed)
	fmt.Printf("Duration: %s\n", stats.Duration)

	for _, msg := range stats.ErrorMessages {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// readTasks parses the JSON input file into task records.
func readTasks(path string) ([]types.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var input []importTask
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	tasks := make([]types.Task, 0, len(input))
	for i, in := range input {
		task := types.Task{
			Title:       in.Title,
			Description: in.Description,
			Project:     in.Project,
			Completed:   in.Completed,
		}
		if in.DueDate != "" {
			due, err := time.Parse(time.RFC3339, in.DueDate)
			if err != nil {
				return nil, fmt.Errorf("task %d: bad due_date %q: %w", i, in.DueDate, err)
			}
			task.DueDate = &due
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
