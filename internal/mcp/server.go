package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/tasksearch/internal/config"
	"github.com/dshills/tasksearch/internal/searcher"
	"github.com/dshills/tasksearch/internal/taskstore"
)

const (
	// ServerName is the MCP server name
	ServerName = "tasksearch-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	store    taskstore.Store
	searcher *searcher.Searcher
	cfg      *config.Config
}

// NewServer creates a new MCP server instance backed by the task store
// at the configured path.
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	dbPath, err := cfg.StorePath()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := taskstore.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task store: %w", err)
	}

	srch := searcher.NewSearcher(store, nil)

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:      mcpServer,
		store:    store,
		searcher: srch,
		cfg:      cfg,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.store.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(searchTasksTool(), s.handleSearchTasks)
	s.mcp.AddTool(getSuggestionsTool(), s.handleGetSuggestions)
	s.mcp.AddTool(addTaskTool(), s.handleAddTask)
	s.mcp.AddTool(completeTaskTool(), s.handleCompleteTask)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}
