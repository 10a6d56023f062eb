package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/tasksearch/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.Default()
	cfg.Store.Path = filepath.Join(t.TempDir(), "tasks.db")

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.store.Close() })
	return srv
}

func toolRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t)

	assert.NotNil(t, srv.mcp)
	assert.NotNil(t, srv.store)
	assert.NotNil(t, srv.searcher)
	assert.NotNil(t, srv.cfg)
}

func TestAddAndSearchTasks(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	added, err := srv.handleAddTask(ctx, toolRequest(map[string]interface{}{
		"title":       "Learn React",
		"description": "Work through the hooks guide",
		"project":     "learning",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, added)
	assert.Equal(t, true, payload["created"])
	id, parseErr := uuid.Parse(payload["id"].(string))
	require.NoError(t, parseErr)
	assert.NotEqual(t, uuid.Nil, id)

	found, err := srv.handleSearchTasks(ctx, toolRequest(map[string]interface{}{
		"query": "react",
	}))
	require.NoError(t, err)

	payload = resultJSON(t, found)
	assert.Equal(t, float64(1), payload["total_matches"])
	matches := payload["matches"].([]interface{})
	match := matches[0].(map[string]interface{})
	assert.Equal(t, "Learn React", match["title"])
	assert.Contains(t, match["matched_fields"], "title")
}

func TestSearchTasksEmptyQuery(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.handleSearchTasks(context.Background(), toolRequest(map[string]interface{}{
		"query": "",
	}))

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeEmptyQuery, mcpErr.Code)
}

func TestSearchTasksLimitBounds(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.handleSearchTasks(context.Background(), toolRequest(map[string]interface{}{
		"query": "react",
		"limit": float64(500),
	}))

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestGetSuggestions(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	_, err := srv.handleAddTask(ctx, toolRequest(map[string]interface{}{
		"title": "Learn React",
	}))
	require.NoError(t, err)

	result, err := srv.handleGetSuggestions(ctx, toolRequest(map[string]interface{}{
		"query": "rea",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, []interface{}{"react"}, payload["suggestions"])
}

func TestCompleteTask(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	added, err := srv.handleAddTask(ctx, toolRequest(map[string]interface{}{
		"title": "Ship release",
	}))
	require.NoError(t, err)
	id := resultJSON(t, added)["id"].(string)

	result, err := srv.handleCompleteTask(ctx, toolRequest(map[string]interface{}{
		"id": id,
	}))
	require.NoError(t, err)
	assert.Equal(t, true, resultJSON(t, result)["completed"])
}

func TestCompleteTaskNotFound(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.handleCompleteTask(context.Background(), toolRequest(map[string]interface{}{
		"id": uuid.New().String(),
	}))

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeTaskNotFound, mcpErr.Code)
}

func TestGetStatus(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	_, err := srv.handleAddTask(ctx, toolRequest(map[string]interface{}{
		"title": "One",
	}))
	require.NoError(t, err)

	result, err := srv.handleGetStatus(ctx, mcp.CallToolRequest{})
	require.NoError(t, err)

	payload := resultJSON(t, result)
	stats := payload["statistics"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total_tasks"])
	health := payload["health"].(map[string]interface{})
	assert.Equal(t, true, health["database_accessible"])
}
