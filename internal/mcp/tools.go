package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/tasksearch/internal/searcher"
	"github.com/dshills/tasksearch/internal/taskstore"
	"github.com/dshills/tasksearch/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeEmptyQuery    = -32001 // Query parameter is empty
	ErrorCodeTaskNotFound  = -32002 // Task ID does not exist
)

// handleSearchTasks handles the search_tasks tool invocation
func (s *Server) handleSearchTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	limit := getIntDefault(args, "limit", searcher.DefaultMaxResults)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	minScore := getFloatDefault(args, "min_score", s.cfg.Search.MinScore)
	includeFuzzy := getBoolDefault(args, "include_fuzzy", s.cfg.Search.IncludeFuzzy)
	suggestions := getBoolDefault(args, "suggestions", false)

	resp, err := s.searcher.Search(ctx, searcher.Request{
		Query:          query,
		MinScore:       minScore,
		MaxResults:     limit,
		IncludeFuzzy:   includeFuzzy,
		FuzzyThreshold: s.cfg.Search.FuzzyThreshold,
		Suggestions:    suggestions,
		MaxSuggestions: s.cfg.Session.MaxSuggestions,
		UseCache:       true,
		CacheTTL:       s.cfg.CacheTTL(),
	})
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	matches := make([]map[string]interface{}, len(resp.Matches))
	for i, m := range resp.Matches {
		matches[i] = map[string]interface{}{
			"id":             m.Task.ID.String(),
			"title":          m.Task.Title,
			"description":    m.Task.Description,
			"project":        m.Task.Project,
			"completed":      m.Task.Completed,
			"score":          m.Score,
			"matched_fields": m.MatchedFields,
			"highlights": map[string]interface{}{
				"title":       m.Highlights.Title,
				"description": m.Highlights.Description,
			},
		}
	}

	response := map[string]interface{}{
		"matches":       matches,
		"total_matches": resp.TotalMatches,
		"duration_ms":   resp.Duration.Milliseconds(),
		"cache_hit":     resp.CacheHit,
	}
	if suggestions {
		response["suggestions"] = resp.Suggestions
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetSuggestions handles the get_suggestions tool invocation
func (s *Server) handleGetSuggestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	limit := getIntDefault(args, "limit", searcher.DefaultMaxSuggestions)
	if limit < 1 || limit > 20 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 20", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	tasks, err := s.store.ActiveTasks(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to load tasks", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"suggestions": searcher.Suggest(tasks, query, limit),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleAddTask handles the add_task tool invocation
func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "title parameter is required", map[string]interface{}{
			"param":  "title",
			"reason": "missing or empty",
		})
	}

	task := types.Task{
		Title:       title,
		Description: getStringDefault(args, "description", ""),
		Project:     getStringDefault(args, "project", ""),
	}

	if dueStr := getStringDefault(args, "due_date", ""); dueStr != "" {
		due, err := time.Parse(time.RFC3339, dueStr)
		if err != nil {
			return nil, newMCPError(ErrorCodeInvalidParams, "due_date must be RFC 3339", map[string]interface{}{
				"param": "due_date",
				"value": dueStr,
			})
		}
		task.DueDate = &due
	}

	if err := s.store.CreateTask(ctx, &task); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to create task", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// New rows invalidate any cached search results
	s.searcher.InvalidateCache()

	response := map[string]interface{}{
		"created": true,
		"id":      task.ID.String(),
		"title":   task.Title,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCompleteTask handles the complete_task tool invocation
func (s *Server) handleCompleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	idStr, ok := args["id"].(string)
	if !ok || idStr == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "id parameter is required", map[string]interface{}{
			"param":  "id",
			"reason": "missing or empty",
		})
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "id must be a uuid", map[string]interface{}{
			"param": "id",
			"value": idStr,
		})
	}

	if err := s.store.CompleteTask(ctx, id); err != nil {
		if err == taskstore.ErrNotFound {
			return nil, newMCPError(ErrorCodeTaskNotFound, "task not found", map[string]interface{}{
				"id": idStr,
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "failed to complete task", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.searcher.InvalidateCache()

	response := map[string]interface{}{
		"completed": true,
		"id":        idStr,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.store.GetStatus(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to get status", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"statistics": map[string]interface{}{
			"total_tasks":     status.TotalTasks,
			"active_tasks":    status.ActiveTasks,
			"completed_tasks": status.CompletedTasks,
			"deleted_tasks":   status.DeletedTasks,
			"abandoned_tasks": status.AbandonedTasks,
		},
		"health": map[string]interface{}{
			"database_accessible": status.DatabaseAccessible,
		},
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getFloatDefault extracts a float parameter with a default value
func getFloatDefault(args map[string]interface{}, key string, defaultValue float64) float64 {
	if val, ok := args[key].(float64); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
