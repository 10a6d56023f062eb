package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchTasksTool returns the tool definition for search_tasks
func searchTasksTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_tasks",
		Description: "Search tasks by title, description, and project with fuzzy matching",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query (Latin, CJK, and numeric text supported)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-100)",
					"default":     50,
					"minimum":     1,
					"maximum":     100,
				},
				"min_score": map[string]interface{}{
					"type":        "number",
					"description": "Minimum relevance score threshold",
					"default":     0.5,
					"minimum":     0.0,
				},
				"include_fuzzy": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, apply edit-distance matching to near-miss tokens",
					"default":     true,
				},
				"suggestions": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, include completion suggestions for the query",
					"default":     false,
				},
			},
			Required: []string{"query"},
		},
	}
}

// getSuggestionsTool returns the tool definition for get_suggestions
func getSuggestionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_suggestions",
		Description: "Get completion suggestions for a partial search query",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Partial query to complete",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of suggestions (1-20)",
					"default":     5,
					"minimum":     1,
					"maximum":     20,
				},
			},
			Required: []string{"query"},
		},
	}
}

// addTaskTool returns the tool definition for add_task
func addTaskTool() mcp.Tool {
	return mcp.Tool{
		Name:        "add_task",
		Description: "Add a task to the local task store",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Task title (required, non-empty)",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Task description",
				},
				"project": map[string]interface{}{
					"type":        "string",
					"description": "Project label",
				},
				"due_date": map[string]interface{}{
					"type":        "string",
					"description": "Due date in RFC 3339 format (e.g. 2026-09-15T00:00:00Z)",
				},
			},
			Required: []string{"title"},
		},
	}
}

// completeTaskTool returns the tool definition for complete_task
func completeTaskTool() mcp.Tool {
	return mcp.Tool{
		Name:        "complete_task",
		Description: "Mark a task as completed",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Task ID (uuid)",
				},
			},
			Required: []string{"id"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report task store contents and health",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
