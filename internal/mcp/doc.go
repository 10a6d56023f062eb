// Package mcp exposes task search over the Model Context Protocol on
// stdio.
//
// The server wires the task store and searcher together and registers
// five tools:
//
//   - search_tasks: ranked search with scores, matched fields, and
//     highlighted snippets
//   - get_suggestions: prefix completions for a partial query
//   - add_task: insert a task into the local store
//   - complete_task: mark a task completed by uuid
//   - get_status: row counts and store health
//
// stdout carries protocol traffic; anything the process wants to log
// must go to stderr (the entrypoint sets this up).
//
// Errors follow JSON-RPC conventions: -32602 for invalid parameters,
// -32603 for internal failures, plus tool-specific codes for empty
// queries (-32001) and unknown task IDs (-32002).
package mcp
