package searcher

import (
	"strings"

	"github.com/dshills/tasksearch/internal/tokenizer"
	"github.com/dshills/tasksearch/pkg/types"
)

// Suggest returns up to max completion candidates for a partial query.
//
// Every searchable task's title and description are tokenized; a token
// suggests the query when its lower-cased form starts with the
// lower-cased query and is strictly longer than it. Candidates are
// deduplicated and returned in scan order (task list order, title
// tokens before description tokens), so output is deterministic.
//
// An empty query returns nothing. max <= 0 selects
// DefaultMaxSuggestions.
func Suggest(tasks []types.Task, query string, max int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if max <= 0 {
		max = DefaultMaxSuggestions
	}

	queryLower := strings.ToLower(query)

	var suggestions []string
	seen := make(map[string]struct{})

	add := func(tok string) bool {
		lower := strings.ToLower(tok)
		if !strings.HasPrefix(lower, queryLower) || len(lower) <= len(queryLower) {
			return false
		}
		if _, dup := seen[tok]; dup {
			return false
		}
		seen[tok] = struct{}{}
		suggestions = append(suggestions, tok)
		return len(suggestions) >= max
	}

	for _, task := range tasks {
		if !task.Searchable() {
			continue
		}

		for _, tok := range tokenizer.Tokenize(task.Title) {
			if add(tok) {
				return suggestions
			}
		}
		if task.Description != "" {
			for _, tok := range tokenizer.Tokenize(task.Description) {
				if add(tok) {
					return suggestions
				}
			}
		}
	}

	return suggestions
}
