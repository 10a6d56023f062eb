// Package searcher implements ranked task search and suggestion
// extraction over in-memory task lists.
//
// The package has two layers. The pure functions SearchTasks and
// Suggest are the portable algorithm: no state, no I/O, deterministic
// output for a given input. The Searcher type wraps them as a service
// around a TaskSource, adding request validation, timing, diagnostics,
// and an LRU query cache.
//
// # Basic Usage
//
//	matches := searcher.SearchTasks(tasks, "项目", nil)
//
//	for _, m := range matches {
//	    fmt.Printf("%.1f  %s  %v\n", m.Score, m.Task.Title, m.MatchedFields)
//	}
//
// Or through the service layer:
//
//	s := searcher.NewSearcher(store, nil)
//
//	resp, err := s.Search(ctx, searcher.Request{
//	    Query:       "learn react",
//	    MaxResults:  20,
//	    Suggestions: true,
//	    UseCache:    true,
//	})
//
// # Pipeline
//
// One search pass runs:
//
//	tokenize query -> score every searchable task -> filter by
//	MinScore -> stable sort descending -> truncate to MaxResults ->
//	attach highlights
//
// Deleted and abandoned tasks are skipped before scoring and can never
// appear in results or suggestions. Ties keep input order, so the full
// result list is deterministic for a given task slice and query.
//
// # Queries That Return Nothing
//
// Empty queries, whitespace-only queries, and queries that tokenize to
// nothing (pure punctuation) all return an empty result without error.
// The service layer rejects empty queries with an error instead, since
// a Request with no query is a caller bug rather than a user keystroke.
//
// # Suggestions
//
// Suggest scans title and description tokens of searchable tasks for
// case-insensitive strict-prefix completions of the query, deduplicated
// in scan order and capped (default 5).
//
// # Caching
//
// Search responses are cached in a 1000-entry LRU keyed by a sha256
// hash of the full request, with a per-request TTL (default one hour).
// Cached responses are deep-copied on both store and load. Call
// InvalidateCache whenever the task set changes.
package searcher
