package searcher

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dshills/tasksearch/internal/diag"
	"github.com/dshills/tasksearch/internal/highlight"
	"github.com/dshills/tasksearch/internal/scorer"
	"github.com/dshills/tasksearch/internal/tokenizer"
	"github.com/dshills/tasksearch/pkg/types"
)

// Default search options.
const (
	DefaultMinScore       = 0.5
	DefaultMaxResults     = 50
	DefaultMaxSuggestions = 5
)

// Options configures one search pass.
type Options struct {
	// MinScore is the minimum score a task must reach to be returned.
	MinScore float64

	// MaxResults caps the result list. A value of 0 really means zero
	// results; use DefaultOptions for the defaults.
	MaxResults int

	// IncludeFuzzy enables the edit-distance branch of the scorer's
	// fine pass.
	IncludeFuzzy bool

	// FuzzyThreshold is the normalized similarity cutoff for fuzzy
	// token matches.
	FuzzyThreshold float64
}

// DefaultOptions returns the standard search options: MinScore 0.5,
// MaxResults 50, fuzzy matching enabled at threshold 0.7.
func DefaultOptions() Options {
	return Options{
		MinScore:       DefaultMinScore,
		MaxResults:     DefaultMaxResults,
		IncludeFuzzy:   true,
		FuzzyThreshold: 0.7,
	}
}

// SearchTasks scores tasks against query and returns the ranked match
// list. A nil opts selects DefaultOptions.
//
// Deleted and abandoned tasks never appear in the output. Matches are
// sorted descending by score; tasks with equal scores keep their input
// order. An empty, whitespace-only, or punctuation-only query returns
// no matches; that is a defined result, not an error.
func SearchTasks(tasks []types.Task, query string, opts *Options) []types.SearchMatch {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	queryTokens := tokenizer.Tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	options := DefaultOptions()
	if opts != nil {
		options = *opts
	}
	if options.MaxResults < 0 {
		options.MaxResults = 0
	}
	if options.FuzzyThreshold == 0 {
		options.FuzzyThreshold = DefaultOptions().FuzzyThreshold
	}

	scoreOpts := scorer.Options{
		IncludeFuzzy:   options.IncludeFuzzy,
		FuzzyThreshold: options.FuzzyThreshold,
	}

	var matches []types.SearchMatch
	for _, task := range tasks {
		if !task.Searchable() {
			continue
		}

		result := scorer.Score(task, queryTokens, scoreOpts)
		if result.Score < options.MinScore {
			continue
		}

		match := types.SearchMatch{
			Task:          task,
			Score:         result.Score,
			MatchedFields: result.MatchedFields,
			Highlights: types.Highlights{
				// Highlights use the original query string, not the
				// token list, so spans line up with what the user typed.
				Title: highlight.Text(task.Title, query),
			},
		}
		if task.Description != "" {
			match.Highlights.Description = highlight.Text(task.Description, query)
		}

		matches = append(matches, match)
	}

	// Stable sort keeps input order among equal scores, which makes
	// result order fully deterministic.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > options.MaxResults {
		matches = matches[:options.MaxResults]
	}

	return matches
}

// TaskSource supplies the task records a search scans. The engine
// filters deleted and abandoned tasks itself, so implementations may
// return everything they hold.
type TaskSource interface {
	ActiveTasks(ctx context.Context) ([]types.Task, error)
}

// StaticSource adapts an in-memory task slice to the TaskSource
// interface, for consumers that already hold their task list.
type StaticSource []types.Task

// ActiveTasks returns the slice as-is.
func (s StaticSource) ActiveTasks(ctx context.Context) ([]types.Task, error) {
	return s, nil
}

// Request contains parameters for a search operation.
type Request struct {
	Query          string
	MinScore       float64
	MaxResults     int
	IncludeFuzzy   bool
	FuzzyThreshold float64
	MaxSuggestions int
	Suggestions    bool // Whether to compute suggestions alongside results
	UseCache       bool // Whether to use the query cache
	CacheTTL       time.Duration
}

// Response contains search results and metadata.
type Response struct {
	Matches      []types.SearchMatch
	Suggestions  []string
	TotalMatches int
	Duration     time.Duration
	CacheHit     bool
}

// cacheEntry represents a cached search response with expiration time
type cacheEntry struct {
	response  *Response
	expiresAt time.Time
}

// Searcher runs searches against a task source, with an optional LRU
// query cache.
type Searcher struct {
	source  TaskSource
	diag    diag.Recorder
	cache   *lru.Cache[[32]byte, *cacheEntry]
	cacheMu sync.RWMutex
}

// NewSearcher creates a Searcher reading tasks from source. A nil
// recorder disables diagnostics.
func NewSearcher(source TaskSource, recorder diag.Recorder) *Searcher {
	// 1000 cached queries is far beyond what one interactive session
	// produces; the LRU evicts quietly if it ever fills.
	cache, err := lru.New[[32]byte, *cacheEntry](1000)
	if err != nil {
		// This should never happen with valid size parameter
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}

	return &Searcher{
		source: source,
		diag:   diag.OrNop(recorder),
		cache:  cache,
	}
}

// Search performs a search based on the request parameters.
func (s *Searcher) Search(ctx context.Context, req Request) (*Response, error) {
	startTime := time.Now()

	if err := s.validateRequest(&req); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}

	if req.UseCache {
		cached := s.checkCache(req)
		if cached != nil {
			cached.CacheHit = true
			cached.Duration = time.Since(startTime)
			return cached, nil
		}
	}

	tasks, err := s.source.ActiveTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	s.diag.SearchStarted(req.Query)

	opts := Options{
		MinScore:       req.MinScore,
		MaxResults:     req.MaxResults,
		IncludeFuzzy:   req.IncludeFuzzy,
		FuzzyThreshold: req.FuzzyThreshold,
	}

	response := &Response{
		Matches: SearchTasks(tasks, req.Query, &opts),
	}
	response.TotalMatches = len(response.Matches)

	if req.Suggestions {
		response.Suggestions = Suggest(tasks, req.Query, req.MaxSuggestions)
	}

	response.Duration = time.Since(startTime)
	s.diag.SearchCompleted(req.Query, response.TotalMatches, response.Duration)

	if req.UseCache && len(response.Matches) > 0 {
		s.storeInCache(req, response)
	}

	return response, nil
}

// InvalidateCache drops all cached responses. Call after the underlying
// task set changes; a stale cache would otherwise serve matches for
// tasks that no longer exist.
func (s *Searcher) InvalidateCache() {
	s.cacheMu.Lock()
	s.cache.Purge()
	s.cacheMu.Unlock()
}

// validateRequest ensures the search request is valid, filling defaults
// for unset fields.
func (s *Searcher) validateRequest(req *Request) error {
	if strings.TrimSpace(req.Query) == "" {
		return fmt.Errorf("query cannot be empty")
	}

	if req.MinScore <= 0 {
		req.MinScore = DefaultMinScore
	}

	if req.MaxResults <= 0 {
		req.MaxResults = DefaultMaxResults
	}

	if req.FuzzyThreshold <= 0 {
		req.FuzzyThreshold = DefaultOptions().FuzzyThreshold
	}

	if req.MaxSuggestions <= 0 {
		req.MaxSuggestions = DefaultMaxSuggestions
	}

	if req.CacheTTL == 0 {
		req.CacheTTL = 1 * time.Hour
	}

	return nil
}

// checkCache looks up a cached, unexpired response. Returns nil on miss.
func (s *Searcher) checkCache(req Request) *Response {
	hash := computeQueryHash(req)
	now := time.Now()

	s.cacheMu.RLock()
	entry, found := s.cache.Get(hash)

	if !found {
		s.cacheMu.RUnlock()
		return nil
	}

	if now.After(entry.expiresAt) {
		s.cacheMu.RUnlock()

		s.cacheMu.Lock()
		s.cache.Remove(hash)
		s.cacheMu.Unlock()
		return nil
	}

	// Copy while still holding the read lock so the entry can't change
	// mid-copy.
	response := copyResponse(entry.response)
	s.cacheMu.RUnlock()

	return response
}

// storeInCache saves a search response for later identical requests.
func (s *Searcher) storeInCache(req Request, response *Response) {
	entry := &cacheEntry{
		response:  copyResponse(response),
		expiresAt: time.Now().Add(req.CacheTTL),
	}

	s.cacheMu.Lock()
	s.cache.Add(computeQueryHash(req), entry)
	s.cacheMu.Unlock()
}

// copyResponse creates a deep copy of a Response so cached data can
// never be mutated by a consumer.
func copyResponse(src *Response) *Response {
	if src == nil {
		return nil
	}

	dst := &Response{
		TotalMatches: src.TotalMatches,
		Duration:     src.Duration,
		CacheHit:     src.CacheHit,
		Matches:      make([]types.SearchMatch, len(src.Matches)),
		Suggestions:  append([]string(nil), src.Suggestions...),
	}

	for i, match := range src.Matches {
		dst.Matches[i] = match
		// Task is a value; its pointer date fields are never mutated,
		// so sharing them is safe. MatchedFields is rebuilt to keep
		// cached slices private.
		dst.Matches[i].MatchedFields = append([]string(nil), match.MatchedFields...)
	}

	return dst
}

// computeQueryHash computes a unique hash for a search request.
func computeQueryHash(req Request) [32]byte {
	var data strings.Builder
	data.WriteString(req.Query)
	data.WriteString("|")
	data.WriteString(fmt.Sprintf("%.3f", req.MinScore))
	data.WriteString("|")
	data.WriteString(fmt.Sprintf("%d", req.MaxResults))
	data.WriteString("|")
	data.WriteString(fmt.Sprintf("%t", req.IncludeFuzzy))
	data.WriteString("|")
	data.WriteString(fmt.Sprintf("%.3f", req.FuzzyThreshold))
	data.WriteString("|")
	data.WriteString(fmt.Sprintf("%t|%d", req.Suggestions, req.MaxSuggestions))

	return sha256.Sum256([]byte(data.String()))
}
