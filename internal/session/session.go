package session

import (
	"strings"
	"sync"
	"time"

	"github.com/dshills/tasksearch/internal/diag"
	"github.com/dshills/tasksearch/internal/searcher"
	"github.com/dshills/tasksearch/pkg/types"
)

// DefaultDebounce is the trailing-edge debounce window for Search.
const DefaultDebounce = 300 * time.Millisecond

// Config configures a search session. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Debounce is the trailing-edge debounce window applied by Search.
	Debounce time.Duration

	// Search options forwarded to the engine.
	MinScore       float64
	MaxResults     int
	IncludeFuzzy   bool
	FuzzyThreshold float64

	// EnableSuggestions controls whether each settled search also
	// computes suggestions.
	EnableSuggestions bool
	MaxSuggestions    int

	// Diagnostics receives search lifecycle events. Nil disables it.
	Diagnostics diag.Recorder
}

// DefaultConfig returns the standard session configuration.
func DefaultConfig() Config {
	opts := searcher.DefaultOptions()
	return Config{
		Debounce:          DefaultDebounce,
		MinScore:          opts.MinScore,
		MaxResults:        opts.MaxResults,
		IncludeFuzzy:      opts.IncludeFuzzy,
		FuzzyThreshold:    opts.FuzzyThreshold,
		EnableSuggestions: true,
		MaxSuggestions:    searcher.DefaultMaxSuggestions,
	}
}

// State is the session's externally visible state. It is the single
// source of truth a consuming UI reads.
type State struct {
	// Query is the most recently requested query, including one still
	// waiting out its debounce window.
	Query string

	// Results and Suggestions reflect the most recently settled search.
	Results     []types.SearchMatch
	Suggestions []string

	// Loading is true from the moment a debounced search is requested
	// until it settles.
	Loading bool

	// SearchTime is how long the last scoring pass took.
	SearchTime time.Duration

	// LastQuery is the query the current Results were computed for.
	LastQuery string
}

// Session owns the debounce timing and state for one search consumer.
//
// Each consumer constructs its own Session; there is no shared or
// module-level instance. All methods are safe for concurrent use.
//
// The session moves through four states: idle (no query), debouncing
// (query set, timer pending, Loading true), searching (timer fired,
// scoring in progress), and settled (Results current, Loading false).
// Scoring is synchronous CPU work, so the searching state is transient
// and never observable mid-pass.
type Session struct {
	cfg  Config
	diag diag.Recorder

	mu    sync.Mutex
	tasks []types.Task
	state State
	timer *time.Timer
	seq   uint64 // Generation counter; a stale timer callback compares and drops
}

// New creates a session with the given configuration. A nil cfg selects
// DefaultConfig.
func New(cfg *Config) *Session {
	config := DefaultConfig()
	if cfg != nil {
		config = *cfg
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if config.MaxSuggestions <= 0 {
		config.MaxSuggestions = searcher.DefaultMaxSuggestions
	}

	return &Session{
		cfg:  config,
		diag: diag.OrNop(config.Diagnostics),
	}
}

// SetTasks replaces the task snapshot subsequent searches scan. The
// slice is treated as immutable for the duration of any scoring pass;
// callers must hand over a snapshot they will not mutate.
func (s *Session) SetTasks(tasks []types.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

// Search requests a debounced search for query.
//
// Rapid successive calls collapse to the last one: each call cancels
// any pending timer, so only the final query within a debounce window
// is ever scored (trailing-edge debounce). Superseded calls are
// dropped, not queued. An empty or whitespace-only query clears the
// session synchronously instead of scheduling anything.
func (s *Session) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimerLocked()

	if strings.TrimSpace(query) == "" {
		s.resetLocked()
		return
	}

	s.state.Query = query
	s.state.Loading = true

	s.seq++
	seq := s.seq
	s.timer = time.AfterFunc(s.cfg.Debounce, func() {
		s.fire(seq, query)
	})
}

// SearchImmediate bypasses the debounce window and scores query
// synchronously, cancelling any pending debounced search.
func (s *Session) SearchImmediate(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimerLocked()
	s.seq++

	if strings.TrimSpace(query) == "" {
		s.resetLocked()
		return
	}

	s.state.Query = query
	s.runLocked(query)
}

// Clear resets the session to idle, discarding any pending debounce
// timer along with current results and suggestions.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimerLocked()
	s.seq++
	s.resetLocked()
}

// Close releases the session's timer. The session must not be used
// afterwards. Equivalent to Clear for state purposes; exists so owners
// have an explicit teardown hook, which matters because an abandoned
// pending timer would otherwise fire into dead state.
func (s *Session) Close() {
	s.Clear()
}

// State returns a copy of the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// fire runs a debounced scoring pass if it has not been superseded.
func (s *Session) fire(seq uint64, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer Search/SearchImmediate/Clear call bumped the generation
	// while this timer was pending; this pass must not run, or it
	// would overwrite newer state with stale results.
	if seq != s.seq {
		return
	}

	s.runLocked(query)
}

// runLocked performs one synchronous scoring pass. Caller holds s.mu.
func (s *Session) runLocked(query string) {
	s.diag.SearchStarted(query)
	start := time.Now()

	opts := searcher.Options{
		MinScore:       s.cfg.MinScore,
		MaxResults:     s.cfg.MaxResults,
		IncludeFuzzy:   s.cfg.IncludeFuzzy,
		FuzzyThreshold: s.cfg.FuzzyThreshold,
	}
	results := searcher.SearchTasks(s.tasks, query, &opts)

	var suggestions []string
	if s.cfg.EnableSuggestions {
		suggestions = searcher.Suggest(s.tasks, query, s.cfg.MaxSuggestions)
	}

	elapsed := time.Since(start)

	s.state.Results = results
	s.state.Suggestions = suggestions
	s.state.Loading = false
	s.state.SearchTime = elapsed
	s.state.LastQuery = query

	s.diag.SearchCompleted(query, len(results), elapsed)
}

// cancelTimerLocked stops any pending debounce timer. Caller holds s.mu.
func (s *Session) cancelTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// resetLocked returns the session to idle. Caller holds s.mu.
func (s *Session) resetLocked() {
	s.state = State{}
}
