package types

// Matched field names as they appear in SearchMatch.MatchedFields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldProject     = "project"
)

// Highlights holds HTML renderings of a match's title and description
// with query-token occurrences wrapped in
// <mark class="search-highlight">…</mark> spans.
type Highlights struct {
	Title       string
	Description string // Empty when the task has no description
}

// SearchMatch pairs one task with its relevance score for one query.
//
// Matches are created fresh on every search invocation, never mutated
// afterwards, and never persisted; a new search supersedes and discards
// the previous match list wholesale.
type SearchMatch struct {
	Task Task

	// Score is a non-negative relevance score; fractional values are
	// normal (fuzzy and flat bonuses contribute half points).
	Score float64

	// MatchedFields lists which of title/description/project matched,
	// without duplicates, in field order.
	MatchedFields []string

	Highlights Highlights
}

// HasField reports whether the named field contributed to this match.
func (m *SearchMatch) HasField(field string) bool {
	for _, f := range m.MatchedFields {
		if f == field {
			return true
		}
	}
	return false
}

// Validate checks if the search match is valid
func (m *SearchMatch) Validate() error {
	if m.Score < 0 {
		return ErrNegativeScore
	}

	seen := make(map[string]bool, len(m.MatchedFields))
	for _, f := range m.MatchedFields {
		if f != FieldTitle && f != FieldDescription && f != FieldProject {
			return ErrUnknownField
		}
		if seen[f] {
			return ErrDuplicateField
		}
		seen[f] = true
	}

	return nil
}
