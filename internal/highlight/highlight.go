// Package highlight wraps query-token occurrences in text with HTML
// highlight spans.
package highlight

import (
	"regexp"
	"strings"

	"github.com/dshills/tasksearch/internal/tokenizer"
)

// Markup convention consumed by UIs. Every match is wrapped as
// <mark class="search-highlight">original text</mark>; styling is the
// consumer's concern.
const (
	openMark  = `<mark class="search-highlight">`
	closeMark = `</mark>`
)

// Text returns text with every case-insensitive occurrence of each
// query token wrapped in a highlight span, preserving the original
// casing of the matched substring. An empty or whitespace-only query
// returns text unchanged.
//
// Tokens are applied sequentially in tokenizer emission order, which is
// deterministic for a given query. Overlapping tokens can produce
// nested spans; that is accepted behavior, consumers render it fine.
func Text(text, query string) string {
	if text == "" || strings.TrimSpace(query) == "" {
		return text
	}

	for _, tok := range tokenizer.Tokenize(query) {
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(tok))
		if err != nil {
			// QuoteMeta makes the pattern literal; compilation cannot
			// realistically fail, but a bad token must never take down
			// a render pass.
			continue
		}
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			return openMark + m + closeMark
		})
	}

	return text
}
