package tokenizer

// CJK ideograph range covered by the tokenizer (CJK Unified Ideographs).
const (
	cjkLo rune = 0x4E00
	cjkHi rune = 0x9FFF
)

func isCJK(r rune) bool {
	return r >= cjkLo && r <= cjkHi
}

func isLatin(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokenize splits free text into a deduplicated, deterministically
// ordered slice of searchable tokens.
//
// Three scans run over the text, matching maximal runs:
//
//  1. CJK runs: every individual character becomes a token, and the
//     whole run is added as one more token when it is longer than a
//     single character ("蜗牛" yields 蜗, 牛, 蜗牛).
//  2. Latin alphabetic runs: lower-cased ("React" yields "react").
//  3. Digit runs: kept as literal digit strings.
//
// Tokens are emitted in scan order with duplicates dropped on first
// occurrence, so identical input always yields the identical slice.
// Empty or whitespace-only input yields no tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	seen := make(map[string]struct{})

	push := func(tok string) {
		if tok == "" {
			return
		}
		if _, dup := seen[tok]; dup {
			return
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	runes := []rune(text)

	// Pass 1: CJK runs, atomized per character plus the full run.
	scanRuns(runes, isCJK, func(run []rune) {
		for _, r := range run {
			push(string(r))
		}
		if len(run) > 1 {
			push(string(run))
		}
	})

	// Pass 2: Latin runs, case-folded.
	scanRuns(runes, isLatin, func(run []rune) {
		push(lowerASCII(run))
	})

	// Pass 3: digit runs, literal.
	scanRuns(runes, isDigit, func(run []rune) {
		push(string(run))
	})

	return tokens
}

// ToSet returns the token slice as a membership set.
func ToSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// scanRuns calls emit for every maximal run of runes satisfying match.
func scanRuns(runes []rune, match func(rune) bool, emit func([]rune)) {
	start := -1
	for i, r := range runes {
		if match(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			emit(runes[start:i])
			start = -1
		}
	}
	if start >= 0 {
		emit(runes[start:])
	}
}

// lowerASCII lower-cases a run of ASCII letters without allocating an
// intermediate string.
func lowerASCII(run []rune) string {
	out := make([]rune, len(run))
	for i, r := range run {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out[i] = r
	}
	return string(out)
}
