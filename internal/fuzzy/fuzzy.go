// Package fuzzy implements approximate string matching on top of
// Levenshtein edit distance.
package fuzzy

import "strings"

// DefaultThreshold is the normalized similarity a pair of strings must
// reach to count as a fuzzy match.
const DefaultThreshold = 0.7

// Match reports whether query and target are similar enough to match.
//
// Matching is case-insensitive. A lower-cased target containing the
// lower-cased query as a substring matches immediately; otherwise the
// normalized similarity
//
//	1 - distance(query, target) / max(len(query), len(target))
//
// must reach threshold. Empty query or empty target never match.
func Match(query, target string, threshold float64) bool {
	if query == "" || target == "" {
		return false
	}

	q := strings.ToLower(query)
	t := strings.ToLower(target)

	if strings.Contains(t, q) {
		return true
	}

	qr := []rune(q)
	tr := []rune(t)
	maxLen := len(qr)
	if len(tr) > maxLen {
		maxLen = len(tr)
	}

	similarity := 1 - float64(Distance(q, t))/float64(maxLen)
	return similarity >= threshold
}

// Distance computes the Levenshtein edit distance between two strings,
// counted in runes, with insertion, deletion, and substitution each
// costing 1.
func Distance(str1, str2 string) int {
	a := []rune(str1)
	b := []rune(str2)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Full (len(b)+1) x (len(a)+1) DP matrix.
	matrix := make([][]int, len(b)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(a)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(a); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(b); i++ {
		for j := 1; j <= len(a); j++ {
			cost := 1
			if b[i-1] == a[j-1] {
				cost = 0
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(b)][len(a)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
