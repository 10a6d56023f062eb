// Package tokenizer turns free text into normalized searchable tokens.
//
// The tokenizer handles three script classes, each extracted as maximal
// runs: CJK ideographs (atomized per character, plus the whole run when
// longer than one character), Latin words (case-folded to lower case),
// and digit runs (kept literal). Everything else (whitespace,
// punctuation, other scripts) separates runs and produces no tokens.
//
// CJK atomization is what makes single-character Chinese queries useful:
// a title containing 蜗牛 is findable by 蜗, by 牛, and by 蜗牛.
//
// The returned slice is deduplicated and its order is deterministic for
// identical input; matching never depends on the order, but suggestion
// extraction does, so order stability matters.
package tokenizer
