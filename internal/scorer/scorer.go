package scorer

import (
	"strings"

	"github.com/dshills/tasksearch/internal/fuzzy"
	"github.com/dshills/tasksearch/internal/tokenizer"
	"github.com/dshills/tasksearch/pkg/types"
)

// Field weights for the coarse substring pass.
const (
	titleWeight       = 8.0
	descriptionWeight = 4.0
	projectWeight     = 2.0
)

// Bonus weights for the fine token-level pass.
const (
	titleContainBonus = 2.0
	descContainBonus  = 1.0
	titleFuzzyBonus   = 1.0
	descFuzzyBonus    = 0.5
)

// Flat bonuses independent of token overlap.
const (
	completedBonus = 0.5
	dueDateBonus   = 0.5
)

// Options configures the scorer's fine pass.
type Options struct {
	// IncludeFuzzy enables the edit-distance branch of the fine pass.
	// Mutual-containment bonuses apply regardless; only the Levenshtein
	// fallback is gated.
	IncludeFuzzy bool

	// FuzzyThreshold is the normalized similarity cutoff for the
	// edit-distance branch.
	FuzzyThreshold float64
}

// DefaultOptions returns the scorer defaults.
func DefaultOptions() Options {
	return Options{
		IncludeFuzzy:   true,
		FuzzyThreshold: fuzzy.DefaultThreshold,
	}
}

// Result is the outcome of scoring one task against one tokenized query.
type Result struct {
	Score         float64
	MatchedFields []string
}

// Score computes the relevance of task for the given query tokens.
//
// Two passes run in order. The coarse pass checks each query token for
// substring containment against the task's title (+8), description (+4),
// and project (+2), marking each field matched at most once. The fine
// pass runs only when the coarse pass produced signal: title and
// description are tokenized and each query token is compared to each
// candidate token; mutual containment in either direction earns +2
// (title) or +1 (description), and otherwise a fuzzy match earns +1
// (title) or +0.5 (description).
//
// Flat bonuses of +0.5 for a completed task and +0.5 for a present due
// date apply unconditionally, so a task with zero overlap still scores
// its flat-bonus total. The score is always >= 0 and MatchedFields never
// repeats a field.
func Score(task types.Task, queryTokens []string, opts Options) Result {
	var score float64
	var titleHit, descHit, projectHit bool

	titleLower := strings.ToLower(task.Title)
	descLower := strings.ToLower(task.Description)
	projectLower := strings.ToLower(task.Project)

	// Coarse pass: cheap field-level substring containment.
	for _, tok := range queryTokens {
		tok = strings.ToLower(tok)

		if strings.Contains(titleLower, tok) {
			score += titleWeight
			titleHit = true
		}
		if descLower != "" && strings.Contains(descLower, tok) {
			score += descriptionWeight
			descHit = true
		}
		if projectLower != "" && strings.Contains(projectLower, tok) {
			score += projectWeight
			projectHit = true
		}
	}

	// Fine pass: token-level precision, only when there is already some
	// signal so irrelevant tasks never pay the tokenization cost.
	if score > 0 {
		titleTokens := tokenizer.Tokenize(task.Title)
		descTokens := tokenizer.Tokenize(task.Description)

		for _, qt := range queryTokens {
			qt = strings.ToLower(qt)
			score += fineFieldScore(qt, titleTokens, titleContainBonus, titleFuzzyBonus, opts)
			score += fineFieldScore(qt, descTokens, descContainBonus, descFuzzyBonus, opts)
		}
	}

	// Flat bonuses.
	if task.Completed {
		score += completedBonus
	}
	if task.DueDate != nil {
		score += dueDateBonus
	}

	var fields []string
	if titleHit {
		fields = append(fields, types.FieldTitle)
	}
	if descHit {
		fields = append(fields, types.FieldDescription)
	}
	if projectHit {
		fields = append(fields, types.FieldProject)
	}

	return Result{Score: score, MatchedFields: fields}
}

// fineFieldScore credits one query token against one field's token set.
func fineFieldScore(queryToken string, candidates []string, containBonus, fuzzyBonus float64, opts Options) float64 {
	var score float64
	for _, cand := range candidates {
		switch {
		case strings.Contains(cand, queryToken) || strings.Contains(queryToken, cand):
			score += containBonus
		case opts.IncludeFuzzy && fuzzy.Match(queryToken, cand, opts.FuzzyThreshold):
			score += fuzzyBonus
		}
	}
	return score
}
