package scorer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/tasksearch/internal/tokenizer"
	"github.com/dshills/tasksearch/pkg/types"
)

func TestScoreTitleSubstring(t *testing.T) {
	task := types.Task{Title: "Learn React"}
	tokens := tokenizer.Tokenize("react")

	result := Score(task, tokens, DefaultOptions())

	// Coarse title hit (+8) plus fine mutual containment (+2).
	assert.Equal(t, 10.0, result.Score)
	assert.Equal(t, []string{types.FieldTitle}, result.MatchedFields)
}

func TestScoreCJKQuery(t *testing.T) {
	task := types.Task{
		Title:       "完成项目文档",
		Description: "编写项目的详细文档",
	}
	tokens := tokenizer.Tokenize("项目")

	result := Score(task, tokens, DefaultOptions())

	// Three query tokens (项, 目, 项目) each hit title (+8) and
	// description (+4) in the coarse pass: 36. The fine pass adds 14
	// from title containments and 7 from description containments.
	assert.Equal(t, 57.0, result.Score)
	assert.Equal(t, []string{types.FieldTitle, types.FieldDescription}, result.MatchedFields)
}

func TestScoreProjectField(t *testing.T) {
	task := types.Task{
		Title:   "Fix login page",
		Project: "website",
	}
	tokens := tokenizer.Tokenize("website")

	result := Score(task, tokens, DefaultOptions())

	assert.Equal(t, []string{types.FieldProject}, result.MatchedFields)
	assert.GreaterOrEqual(t, result.Score, 2.0)
}

func TestScoreNoOverlap(t *testing.T) {
	task := types.Task{Title: "Water the plants"}
	tokens := tokenizer.Tokenize("quarterly report")

	result := Score(task, tokens, DefaultOptions())

	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.MatchedFields)
}

func TestScoreFlatBonuses(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task types.Task
		want float64
	}{
		{
			name: "completed with no overlap",
			task: types.Task{Title: "Water the plants", Completed: true},
			want: 0.5,
		},
		{
			name: "due date with no overlap",
			task: types.Task{Title: "Water the plants", DueDate: &due},
			want: 0.5,
		},
		{
			name: "both bonuses stack",
			task: types.Task{Title: "Water the plants", Completed: true, DueDate: &due},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.task, tokenizer.Tokenize("unrelated"), DefaultOptions())
			assert.Equal(t, tt.want, result.Score)
			assert.Empty(t, result.MatchedFields)
		})
	}
}

func TestScoreMatchedFieldsNeverRepeat(t *testing.T) {
	// Every query token hits the title; the field must appear once.
	task := types.Task{Title: "deploy deploy deploy server"}
	tokens := tokenizer.Tokenize("deploy server")

	result := Score(task, tokens, DefaultOptions())

	assert.Equal(t, []string{types.FieldTitle}, result.MatchedFields)
}

func TestScoreEmptyFieldsTolerated(t *testing.T) {
	task := types.Task{Title: "Ship release"}
	tokens := tokenizer.Tokenize("ship")

	result := Score(task, tokens, DefaultOptions())

	assert.Greater(t, result.Score, 0.0)
	assert.Equal(t, []string{types.FieldTitle}, result.MatchedFields)
}

func TestScoreFuzzyGating(t *testing.T) {
	// "colour" is one edit from the title token "color"; only the
	// fuzzy branch can credit it. "color" itself provides the coarse
	// signal that lets the fine pass run.
	task := types.Task{Title: "color palette"}
	tokens := []string{"color", "colour"}

	withFuzzy := Score(task, tokens, DefaultOptions())
	withoutFuzzy := Score(task, tokens, Options{IncludeFuzzy: false, FuzzyThreshold: 0.7})

	assert.Equal(t, 11.0, withFuzzy.Score)
	assert.Equal(t, 10.0, withoutFuzzy.Score)
}

func TestScoreEmptyQuery(t *testing.T) {
	task := types.Task{Title: "Anything"}

	result := Score(task, nil, DefaultOptions())

	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.MatchedFields)
}
