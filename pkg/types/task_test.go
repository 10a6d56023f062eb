package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTaskSearchable(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"active", Task{Title: "a"}, true},
		{"deleted", Task{Title: "a", Deleted: true}, false},
		{"abandoned", Task{Title: "a", Abandoned: true}, false},
		{"completed stays searchable", Task{Title: "a", Completed: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Searchable())
		})
	}
}

func TestTaskValidate(t *testing.T) {
	valid := Task{ID: uuid.New(), Title: "Learn React"}
	assert.NoError(t, valid.Validate())

	noTitle := Task{ID: uuid.New()}
	assert.ErrorIs(t, noTitle.Validate(), ErrEmptyTitle)

	noID := Task{Title: "No ID"}
	assert.ErrorIs(t, noID.Validate(), ErrInvalidTaskID)
}

func TestSearchMatchHasField(t *testing.T) {
	m := SearchMatch{MatchedFields: []string{FieldTitle, FieldProject}}

	assert.True(t, m.HasField(FieldTitle))
	assert.True(t, m.HasField(FieldProject))
	assert.False(t, m.HasField(FieldDescription))
}

func TestSearchMatchValidate(t *testing.T) {
	ok := SearchMatch{
		Task:          Task{ID: uuid.New(), Title: "Learn React"},
		Score:         10,
		MatchedFields: []string{FieldTitle},
	}
	assert.NoError(t, ok.Validate())

	negative := ok
	negative.Score = -1
	assert.ErrorIs(t, negative.Validate(), ErrNegativeScore)

	unknown := ok
	unknown.MatchedFields = []string{"priority"}
	assert.ErrorIs(t, unknown.Validate(), ErrUnknownField)

	dup := ok
	dup.MatchedFields = []string{FieldTitle, FieldTitle}
	assert.ErrorIs(t, dup.Validate(), ErrDuplicateField)
}
