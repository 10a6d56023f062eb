package session

import (
	"github.com/dshills/tasksearch/pkg/types"
)

// Score bucket thresholds.
const (
	excellentScore = 15.0
	goodScore      = 8.0
	fairScore      = 3.0
)

// Stats summarizes the most recently settled search. Derived from
// State on demand, never cached beyond it.
type Stats struct {
	Total      int
	Completed  int
	Incomplete int

	AverageScore float64
	TopScore     float64

	SearchTime float64 // Milliseconds
}

// ScoreBuckets groups matches by score band.
type ScoreBuckets struct {
	Excellent []types.SearchMatch // score >= 15
	Good      []types.SearchMatch // 8 <= score < 15
	Fair      []types.SearchMatch // 3 <= score < 8
	Poor      []types.SearchMatch // score < 3
}

// FieldBuckets groups matches by which field matched. A match that hit
// several fields appears in each corresponding bucket.
type FieldBuckets struct {
	Title       []types.SearchMatch
	Description []types.SearchMatch
	Project     []types.SearchMatch
}

// Stats computes summary statistics for the current results.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		Total:      len(s.state.Results),
		SearchTime: float64(s.state.SearchTime.Microseconds()) / 1000,
	}

	var sum float64
	for _, m := range s.state.Results {
		if m.Task.Completed {
			stats.Completed++
		} else {
			stats.Incomplete++
		}
		sum += m.Score
		if m.Score > stats.TopScore {
			stats.TopScore = m.Score
		}
	}

	if stats.Total > 0 {
		stats.AverageScore = sum / float64(stats.Total)
	}

	return stats
}

// ScoreBuckets groups the current results into relevance bands.
func (s *Session) ScoreBuckets() ScoreBuckets {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buckets ScoreBuckets
	for _, m := range s.state.Results {
		switch {
		case m.Score >= excellentScore:
			buckets.Excellent = append(buckets.Excellent, m)
		case m.Score >= goodScore:
			buckets.Good = append(buckets.Good, m)
		case m.Score >= fairScore:
			buckets.Fair = append(buckets.Fair, m)
		default:
			buckets.Poor = append(buckets.Poor, m)
		}
	}
	return buckets
}

// FieldBuckets groups the current results by matched field.
func (s *Session) FieldBuckets() FieldBuckets {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buckets FieldBuckets
	for _, m := range s.state.Results {
		if m.HasField(types.FieldTitle) {
			buckets.Title = append(buckets.Title, m)
		}
		if m.HasField(types.FieldDescription) {
			buckets.Description = append(buckets.Description, m)
		}
		if m.HasField(types.FieldProject) {
			buckets.Project = append(buckets.Project, m)
		}
	}
	return buckets
}
