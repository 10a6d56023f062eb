// Package scorer computes per-task relevance scores for a tokenized
// query.
//
// # Two-Pass Design
//
// Scoring runs in two passes:
//
//   - Coarse pass: substring containment of each query token against the
//     raw title, description, and project strings. Field weights are
//     title +8, description +4, project +2, and each field is marked
//     matched at most once regardless of how many tokens hit it.
//   - Fine pass: gated on the coarse pass producing any score at all.
//     Title and description are tokenized and every (query token,
//     candidate token) pair is credited: mutual containment earns the
//     containment bonus, otherwise normalized-Levenshtein similarity at
//     or above the threshold earns the smaller fuzzy bonus.
//
// The coarse pass cheaply catches exact and near-exact hits; the fine
// pass adds word-boundary and typo tolerance only where there is
// already signal, so irrelevant tasks are never tokenized.
//
// # Flat Bonuses
//
// Completed tasks and tasks carrying a due date each earn +0.5
// regardless of token overlap. A task with no overlap therefore scores
// exactly 0, 0.5, or 1.0, and is filtered out by any minimum score of 1
// or more.
//
// # Score Interpretation
//
// Scores are open-ended, not normalized:
//
//	>= 15     excellent: multiple fields or many token hits
//	8 to 15   good: at least a coarse title hit
//	3 to 8    fair: description/project hits or fine-pass credit only
//	< 3       poor: marginal or flat-bonus-only
package scorer
