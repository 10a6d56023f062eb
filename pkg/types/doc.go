// Package types defines the shared data model for the task search core.
//
// The package is intentionally small: a Task record (the unit the search
// core consumes, read-only), a SearchMatch (the unit it produces, always
// ephemeral), and the validation errors for both.
//
// # Task Contract
//
// The search core reads exactly these Task fields and no others:
//
//	Title        required, always present
//	Description  optional, empty string when absent
//	Project      optional, empty string when absent
//	Completed    flat +0.5 score bonus when true
//	Deleted      excluded from all search output when true
//	Abandoned    excluded from all search output when true
//	DueDate      flat +0.5 score bonus when non-nil
//
// A task missing its optional fields is well-formed and simply never
// matches on them. A task missing Title violates the contract; callers
// own that validation (see Task.Validate), the scorer does not re-check.
//
// # Match Lifecycle
//
// SearchMatch values are derived data: created fresh on every search,
// never mutated, never stored. Consumers must not hold them across
// searches; a newer result list always supersedes an older one.
package types
