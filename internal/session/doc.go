// Package session owns debounce timing and result state for one
// interactive search consumer.
//
// # Lifecycle
//
//	s := session.New(nil)
//	s.SetTasks(tasks)
//
//	s.Search("pro")      // debounced, 300ms trailing edge
//	s.Search("proj")     // cancels the previous call
//	s.Search("project")  // only this one ever scores
//
//	state := s.State()
//	stats := s.Stats()
//
//	s.Close()
//
// # Debounce Semantics
//
// Search uses trailing-edge debounce: each call cancels the pending
// timer and schedules a fresh one, so a burst of keystrokes produces
// exactly one scoring pass, for the last query. Cancellation on
// supersession is total; a superseded pass never runs, which is a
// correctness requirement, not an optimization, because a stale pass
// would overwrite newer results.
//
// SearchImmediate and Clear also cancel any pending timer.
// SearchImmediate scores synchronously; Clear returns to idle. There is
// no cancellation of an in-progress scoring pass because scoring is
// synchronous CPU work with no suspension point.
//
// # Ordering Guarantee
//
// State always reflects the most recently settled query. The generation
// counter guarantees this even when a timer callback races a new call:
// the callback re-checks the generation under the session lock and
// drops itself when stale.
//
// # Derived Accessors
//
// Stats, ScoreBuckets, and FieldBuckets are pure functions of the
// current state computed on demand. Score bands are excellent (>= 15),
// good (>= 8), fair (>= 3), and poor (below 3).
package session
