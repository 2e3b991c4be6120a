// Package entry processes a single letter insertion or deletion against
// the full puzzle state, producing a new immutable state snapshot plus
// a list of declarative actions for the host to execute.
//
// What:
//
//   - Processor is the single entry point mutating letters: it enforces
//     the lock rules (revealed and validated-correct cells are immutable
//     to typing), clears stale validation marks on edit, applies the
//     auto-advance policy inside a word, and signals clue-level and
//     puzzle-level follow-ups through Actions.
//   - Process never performs side effects: it returns a deep-copied
//     State, and the Actions list tells the host what to do next
//     (advance to the next clue, run the completion check, surface a
//     mismatch). The host decides how and when.
//   - ValidateCell and RevealCell are the pure overlay transitions a
//     "check"/"reveal" control needs, so hosts do not reimplement the
//     lock semantics.
//
// Why:
//
//   - Keeping every transition a value-in/value-out function keeps
//     timers, rendering and persistence out of the core; the host
//     subscribes to outputs instead of being called back.
//
// Failure policy: a blocked edit (locked cell, blocked cell, no
// deletion target) returns ok=false with no state change, never an
// error.
package entry
