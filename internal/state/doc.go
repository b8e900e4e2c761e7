// Package state provides the process-wide state container for the StreamBox
// client.
//
// # Overview
//
// The Store holds the three persisted slices of application state: the
// authentication session, the favorites sequence, and the theme mode. It is
// constructed once at launch and lives for the process lifetime. Each slice
// is owned exclusively by the store; the UI and the persistence layer only
// ever see defensive copies.
//
// # Slices
//
// Session:
//   - Authenticated/User with the invariant Authenticated == (User != nil)
//   - Loading/Error are transient flags around in-flight auth attempts;
//     they reset on rehydration and are excluded from persisted snapshots
//
// Favorites:
//   - Ordered sequence of movies, unique by ID, insertion order preserved
//   - Add is idempotent, Remove tolerates absent IDs, Toggle is one atomic
//     transition
//
// Theme:
//   - dark or light, default dark
//
// # Concurrency Model
//
// Store mutations are synchronous and run to completion under a
// readers-writer lock. Bubble Tea delivers messages on one loop, but
// commands (network fetches, timers) resolve on their own goroutines, so
// the lock is load-bearing, not ceremony. Snapshots clone the favorites
// slice and the user record so no caller can mutate shared state.
//
// # Change Notification
//
// Every mutation publishes a Snapshot to the listener registered with
// OnChange. The persistence writer subscribes there and debounces writes;
// the store itself knows nothing about storage. Hydrate (startup restore)
// deliberately does not notify, since echoing the freshly read state back
// to disk would be a no-op write.
//
// # Testing Considerations
//
// NewStore returns a ready-to-use container; no teardown is needed. The
// change listener can be replaced with a channel-backed recorder to assert
// on published snapshots.
package state
