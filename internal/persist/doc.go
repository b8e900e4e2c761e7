// Package persist handles durable storage of the StreamBox state snapshot.
//
// # Overview
//
// The three persisted slices (session, favorites, theme) are serialized
// together as one versioned JSON document under a single path, written as a
// whole-snapshot replacement on every (debounced) state change and read once
// at startup by the persistence gate.
//
// # Snapshot Layout
//
//	{
//	  "version": 1,
//	  "auth": {"isAuthenticated": true, "user": {...}},
//	  "favourites": [{...}, {...}],
//	  "theme": "dark"
//	}
//
// The movie and user entries reuse the API types' JSON encoding verbatim.
//
// # Redaction
//
// The session's Loading and Error fields are transient. RedactSession strips
// them on the way out and RestoreSession zeroes them on the way in, as one
// symmetric projection pair rather than field deletions scattered across
// call sites. A crash during a login attempt can therefore never persist a
// stuck spinner or a stale error banner.
//
// # Failure Policy
//
// Load degrades every failure (missing file, unreadable medium, corrupt
// JSON, unknown version) to the default snapshot, returning the cause for
// logging only. Save reports errors to its caller; the Writer logs and
// swallows them. Storage trouble reads as "no persisted data" and writes as
// "skipped", never as a crash.
//
// # Debounced Writing
//
// Writer serializes all disk writes through one goroutine-safe debounce:
// Enqueue replaces the pending snapshot and re-arms a short timer, so a
// burst of toggles produces one write carrying the final state. Because the
// pending snapshot is always the complete {auth, favourites, theme} triple,
// partial or torn documents cannot occur at this layer. Flush forces the
// pending write out at shutdown.
package persist
