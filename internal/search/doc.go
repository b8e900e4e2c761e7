// Package search coordinates debounced movie search with a staleness guard.
//
// # Overview
//
// The Coordinator sits between raw keystroke input and the catalog client.
// It owns the transient query state (never persisted): the current query,
// the searching flag, and the authoritative result list.
//
// # Debounce Protocol
//
// Timing lives with the caller so the coordinator stays deterministic under
// test. The protocol per keystroke:
//
//  1. SetQuery(text) mints a ticket. If arm is true, start a 500ms timer
//     carrying the ticket (tea.Tick in the TUI). Blank input instead clears
//     results immediately with no timer and no searching transition.
//  2. When a timer elapses, Fire(ticket). A stale ticket means the user
//     kept typing and the firing is dropped. A current ticket returns the
//     trimmed query and flips searching on; the caller issues the request.
//  3. Deliver(ticket, results) resolves the request. Only a response whose
//     ticket still matches the latest edit is accepted; superseded
//     responses are discarded outright.
//
// # Staleness Guard
//
// Between issuing a request and its resolution the event loop keeps
// processing keystrokes, so resumption order is not initiation order: the
// response for "b" may arrive after the response for "ba". The monotonic
// ticket makes the outcome independent of arrival order, with no transport
// cancellation needed. Discarding a stale response is not an error.
//
// # Result Cap
//
// GridLimit (6) is the on-screen grid's display cap. Views truncate at
// render time; the coordinator retains the full result set.
package search
