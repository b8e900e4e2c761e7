// Package app provides the orchestration layer for the StreamBox client.
//
// # Overview
//
// This package wires together configuration, the remote clients, the state
// container, persistence, and the UI. It is the composition root: every
// dependency is initialized and connected here, then the TUI runs until the
// user quits or the context is cancelled.
//
// # Startup Sequence
//
//  1. Load configuration from ~/.config/streambox/config.toml (or -config)
//  2. Build the file-backed zap logger (never stdout/stderr; the TUI owns
//     the terminal)
//  3. Initialize the catalog (TMDB) and auth (dummyjson) HTTP clients
//  4. Create the state.Store
//  5. Persistence gate: read the durable snapshot and hydrate the store,
//     under a hard 10-second ceiling
//  6. Register the debounced persistence writer as the store's change
//     listener
//  7. Start the TUI and block
//
// # Persistence Gate
//
// The UI is not constructed until hydration resolves. Three outcomes:
//
//   - Snapshot read: session, favorites, and theme are applied; the
//     session's transient Loading/Error fields come back reset
//   - Read failed (missing, corrupt, wrong version): defaults are applied
//     and the cause is logged; an absent session is "signed out", never an
//     error the user sees
//   - Ceiling expired: the store keeps its initial state and the app
//     proceeds; there is no retry
//
// The ceiling protects startup against a corrupted or unavailable storage
// medium. Ten seconds is far beyond any healthy local read.
//
// # Shutdown
//
// On exit the persistence writer is flushed so a state change immediately
// before quitting is not lost to the debounce window.
//
// # Error Handling
//
// Fatal (returned from Run): unreadable/malformed config, invalid endpoint
// URLs. Recoverable (logged, app continues): logger setup failure (degrades
// to no-op), snapshot read failure, every remote-call failure thereafter.
package app
