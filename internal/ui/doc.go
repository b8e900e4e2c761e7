// Package ui provides the Bubble Tea terminal interface for StreamBox.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. All remote work (catalog fetches,
// authentication, search) runs as tea.Cmd functions that resolve into typed
// messages; the model itself never blocks. Shared state lives in the
// state.Store, which the model reads on every frame, so the rendered session,
// favorites, and theme are always whatever the store currently holds.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Model definition, Update routing, View dispatch, and Run
//   - commands.go: Message types and the tea.Cmd constructors that produce them
//   - keys.go: Key bindings
//   - theme.go: Dark and light palettes and the Lipgloss style set
//   - login.go / register.go: Authentication forms with field validation
//   - home.go: Browse rows, search input, and the debounce wiring
//   - favorites.go / detail.go / profile.go: The remaining views
//
// # Views
//
//   - Login and Register: Text-input forms. Validation errors render locally;
//     request errors come back through the session store.
//   - Home: Trending and Popular rows, replaced by search results while a
//     query is active. The search debounce is a tea.Tick carrying a ticket
//     from the search coordinator; stale tickets are ignored on arrival.
//   - Favorites: The persisted favorites list in insertion order.
//   - Detail: One movie, opened instantly from the listing record and
//     refreshed in the background with the full catalog record.
//   - Profile: Account fields, session expiry, sign out.
//
// # Theming
//
// ctrl+t flips the store's theme mode and rebuilds the style set. The styles
// live on the model, not in globals, so the flip takes effect on the next
// frame without touching any view code.
package ui
