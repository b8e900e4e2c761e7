package state

import (
	"sync"

	"github.com/garuka-satharasinghe/StreamBox/internal/auth"
	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
)

// ThemeMode is the two-valued display mode.
type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// SessionState holds the authentication slice. Invariant at every observable
// point: Authenticated == (User != nil). Loading and Error are transient and
// never survive rehydration.
type SessionState struct {
	Authenticated bool
	User          *auth.User
	Loading       bool
	Error         string
}

// Snapshot is an immutable view of the whole store at a point in time.
type Snapshot struct {
	Session   SessionState
	Favorites []tmdb.Movie
	Theme     ThemeMode
}

// Store is the single process-wide state container. It owns the session,
// favorites, and theme slices exclusively; no caller mutates them directly.
// Bubble Tea commands resolve on their own goroutines, so access is guarded
// by a readers-writer lock and all reads return defensive copies.
type Store struct {
	mu        sync.RWMutex
	session   SessionState
	favorites []tmdb.Movie
	theme     ThemeMode
	onChange  func(Snapshot)
}

// NewStore returns a store holding the initial state: signed out, no
// favorites, dark theme.
func NewStore() *Store {
	return &Store{theme: ThemeDark}
}

// OnChange registers the listener invoked with a fresh snapshot after every
// state change. Register once at startup, before the store is shared; the
// listener is read without locking afterwards.
func (s *Store) OnChange(fn func(Snapshot)) {
	s.onChange = fn
}

// Snapshot returns a defensive copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Hydrate replaces all three slices at once from a persisted snapshot.
// Used only by the startup gate, before the UI runs; it does not notify the
// change listener since writing the restored state straight back would be a
// no-op. Transient session fields are reset regardless of input.
func (s *Store) Hydrate(session SessionState, favorites []tmdb.Movie, theme ThemeMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.Loading = false
	session.Error = ""
	session.Authenticated = session.User != nil
	s.session = cloneSession(session)
	s.favorites = cloneMovies(favorites)
	if theme == ThemeLight {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Session:   cloneSession(s.session),
		Favorites: cloneMovies(s.favorites),
		Theme:     s.theme,
	}
}

// publish hands a snapshot to the change listener outside the lock.
func (s *Store) publish(snap Snapshot) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}

func cloneSession(in SessionState) SessionState {
	out := in
	if in.User != nil {
		user := *in.User
		out.User = &user
	}
	return out
}

func cloneMovies(in []tmdb.Movie) []tmdb.Movie {
	if len(in) == 0 {
		return nil
	}
	dup := make([]tmdb.Movie, len(in))
	copy(dup, in)
	return dup
}
