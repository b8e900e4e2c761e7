package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/garuka-satharasinghe/StreamBox/internal/auth"
	"github.com/garuka-satharasinghe/StreamBox/internal/state"
	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
)

// SnapshotVersion guards the on-disk layout. A snapshot written by a
// different layout hydrates as defaults rather than guessing.
const SnapshotVersion = 1

// Snapshot is the durable projection of the store: the redacted session,
// the full favorites sequence, and the theme, always written together as
// one document.
type Snapshot struct {
	Version    int          `json:"version"`
	Auth       AuthSnapshot `json:"auth"`
	Favourites []tmdb.Movie `json:"favourites"`
	Theme      string       `json:"theme"`
}

// AuthSnapshot is the redacted session slice. Loading and Error never reach
// disk, so a crash mid-login cannot resurrect a stale spinner or error.
type AuthSnapshot struct {
	IsAuthenticated bool       `json:"isAuthenticated"`
	User            *auth.User `json:"user"`
}

// Default returns the snapshot used when nothing (valid) is persisted.
func Default() Snapshot {
	return Snapshot{Version: SnapshotVersion, Theme: string(state.ThemeDark)}
}

// FromState projects a store snapshot into its durable form. The symmetric
// inverse is ToState; transient session fields are stripped here and
// restored as zero there.
func FromState(snap state.Snapshot) Snapshot {
	return Snapshot{
		Version:    SnapshotVersion,
		Auth:       RedactSession(snap.Session),
		Favourites: snap.Favorites,
		Theme:      string(snap.Theme),
	}
}

// ToState converts a durable snapshot back into store slices.
func (s Snapshot) ToState() (state.SessionState, []tmdb.Movie, state.ThemeMode) {
	return RestoreSession(s.Auth), s.Favourites, state.ThemeMode(s.Theme)
}

// RedactSession strips the transient fields from a session slice before
// serialization.
func RedactSession(sess state.SessionState) AuthSnapshot {
	return AuthSnapshot{
		IsAuthenticated: sess.Authenticated && sess.User != nil,
		User:            sess.User,
	}
}

// RestoreSession rebuilds a session slice from its redacted form. Loading
// and Error always come back as false and empty.
func RestoreSession(a AuthSnapshot) state.SessionState {
	return state.SessionState{
		Authenticated: a.User != nil,
		User:          a.User,
	}
}

// Load reads the snapshot from path. Every failure mode (missing file,
// unreadable medium, corrupt JSON, unknown version) degrades to Default with
// the error returned for logging; callers treat it as "no persisted data",
// never as fatal.
func Load(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Default(), fmt.Errorf("parse snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return Default(), fmt.Errorf("snapshot version %d not supported", snap.Version)
	}
	if snap.Theme != string(state.ThemeLight) {
		snap.Theme = string(state.ThemeDark)
	}
	return snap, nil
}

// Save writes the snapshot to path, creating parent directories as needed.
// The write replaces the whole document; partial updates are impossible by
// construction.
func Save(path string, snap Snapshot) error {
	snap.Version = SnapshotVersion

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	encoded, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
