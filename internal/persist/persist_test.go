package persist

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/garuka-satharasinghe/StreamBox/internal/auth"
	"github.com/garuka-satharasinghe/StreamBox/internal/state"
	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
)

func statePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state.json")
}

func TestRoundTrip(t *testing.T) {
	path := statePath(t)

	store := state.NewStore()
	store.CompleteAuth(&auth.User{ID: 1, Username: "emilys", Token: "jwt"}, nil)
	store.AddFavorite(tmdb.Movie{ID: 10, Title: "Alien"})
	store.AddFavorite(tmdb.Movie{ID: 20, Title: "Blade Runner"})
	store.SetTheme(state.ThemeLight)

	if err := Save(path, FromState(store.Snapshot())); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Fresh process: load and hydrate a brand new store.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fresh := state.NewStore()
	fresh.Hydrate(loaded.ToState())

	gotFavs := fresh.Favorites()
	if len(gotFavs) != 2 || gotFavs[0].ID != 10 || gotFavs[1].ID != 20 {
		t.Fatalf("favorites after rehydrate = %#v, want same ids in same order", gotFavs)
	}
	if fresh.Theme() != state.ThemeLight {
		t.Fatalf("theme after rehydrate = %q, want light", fresh.Theme())
	}
	sess := fresh.Session()
	if !sess.Authenticated || sess.User == nil || sess.User.Username != "emilys" {
		t.Fatalf("session after rehydrate = %#v, want authenticated emilys", sess)
	}
}

func TestTransientsNeverPersist(t *testing.T) {
	path := statePath(t)

	sess := state.SessionState{
		Authenticated: true,
		User:          &auth.User{ID: 1, Username: "emilys"},
		Loading:       true,
		Error:         "mid-flight crash residue",
	}
	snap := FromState(state.Snapshot{Session: sess, Theme: state.ThemeDark})
	if err := Save(path, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	for _, needle := range []string{"loading", "error", "crash residue"} {
		if strings.Contains(string(raw), needle) {
			t.Fatalf("persisted document contains transient field %q: %s", needle, raw)
		}
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	restored, _, _ := loaded.ToState()
	if restored.Loading || restored.Error != "" {
		t.Fatalf("restored session = %#v, want transients reset", restored)
	}
	if !restored.Authenticated || restored.User == nil {
		t.Fatalf("restored session = %#v, want user intact", restored)
	}
}

func TestRedactionIsSymmetric(t *testing.T) {
	user := &auth.User{ID: 3, Username: "casey"}
	in := state.SessionState{Authenticated: true, User: user, Loading: true, Error: "x"}

	out := RestoreSession(RedactSession(in))
	want := state.SessionState{Authenticated: true, User: user}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("redact/restore = %#v, want %#v", out, want)
	}

	// isAuthenticated without a user record must not restore as signed in.
	if got := RestoreSession(AuthSnapshot{IsAuthenticated: true}); got.Authenticated {
		t.Fatalf("restore of userless auth = %#v, want signed out", got)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	snap, err := Load(filepath.Join(t.TempDir(), "nope", "state.json"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if !reflect.DeepEqual(snap, Default()) {
		t.Fatalf("snapshot = %#v, want defaults", snap)
	}
}

func TestLoadCorruptFileDegradesToDefaults(t *testing.T) {
	path := statePath(t)
	if err := os.WriteFile(path, []byte(`{"version":1,"auth":`), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	snap, err := Load(path)
	if err == nil {
		t.Fatal("corrupt file should report a cause for logging")
	}
	if !reflect.DeepEqual(snap, Default()) {
		t.Fatalf("snapshot = %#v, want defaults despite corruption", snap)
	}
}

func TestLoadUnknownVersionDegradesToDefaults(t *testing.T) {
	path := statePath(t)
	if err := os.WriteFile(path, []byte(`{"version":99,"theme":"light"}`), 0o600); err != nil {
		t.Fatalf("seed future version: %v", err)
	}

	snap, err := Load(path)
	if err == nil {
		t.Fatal("unknown version should report a cause for logging")
	}
	if snap.Theme != string(state.ThemeDark) {
		t.Fatalf("theme = %q, want dark default", snap.Theme)
	}
}

func TestWriterCoalescesBursts(t *testing.T) {
	path := statePath(t)
	w := NewWriter(path, 20*time.Millisecond, nil)

	store := state.NewStore()
	store.OnChange(w.Enqueue)

	for i := 1; i <= 5; i++ {
		store.AddFavorite(tmdb.Movie{ID: i})
	}

	// Before the delay elapses nothing is on disk yet.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("snapshot written before debounce elapsed (stat err = %v)", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if snap, err := Load(path); err == nil && len(snap.Favourites) == 5 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("debounced write never landed with final state")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWriterFlushWritesPendingImmediately(t *testing.T) {
	path := statePath(t)
	w := NewWriter(path, time.Hour, nil) // debounce long enough to never fire

	store := state.NewStore()
	store.OnChange(w.Enqueue)
	store.ToggleTheme()

	w.Flush()

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load after flush: %v", err)
	}
	if snap.Theme != string(state.ThemeLight) {
		t.Fatalf("theme = %q, want light", snap.Theme)
	}

	// Flush with nothing pending is a no-op.
	w.Flush()
}
