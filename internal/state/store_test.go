package state

import (
	"testing"

	"github.com/garuka-satharasinghe/StreamBox/internal/auth"
	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
)

func TestSnapshotIsDefensiveCopy(t *testing.T) {
	s := NewStore()
	s.AddFavorite(tmdb.Movie{ID: 1, Title: "Alien"})
	s.CompleteAuth(&auth.User{ID: 7, Username: "emilys"}, nil)

	snap := s.Snapshot()
	snap.Favorites[0].ID = 999
	snap.Session.User.Username = "mallory"

	fresh := s.Snapshot()
	if fresh.Favorites[0].ID != 1 {
		t.Fatalf("favorites leaked through snapshot: %#v", fresh.Favorites)
	}
	if fresh.Session.User.Username != "emilys" {
		t.Fatalf("user leaked through snapshot: %#v", fresh.Session.User)
	}
}

func TestOnChangePublishesWholeSnapshot(t *testing.T) {
	s := NewStore()
	var published []Snapshot
	s.OnChange(func(snap Snapshot) { published = append(published, snap) })

	s.AddFavorite(tmdb.Movie{ID: 1})
	s.ToggleTheme()
	s.AddFavorite(tmdb.Movie{ID: 1}) // idempotent no-op must not publish

	if len(published) != 2 {
		t.Fatalf("published %d snapshots, want 2", len(published))
	}
	last := published[len(published)-1]
	if len(last.Favorites) != 1 || last.Theme != ThemeLight {
		t.Fatalf("last snapshot = %#v, want favorites and theme together", last)
	}
}

func TestThemeToggleAndSet(t *testing.T) {
	s := NewStore()
	if s.Theme() != ThemeDark {
		t.Fatalf("default theme = %q, want dark", s.Theme())
	}
	s.ToggleTheme()
	if s.Theme() != ThemeLight {
		t.Fatalf("theme after toggle = %q, want light", s.Theme())
	}
	s.ToggleTheme()
	if s.Theme() != ThemeDark {
		t.Fatalf("theme after second toggle = %q, want dark", s.Theme())
	}

	s.SetTheme(ThemeLight)
	if s.Theme() != ThemeLight {
		t.Fatalf("SetTheme(light) left %q", s.Theme())
	}
	s.SetTheme("mauve")
	if s.Theme() != ThemeDark {
		t.Fatalf("SetTheme with unknown mode = %q, want dark fallback", s.Theme())
	}
}

func TestHydrateResetsTransientsAndRepairsInvariant(t *testing.T) {
	s := NewStore()
	s.Hydrate(
		SessionState{User: &auth.User{ID: 1, Username: "emilys"}, Loading: true, Error: "stale crash residue"},
		[]tmdb.Movie{{ID: 2, Title: "Arrival"}},
		ThemeLight,
	)

	sess := s.Session()
	if !sess.Authenticated || sess.User == nil {
		t.Fatalf("session = %#v, want authenticated with user", sess)
	}
	if sess.Loading || sess.Error != "" {
		t.Fatalf("transients survived hydration: %#v", sess)
	}
	if s.Theme() != ThemeLight || s.FavoriteCount() != 1 {
		t.Fatalf("hydration dropped favorites or theme: theme=%q count=%d", s.Theme(), s.FavoriteCount())
	}

	// Hydrating without a user must come up signed out.
	s.Hydrate(SessionState{Authenticated: true}, nil, "")
	sess = s.Session()
	if sess.Authenticated || sess.User != nil {
		t.Fatalf("session = %#v, want signed out when no user persisted", sess)
	}
}
