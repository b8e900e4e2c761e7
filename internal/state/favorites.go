package state

import "github.com/garuka-satharasinghe/StreamBox/internal/tmdb"

// Favorites returns a copy of the favorites sequence in insertion order.
func (s *Store) Favorites() []tmdb.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMovies(s.favorites)
}

// AddFavorite appends the movie unless its ID is already present.
func (s *Store) AddFavorite(movie tmdb.Movie) {
	s.mu.Lock()
	if indexByID(s.favorites, movie.ID) >= 0 {
		s.mu.Unlock()
		return
	}
	s.favorites = append(s.favorites, movie)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// RemoveFavorite removes the entry with the given ID; absent IDs are a no-op.
func (s *Store) RemoveFavorite(id int) {
	s.mu.Lock()
	idx := indexByID(s.favorites, id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.favorites = append(s.favorites[:idx:idx], s.favorites[idx+1:]...)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// ToggleFavorite removes the movie when present and appends it otherwise, as
// a single atomic transition. This backs the primary heart-icon affordance.
func (s *Store) ToggleFavorite(movie tmdb.Movie) {
	s.mu.Lock()
	if idx := indexByID(s.favorites, movie.ID); idx >= 0 {
		s.favorites = append(s.favorites[:idx:idx], s.favorites[idx+1:]...)
	} else {
		s.favorites = append(s.favorites, movie)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// IsFavorite reports whether the ID is currently favorited.
func (s *Store) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexByID(s.favorites, id) >= 0
}

// FavoriteCount returns the number of favorited movies. Derived, never
// stored redundantly.
func (s *Store) FavoriteCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.favorites)
}

func indexByID(movies []tmdb.Movie, id int) int {
	for i, m := range movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}
