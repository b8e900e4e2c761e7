package tmdb

import (
	"fmt"
	"time"
)

// Movie describes a catalog entry in transport-friendly form. Movies are
// immutable once received: the client and the stores only ever copy or drop
// them, keyed by ID.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	Popularity   float64 `json:"popularity"`
}

// listResponse mirrors the catalog's list payloads (/trending, /popular, /search).
type listResponse struct {
	Results []Movie `json:"results"`
}

// HasPoster reports whether the movie carries a poster path fragment.
// Absent fragments must render a placeholder, never a broken image URL.
func (m Movie) HasPoster() bool {
	return m.PosterPath != ""
}

// HasBackdrop reports whether the movie carries a backdrop path fragment.
func (m Movie) HasBackdrop() bool {
	return m.BackdropPath != ""
}

// ReleaseYear returns the four-digit release year, or "" when the release
// date is absent or unparseable.
func (m Movie) ReleaseYear() string {
	if m.ReleaseDate == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", m.ReleaseDate)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d", t.Year())
}

// RatingLabel formats the average rating for display, with a placeholder
// when the catalog has no votes yet.
func (m Movie) RatingLabel() string {
	if m.VoteAverage <= 0 {
		return "–"
	}
	return fmt.Sprintf("%.1f", m.VoteAverage)
}
