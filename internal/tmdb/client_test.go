package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL+"/3", "https://image.example/t/p/w500", "test-key", nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestTrendingMovies(t *testing.T) {
	var gotPath, gotKey string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":27205,"title":"Inception","vote_average":8.4},{"id":603,"title":"The Matrix"}]}`))
	}))

	movies := client.TrendingMovies(context.Background())
	if gotPath != "/3/trending/movie/week" {
		t.Fatalf("request path = %q, want /3/trending/movie/week", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api_key = %q, want test-key", gotKey)
	}
	if len(movies) != 2 || movies[0].ID != 27205 || movies[0].Title != "Inception" {
		t.Fatalf("movies = %#v, want 2 entries starting with Inception", movies)
	}
}

func TestTrendingMoviesFailureReturnsEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))

	if movies := client.TrendingMovies(context.Background()); len(movies) != 0 {
		t.Fatalf("TrendingMovies on 502 = %#v, want empty", movies)
	}
}

func TestPopularMoviesMalformedPayloadReturnsEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": not-json`))
	}))

	if movies := client.PopularMovies(context.Background()); len(movies) != 0 {
		t.Fatalf("PopularMovies on malformed payload = %#v, want empty", movies)
	}
}

func TestSearchMoviesSendsTrimmedQuery(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`{"results":[{"id":1,"title":"Dune"}]}`))
	}))

	movies := client.SearchMovies(context.Background(), "  dune  ")
	if gotQuery != "dune" {
		t.Fatalf("query param = %q, want dune", gotQuery)
	}
	if len(movies) != 1 || movies[0].Title != "Dune" {
		t.Fatalf("movies = %#v, want single Dune entry", movies)
	}
}

func TestSearchMoviesBlankQuerySkipsRequest(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))

	for _, q := range []string{"", "   ", "\t\n"} {
		if movies := client.SearchMovies(context.Background(), q); movies != nil {
			t.Fatalf("SearchMovies(%q) = %#v, want nil", q, movies)
		}
	}
	if requests != 0 {
		t.Fatalf("blank queries issued %d requests, want 0", requests)
	}
}

func TestMovieDetails(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/3/movie/550" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"id":550,"title":"Fight Club","overview":"...","vote_average":8.4,"release_date":"1999-10-15"}`))
	}))

	movie := client.MovieDetails(context.Background(), 550)
	if movie == nil || movie.Title != "Fight Club" {
		t.Fatalf("MovieDetails(550) = %#v, want Fight Club", movie)
	}
	if movie.ReleaseYear() != "1999" {
		t.Fatalf("ReleaseYear = %q, want 1999", movie.ReleaseYear())
	}

	if got := client.MovieDetails(context.Background(), 999); got != nil {
		t.Fatalf("MovieDetails(999) = %#v, want nil on 404", got)
	}
}

func TestImageURL(t *testing.T) {
	client, err := NewClient("https://api.example/3", "https://image.example/t/p/w500/", "k", nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if got := client.ImageURL("/abc123.jpg"); got != "https://image.example/t/p/w500/abc123.jpg" {
		t.Fatalf("ImageURL = %q", got)
	}
	if got := client.ImageURL("abc123.jpg"); got != "https://image.example/t/p/w500/abc123.jpg" {
		t.Fatalf("ImageURL without leading slash = %q", got)
	}
	if got := client.ImageURL(""); got != "" {
		t.Fatalf("ImageURL(\"\") = %q, want empty placeholder signal", got)
	}
}

func TestMovieOptionalFields(t *testing.T) {
	m := Movie{ID: 1, Title: "Untitled"}
	if m.HasPoster() || m.HasBackdrop() {
		t.Fatal("zero-value movie should have no image fragments")
	}
	if m.ReleaseYear() != "" {
		t.Fatalf("ReleaseYear = %q, want empty for missing date", m.ReleaseYear())
	}
	if m.RatingLabel() != "–" {
		t.Fatalf("RatingLabel = %q, want placeholder for zero rating", m.RatingLabel())
	}

	rated := Movie{VoteAverage: 7.34, ReleaseDate: "2021-10-22"}
	if rated.RatingLabel() != "7.3" {
		t.Fatalf("RatingLabel = %q, want 7.3", rated.RatingLabel())
	}
	if rated.ReleaseYear() != "2021" {
		t.Fatalf("ReleaseYear = %q, want 2021", rated.ReleaseYear())
	}
}
