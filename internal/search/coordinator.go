package search

import (
	"strings"
	"sync"
	"time"

	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
)

const (
	// DebounceInterval is the silence required after the last keystroke
	// before a request fires. Trailing debounce, not a throttle: every
	// keystroke restarts the clock.
	DebounceInterval = 500 * time.Millisecond

	// GridLimit caps how many results the on-screen grid shows. Purely a
	// presentation concern; the coordinator keeps the full result set.
	GridLimit = 6
)

// Coordinator turns raw keystroke input into a single authoritative result
// list. Every query edit mints a new ticket; debounce firings and responses
// carrying a stale ticket are discarded, so out-of-order responses can never
// resurrect an earlier query's results.
//
// The caller owns the timing: it arms one timer per SetQuery ticket and
// calls Fire when the timer elapses. In the TUI that timer is a tea.Tick
// command.
type Coordinator struct {
	mu        sync.Mutex
	ticket    uint64
	query     string
	searching bool
	results   []tmdb.Movie
}

// NewCoordinator returns an idle coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// SetQuery records a query edit. For a non-blank query it returns the ticket
// to arm a debounce timer with and arm=true. A blank or whitespace-only
// query clears the results immediately and returns arm=false: no request,
// no searching transition, and any pending ticket is implicitly voided.
func (c *Coordinator) SetQuery(raw string) (ticket uint64, arm bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ticket++
	c.query = raw
	if strings.TrimSpace(raw) == "" {
		c.results = nil
		c.searching = false
		return c.ticket, false
	}
	return c.ticket, true
}

// Fire is called when a debounce timer elapses. It reports whether the
// ticket still identifies the latest edit; if so the request should be
// issued for the returned trimmed query and the searching flag is set.
// Stale tickets (the user kept typing) are rejected without side effects.
func (c *Coordinator) Fire(ticket uint64) (query string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket != c.ticket {
		return "", false
	}
	trimmed := strings.TrimSpace(c.query)
	if trimmed == "" {
		return "", false
	}
	c.searching = true
	return trimmed, true
}

// Deliver resolves a request. Results are accepted only when the ticket
// still matches the latest edit; a response for a superseded query is
// discarded and reported false. Failures deliver an empty list, which is
// accepted the same way (silent degradation).
func (c *Coordinator) Deliver(ticket uint64, results []tmdb.Movie) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket != c.ticket {
		return false
	}
	c.results = cloneMovies(results)
	c.searching = false
	return true
}

// Reset clears all query state, e.g. when the hosting screen unmounts.
// Outstanding tickets become stale.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ticket++
	c.query = ""
	c.results = nil
	c.searching = false
}

// Query returns the raw query as last typed.
func (c *Coordinator) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Active reports whether a non-blank query is in effect, i.e. whether the
// UI should show the search surface instead of the browse rows.
func (c *Coordinator) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.TrimSpace(c.query) != ""
}

// Searching reports whether a request is in flight.
func (c *Coordinator) Searching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searching
}

// Results returns a copy of the authoritative result list.
func (c *Coordinator) Results() []tmdb.Movie {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneMovies(c.results)
}

func cloneMovies(in []tmdb.Movie) []tmdb.Movie {
	if len(in) == 0 {
		return nil
	}
	dup := make([]tmdb.Movie, len(in))
	copy(dup, in)
	return dup
}
