package persist

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/garuka-satharasinghe/StreamBox/internal/state"
)

// defaultWriteDelay coalesces bursts of store changes (a user toggling
// several hearts in a row) into one disk write.
const defaultWriteDelay = 250 * time.Millisecond

// Writer is the debounced single writer for the durable snapshot. Enqueue
// replaces any pending snapshot and (re)arms the delay timer; only the
// latest state ever reaches disk. Write failures are logged and swallowed:
// a broken medium must never crash the store layer.
type Writer struct {
	path   string
	delay  time.Duration
	logger *zap.Logger

	mu      sync.Mutex
	pending *Snapshot
	timer   *time.Timer
}

// NewWriter builds a Writer targeting path. A non-positive delay uses the
// default.
func NewWriter(path string, delay time.Duration, logger *zap.Logger) *Writer {
	if delay <= 0 {
		delay = defaultWriteDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{path: path, delay: delay, logger: logger}
}

// Enqueue schedules the snapshot for writing after the debounce delay,
// replacing any snapshot still pending. Suitable as the store's change
// listener:
//
//	store.OnChange(func(snap state.Snapshot) { writer.Enqueue(snap) })
func (w *Writer) Enqueue(snap state.Snapshot) {
	durable := FromState(snap)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = &durable
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.flushPending)
}

// Flush writes any pending snapshot immediately. Called on shutdown so a
// quick quit after a state change is not lost to the debounce window.
func (w *Writer) Flush() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	w.flushPending()
}

func (w *Writer) flushPending() {
	w.mu.Lock()
	snap := w.pending
	w.pending = nil
	w.mu.Unlock()

	if snap == nil {
		return
	}
	if err := Save(w.path, *snap); err != nil {
		w.logger.Warn("snapshot write skipped", zap.Error(err))
	}
}
