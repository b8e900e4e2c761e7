package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/garuka-satharasinghe/StreamBox/internal/persist"
	"github.com/garuka-satharasinghe/StreamBox/internal/state"
)

// hydrateTimeout is the hard ceiling on the startup snapshot read. Past it
// the app proceeds with defaults instead of blocking the UI on a corrupted
// or unavailable storage medium. A timeout is final: no retry.
const hydrateTimeout = 10 * time.Second

// hydrate reads the durable snapshot and applies it to the store. Read
// failures hydrate as defaults (persist.Load already degrades); only the
// deadline can skip hydration entirely, leaving the store at its initial
// state. An absent stored session is simply "signed out", not an error.
func hydrate(store *state.Store, path string, timeout time.Duration, logger *zap.Logger) {
	type outcome struct {
		snap persist.Snapshot
		err  error
	}

	ch := make(chan outcome, 1)
	go func() {
		snap, err := persist.Load(path)
		ch <- outcome{snap: snap, err: err}
	}()

	select {
	case out := <-ch:
		if out.err != nil {
			logger.Warn("persisted state unavailable, using defaults", zap.Error(out.err))
		}
		store.Hydrate(out.snap.ToState())
	case <-time.After(timeout):
		logger.Warn("state hydration timed out, starting with defaults",
			zap.String("path", path),
			zap.Duration("timeout", timeout))
	}
}
