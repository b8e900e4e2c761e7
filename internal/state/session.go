package state

import "github.com/garuka-satharasinghe/StreamBox/internal/auth"

// Session returns a copy of the session slice.
func (s *Store) Session() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.session)
}

// BeginAuth marks a login or registration attempt as in flight: Loading on,
// previous error cleared. The session stays unauthenticated until the
// attempt completes.
func (s *Store) BeginAuth() {
	s.mu.Lock()
	s.session.Loading = true
	s.session.Error = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// CompleteAuth resolves an in-flight attempt. On success the user is stored
// and the session becomes authenticated; on failure the error message is
// recorded and the session stays signed out. Loading resets in both
// outcomes.
func (s *Store) CompleteAuth(user *auth.User, err error) {
	s.mu.Lock()
	s.session.Loading = false
	if err != nil {
		s.session.Authenticated = false
		s.session.User = nil
		s.session.Error = err.Error()
	} else {
		s.session = cloneSession(SessionState{Authenticated: user != nil, User: user})
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// Logout resets the session slice to its initial value. The persisted token
// disappears with the next snapshot write; storage failures there are
// best-effort and never surface here.
func (s *Store) Logout() {
	s.mu.Lock()
	s.session = SessionState{}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// ClearError drops a stale error message, e.g. when leaving an auth screen
// or before retrying.
func (s *Store) ClearError() {
	s.mu.Lock()
	if s.session.Error == "" {
		s.mu.Unlock()
		return
	}
	s.session.Error = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}
