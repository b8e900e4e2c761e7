package state

// Theme returns the current display mode.
func (s *Store) Theme() ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips between dark and light.
func (s *Store) ToggleTheme() {
	s.mu.Lock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// SetTheme assigns the display mode directly. Unknown values fall back to
// dark, the default.
func (s *Store) SetTheme(mode ThemeMode) {
	s.mu.Lock()
	if mode != ThemeLight {
		mode = ThemeDark
	}
	if s.theme == mode {
		s.mu.Unlock()
		return
	}
	s.theme = mode
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}
