package store

import "lavapp/internal/models"

// GetSettings returns the business profile.
func (s *Store) GetSettings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings replaces the business profile wholesale.
func (s *Store) UpdateSettings(settings models.Settings) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return s.settings
}
