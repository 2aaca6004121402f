package store

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"lavapp/internal/models"
)

var ErrEmailTaken = errors.New("email already registered")

// CreateUser registers an account. Emails are unique, case-insensitive.
func (s *Store) CreateUser(name, email, passwordHash, role string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if strings.EqualFold(u.Email, normalized) {
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        normalized,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    s.now(),
	}
	s.users = append(s.users, user)
	return user, nil
}

// FindUserByEmail is used by login.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return u, true
		}
	}
	return models.User{}, false
}

// GetUser looks a user up by id.
func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateSession records the server-assigned session behind a token and
// returns its id.
func (s *Store) CreateSession(userID string, ttl time.Duration) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: s.now(),
		ExpiresAt: s.now().Add(ttl),
	}
	s.sessions[session.ID] = session
	return session
}

// GetSession returns a live session. Expired sessions are dropped on read.
func (s *Store) GetSession(id string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return models.Session{}, false
	}
	if s.now().After(session.ExpiresAt) {
		delete(s.sessions, id)
		return models.Session{}, false
	}
	return session, true
}

// DeleteSession logs the session out. Deleting an absent session is a no-op.
func (s *Store) DeleteSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
