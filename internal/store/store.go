// Package store is the in-memory persistence layer behind both the client
// portal and the admin API. A Store is constructed once per process (or per
// test) so nothing hangs off package-level state.
package store

import (
	"sync"
	"time"

	"lavapp/internal/models"
)

type Store struct {
	mu        sync.Mutex
	orders    []models.Order // newest-first, maintained on insert
	customers []models.Customer
	services  []models.Service
	users     []models.User
	sessions  map[string]models.Session
	settings  models.Settings

	now func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		sessions: map[string]models.Session{},
		now:      time.Now,
	}
}

// Seeded returns a store preloaded with the demo catalog, customers and
// order history.
func Seeded() *Store {
	s := New()
	s.seed()
	return s
}

func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}
