package store

import (
	"errors"
	"fmt"

	"lavapp/internal/models"
)

var ErrServiceNotFound = errors.New("service not found")

// ListServices returns the whole catalog.
func (s *Store) ListServices() []models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out
}

// ListServicesByChannel returns the catalog entries purchasable on the given
// channel, including both-channel entries.
func (s *Store) ListServicesByChannel(ch models.Channel) []models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Service{}
	for _, svc := range s.services {
		if svc.Channel.Matches(ch) {
			out = append(out, svc)
		}
	}
	return out
}

// GetService looks a service up by id.
func (s *Store) GetService(id string) (models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

// CreateService adds a catalog entry with a generated id.
func (s *Store) CreateService(svc models.Service) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc.ID = fmt.Sprintf("svc%03d", s.nextServiceSeq())
	svc.CreatedAt = s.now()
	s.services = append(s.services, svc)
	return svc
}

// UpdateService replaces every mutable field of the identified entry.
func (s *Store) UpdateService(id string, svc models.Service) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID == id {
			svc.ID = id
			svc.CreatedAt = s.services[i].CreatedAt
			s.services[i] = svc
			return svc, nil
		}
	}
	return models.Service{}, ErrServiceNotFound
}

// DeleteService removes the entry. Historical orders are unaffected because
// order items are snapshots.
func (s *Store) DeleteService(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return nil
		}
	}
	return ErrServiceNotFound
}

// nextServiceSeq picks a sequence number past every generated id so deletes
// never cause reuse. Seed entries use hand-written ids and don't collide.
func (s *Store) nextServiceSeq() int {
	seq := len(s.services) + 1
	for {
		candidate := fmt.Sprintf("svc%03d", seq)
		taken := false
		for _, svc := range s.services {
			if svc.ID == candidate {
				taken = true
				break
			}
		}
		if !taken {
			return seq
		}
		seq++
	}
}
