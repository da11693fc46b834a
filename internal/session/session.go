// Package session provides the login flag and the pending-transfer slot,
// both persisted in the local state store.
package session

import (
	"github.com/jdmorgan/comment-dash/internal/store"
)

const loggedInKey = "logged_in"

// Service gates dashboard access on a persisted boolean flag. Login sets
// it, logout clears it; there is no credential check behind it.
type Service struct {
	store *store.Store
}

// NewService creates a session service over the given store.
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// IsActive reports whether the session flag is set.
func (s *Service) IsActive() (bool, error) {
	value, ok, err := s.store.Get(loggedInKey)
	if err != nil {
		return false, err
	}
	return ok && value == "true", nil
}

// Activate sets the session flag.
func (s *Service) Activate() error {
	return s.store.Set(loggedInKey, "true")
}

// Clear removes the session flag.
func (s *Service) Clear() error {
	return s.store.Delete(loggedInKey)
}
