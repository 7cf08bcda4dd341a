package services

import (
	apperrors "aureus/internal/errors"
	"aureus/internal/store"
)

// sessionService persists the active-account marker in the document store.
type sessionService struct {
	store *store.Store
}

// NewSessionService creates a new SessionServicer.
func NewSessionService(st *store.Store) SessionServicer {
	return &sessionService{store: st}
}

// Current returns the persisted active account, re-validated against the
// directory: a marker pointing at a missing account reads as logged out.
func (s *sessionService) Current() (string, bool) {
	email := s.store.LoadSession()
	if email == "" {
		return "", false
	}
	if _, ok := s.store.LoadAccounts()[email]; !ok {
		return "", false
	}
	return email, true
}

// Activate makes the given account the active one, replacing any previous
// marker. Switching accounts still goes through logout then login; this is
// only called after a successful signup or login.
func (s *sessionService) Activate(email string) error {
	if err := s.store.SaveSession(email); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Clear logs out by removing the marker.
func (s *sessionService) Clear() error {
	if err := s.store.ClearSession(); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
