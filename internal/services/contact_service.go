package services

import (
	"strings"
	"time"

	apperrors "aureus/internal/errors"
	"aureus/internal/models"
	"aureus/internal/pagination"
	"aureus/internal/store"
	"aureus/internal/uuid"
)

// contactService appends to and reads the contact intake log. Submissions
// are accepted without authentication.
type contactService struct {
	store *store.Store
}

// NewContactService creates a new ContactServicer.
func NewContactService(st *store.Store) ContactServicer {
	return &contactService{store: st}
}

// Submit appends a message when all four fields are non-blank.
func (s *contactService) Submit(name, email, phone, purpose string) (*models.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	purpose = strings.TrimSpace(purpose)
	if name == "" || email == "" || phone == "" || purpose == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidationRejected, "all contact fields are required")
	}

	msg := &models.ContactMessage{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Purpose:   purpose,
		CreatedAt: time.Now(),
	}
	if err := s.store.AppendContactMessage(msg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return msg, nil
}

// List returns a page of the log, newest first.
func (s *contactService) List(page pagination.PageRequest) (*pagination.PageResponse[models.ContactMessage], error) {
	messages, err := s.store.ListContactMessages()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	result := pagination.Page(messages, page)
	return &result, nil
}
