package services

import (
	"strings"

	apperrors "aureus/internal/errors"
	"aureus/internal/store"
)

// categoryService owns the category registry and the cascades that keep
// every account's ledger consistent with it. Registry identity is
// case-insensitive; the stored name keeps its original casing for display.
type categoryService struct {
	store    *store.Store
	sessions SessionServicer
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(st *store.Store, sessions SessionServicer) CategoryServicer {
	return &categoryService{store: st, sessions: sessions}
}

// List returns the registry in display order. The store guarantees the list
// is never empty.
func (s *categoryService) List() []string {
	return s.store.LoadCategories()
}

// Add appends a new category at the end of the list. Blank names and
// case-insensitive duplicates are rejected without touching the registry.
// A no-op when logged out.
func (s *categoryService) Add(name string) ([]string, error) {
	s.store.Lock()
	defer s.store.Unlock()

	categories := s.store.LoadCategories()
	if _, ok := s.sessions.Current(); !ok {
		return categories, nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return categories, apperrors.WithMessage(apperrors.ErrValidationRejected, "category name is required")
	}
	if containsFold(categories, name) {
		return categories, apperrors.WithMessage(apperrors.ErrValidationRejected, "category with this name already exists")
	}

	categories = append(categories, name)
	if err := s.store.SaveCategories(categories); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// Rename replaces oldName with newName in place and rewrites every account's
// entries that reference it. Renaming a category to a case-variant of itself
// cancels the edit without a cascade. A no-op when logged out.
func (s *categoryService) Rename(oldName, newName string) ([]string, error) {
	s.store.Lock()
	defer s.store.Unlock()

	categories := s.store.LoadCategories()
	if _, ok := s.sessions.Current(); !ok {
		return categories, nil
	}

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return categories, apperrors.WithMessage(apperrors.ErrValidationRejected, "category name is required")
	}
	for _, c := range categories {
		if c != oldName && strings.EqualFold(c, newName) {
			return categories, apperrors.WithMessage(apperrors.ErrValidationRejected, "category with this name already exists")
		}
	}
	if strings.EqualFold(oldName, newName) {
		// Edit cancellation: identity is case-insensitive, nothing to rewrite.
		return categories, nil
	}

	renamed := false
	for i, c := range categories {
		if c == oldName {
			categories[i] = newName
			renamed = true
		}
	}
	if !renamed {
		return categories, nil
	}

	if err := s.store.SaveCategories(categories); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.reassign(oldName, newName); err != nil {
		return nil, err
	}
	return categories, nil
}

// Remove deletes a category and reassigns every entry referencing it to the
// default category, re-inserting the default at the front if it was removed.
// The last remaining category cannot be removed. A no-op when logged out.
func (s *categoryService) Remove(name string) ([]string, error) {
	s.store.Lock()
	defer s.store.Unlock()

	categories := s.store.LoadCategories()
	if _, ok := s.sessions.Current(); !ok {
		return categories, nil
	}
	if len(categories) == 1 {
		return categories, nil
	}

	kept := categories[:0:0]
	removed := false
	for _, c := range categories {
		if c == name {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return categories, nil
	}
	if !contains(kept, store.DefaultCategory) {
		kept = append([]string{store.DefaultCategory}, kept...)
	}

	if err := s.store.SaveCategories(kept); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.reassign(name, store.DefaultCategory); err != nil {
		return nil, err
	}
	return kept, nil
}

// reassign rewrites every account's entries whose category equals oldName to
// newName, preserving identifiers, dates, and amounts, then writes the whole
// account map through once. Caller must hold the store lock.
func (s *categoryService) reassign(oldName, newName string) error {
	accounts := s.store.LoadAccounts()
	for _, account := range accounts {
		for i := range account.Expenses {
			if account.Expenses[i].Category == oldName {
				account.Expenses[i].Category = newName
			}
		}
	}
	if err := s.store.SaveAccounts(accounts); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func contains(list []string, name string) bool {
	for _, c := range list {
		if c == name {
			return true
		}
	}
	return false
}

func containsFold(list []string, name string) bool {
	for _, c := range list {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}
