package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "aureus/internal/errors"
	"aureus/internal/models"
	"aureus/internal/store"
)

// accountService handles the account directory: signup, login, and
// credential changes. Accounts are never deleted.
type accountService struct {
	store    *store.Store
	sessions SessionServicer
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(st *store.Store, sessions SessionServicer) AccountServicer {
	return &accountService{store: st, sessions: sessions}
}

// normalizeEmail folds an identifier to its map-key form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a new account with an empty ledger and activates a session
// for it. The identifier collision check is case-insensitive because the map
// key is the normalized identifier.
func (s *accountService) Signup(email, name, password string) (string, *models.Account, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	password = strings.TrimSpace(password)
	if email == "" || name == "" || password == "" {
		return "", nil, apperrors.WithMessage(apperrors.ErrValidationRejected, "name, email and password are required")
	}

	s.store.Lock()
	accounts := s.store.LoadAccounts()
	if _, exists := accounts[email]; exists {
		s.store.Unlock()
		return "", nil, apperrors.ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.store.Unlock()
		return "", nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	account := &models.Account{
		Name:     name,
		Password: string(hash),
		Expenses: []models.Expense{},
	}
	accounts[email] = account
	if err := s.store.SaveAccounts(accounts); err != nil {
		s.store.Unlock()
		return "", nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.store.Unlock()

	if err := s.sessions.Activate(email); err != nil {
		return "", nil, err
	}
	return email, account, nil
}

// Login authenticates an account and activates a session for it. A failed
// login leaves the session exactly as it was.
func (s *accountService) Login(email, password string) (string, *models.Account, error) {
	email = normalizeEmail(email)
	account, ok := s.store.LoadAccounts()[email]
	if !ok {
		return "", nil, apperrors.ErrAccountNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(strings.TrimSpace(password))) != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := s.sessions.Activate(email); err != nil {
		return "", nil, err
	}
	return email, account, nil
}

// ChangePassword overwrites the stored credential after verifying the
// current one and the confirmation.
func (s *accountService) ChangePassword(email, current, next, confirm string) error {
	email = normalizeEmail(email)
	next = strings.TrimSpace(next)
	confirm = strings.TrimSpace(confirm)

	s.store.Lock()
	defer s.store.Unlock()

	accounts := s.store.LoadAccounts()
	account, ok := accounts[email]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(strings.TrimSpace(current))) != nil {
		return apperrors.ErrInvalidCredentials
	}
	if next == "" || next != confirm {
		return apperrors.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	account.Password = string(hash)
	if err := s.store.SaveAccounts(accounts); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetByEmail retrieves an account by its normalized identifier.
func (s *accountService) GetByEmail(email string) (*models.Account, error) {
	account, ok := s.store.LoadAccounts()[normalizeEmail(email)]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}
