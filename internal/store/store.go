// Package store implements the persistent key-value document store beneath
// the registry, directory, and session. Three documents are held whole in a
// single table and rewritten in full after every mutation; there are no
// partial writes and no transactions spanning documents. Loads never fail:
// a missing, unparseable, or empty document is silently replaced by its
// documented default.
package store

import (
	"encoding/json"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aureus/internal/logger"
	"aureus/internal/models"
)

// Document keys.
const (
	KeyCategories = "categories"
	KeyUsers      = "users"
	KeySession    = "session"
)

// DefaultCategory is the sentinel category that must always exist. Ledger
// entries whose category is removed are reassigned to it.
const DefaultCategory = "Uncategorized"

// Reserved administrator account. Re-created on load whenever the users
// document lacks it. Not a security boundary: the credential is a known
// constant kept for compatibility with the admin contact-log view.
const (
	AdminEmail    = "admin"
	AdminName     = "Administrator"
	AdminPassword = "nimda"
)

// SeedCategories is the registry reset default: the sentinel plus a fixed
// set of common categories.
var SeedCategories = []string{
	DefaultCategory,
	"Housing",
	"Groceries",
	"Transport",
	"Utilities",
	"Entertainment",
}

// Store reads and writes whole documents. The embedded mutex serializes
// read-modify-write cycles so that every operation runs to completion before
// the next one starts; callers lock around a load, mutate in memory, and
// write through. Concurrent access from other processes is last-write-wins.
type Store struct {
	sync.Mutex
	db *gorm.DB
}

// New creates a Store on top of an open database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// load reads one raw document value. ok is false when the row is absent.
func (s *Store) load(key string) (string, bool) {
	var doc models.Document
	if err := s.db.First(&doc, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Get().Warnw("document read failed", "key", key, "error", err)
		}
		return "", false
	}
	return doc.Value, true
}

// save rewrites one document in full.
func (s *Store) save(key, value string) error {
	doc := models.Document{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
}

// LoadCategories returns the category list. An absent, unparseable, or empty
// document yields a fresh copy of the seed list; the repaired list is not
// persisted until the next write-through.
func (s *Store) LoadCategories() []string {
	raw, ok := s.load(KeyCategories)
	if ok {
		var cats []string
		if err := json.Unmarshal([]byte(raw), &cats); err == nil && len(cats) > 0 {
			return cats
		}
	}
	seed := make([]string, len(SeedCategories))
	copy(seed, SeedCategories)
	return seed
}

// SaveCategories rewrites the category document.
func (s *Store) SaveCategories(categories []string) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return s.save(KeyCategories, string(raw))
}

// LoadAccounts returns the account map keyed by normalized identifier. An
// absent or unparseable document yields a map holding only the administrator;
// a parseable map that lacks the administrator gets it injected without
// disturbing the other accounts.
func (s *Store) LoadAccounts() map[string]*models.Account {
	accounts := map[string]*models.Account{}
	if raw, ok := s.load(KeyUsers); ok {
		if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
			accounts = map[string]*models.Account{}
		}
	}
	if _, ok := accounts[AdminEmail]; !ok {
		accounts[AdminEmail] = &models.Account{
			Name:     AdminName,
			Password: hashAdminPassword(),
			Expenses: []models.Expense{},
		}
	}
	return accounts
}

// SaveAccounts rewrites the users document.
func (s *Store) SaveAccounts(accounts map[string]*models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.save(KeyUsers, string(raw))
}

// LoadSession returns the persisted active-account identifier, or "" when
// logged out.
func (s *Store) LoadSession() string {
	raw, ok := s.load(KeySession)
	if !ok {
		return ""
	}
	var email string
	if err := json.Unmarshal([]byte(raw), &email); err != nil {
		return ""
	}
	return email
}

// SaveSession persists the active-account identifier.
func (s *Store) SaveSession(email string) error {
	raw, err := json.Marshal(email)
	if err != nil {
		return err
	}
	return s.save(KeySession, string(raw))
}

// ClearSession removes the session marker.
func (s *Store) ClearSession() error {
	return s.db.Delete(&models.Document{}, "key = ?", KeySession).Error
}

// AppendContactMessage appends one row to the contact intake log.
func (s *Store) AppendContactMessage(msg *models.ContactMessage) error {
	return s.db.Create(msg).Error
}

// ListContactMessages returns the contact log, newest first.
func (s *Store) ListContactMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func hashAdminPassword() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost; the constant cost is valid.
		logger.Get().Errorw("admin password hash failed", "error", err)
		return ""
	}
	return string(hash)
}
