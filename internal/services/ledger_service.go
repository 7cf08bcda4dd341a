package services

import (
	"math"
	"strings"
	"time"

	apperrors "aureus/internal/errors"
	"aureus/internal/models"
	"aureus/internal/store"
	"aureus/internal/uuid"
)

const isoDateLayout = "2006-01-02"

// ledgerService operates on the active account's expense ledger inside the
// users document. The owner is always resolved from the session; when logged
// out, mutations are silent no-ops and queries return empty results.
type ledgerService struct {
	store    *store.Store
	sessions SessionServicer
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(st *store.Store, sessions SessionServicer) LedgerServicer {
	return &ledgerService{store: st, sessions: sessions}
}

// validateEntry checks the mutable fields shared by Add and Amend. The
// category must be a live registry entry at write time; the reference is by
// name, so the registry cascades keep it from dangling afterwards.
func (s *ledgerService) validateEntry(category, description string, amount float64) (string, error) {
	description = strings.TrimSpace(description)
	if category == "" || description == "" {
		return "", apperrors.WithMessage(apperrors.ErrValidationRejected, "category and description are required")
	}
	if !contains(s.store.LoadCategories(), category) {
		return "", apperrors.WithMessage(apperrors.ErrValidationRejected, "unknown category")
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return "", apperrors.WithMessage(apperrors.ErrValidationRejected, "amount must be a positive number")
	}
	return description, nil
}

// Add appends a new entry with a fresh identifier and today's date. The
// identifier and date are immutable afterwards.
func (s *ledgerService) Add(category, description string, amount float64) (*models.Expense, error) {
	s.store.Lock()
	defer s.store.Unlock()

	owner, ok := s.sessions.Current()
	if !ok {
		return nil, nil
	}
	description, err := s.validateEntry(category, description, amount)
	if err != nil {
		return nil, err
	}

	accounts := s.store.LoadAccounts()
	entry := models.Expense{
		ID:          uuid.New(),
		Date:        time.Now().Format(isoDateLayout),
		Category:    category,
		Description: description,
		Amount:      amount,
	}
	accounts[owner].Expenses = append(accounts[owner].Expenses, entry)
	if err := s.store.SaveAccounts(accounts); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// Amend rewrites the category, description, and amount of an existing entry
// in the active account's ledger. Amending an unknown identifier is an
// idempotent no-op and returns nil without error.
func (s *ledgerService) Amend(id, category, description string, amount float64) (*models.Expense, error) {
	s.store.Lock()
	defer s.store.Unlock()

	owner, ok := s.sessions.Current()
	if !ok {
		return nil, nil
	}
	description, err := s.validateEntry(category, description, amount)
	if err != nil {
		return nil, err
	}

	accounts := s.store.LoadAccounts()
	ledger := accounts[owner].Expenses
	for i := range ledger {
		if ledger[i].ID != id {
			continue
		}
		ledger[i].Category = category
		ledger[i].Description = description
		ledger[i].Amount = amount
		if err := s.store.SaveAccounts(accounts); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		entry := ledger[i]
		return &entry, nil
	}
	return nil, nil
}

// Delete removes the entry with the given identifier. Deleting an unknown
// identifier is an idempotent no-op.
func (s *ledgerService) Delete(id string) error {
	s.store.Lock()
	defer s.store.Unlock()

	owner, ok := s.sessions.Current()
	if !ok {
		return nil
	}

	accounts := s.store.LoadAccounts()
	ledger := accounts[owner].Expenses
	kept := ledger[:0:0]
	for _, entry := range ledger {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	accounts[owner].Expenses = kept
	if err := s.store.SaveAccounts(accounts); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// entries returns the active account's ledger in insertion order, or nil
// when logged out.
func (s *ledgerService) entries() []models.Expense {
	owner, ok := s.sessions.Current()
	if !ok {
		return nil
	}
	return s.store.LoadAccounts()[owner].Expenses
}

// List returns the ledger, optionally restricted to one exact category name.
func (s *ledgerService) List(categoryFilter string) ([]models.Expense, error) {
	return filterByCategory(s.entries(), categoryFilter), nil
}

// EntriesInRange returns entries whose date lies in [start, end], inclusive,
// in ledger order. Dates are fixed-width ISO 8601, so plain string
// comparison orders them correctly.
func (s *ledgerService) EntriesInRange(start, end, categoryFilter string) ([]models.Expense, error) {
	if start == "" || end == "" {
		return []models.Expense{}, nil
	}
	matched := []models.Expense{}
	for _, entry := range filterByCategory(s.entries(), categoryFilter) {
		if entry.Date >= start && entry.Date <= end {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// CurrentMonthEntries returns entries dated in the calendar month of the
// current date at query time.
func (s *ledgerService) CurrentMonthEntries() ([]models.Expense, error) {
	prefix := time.Now().Format("2006-01")
	matched := []models.Expense{}
	for _, entry := range s.entries() {
		if strings.HasPrefix(entry.Date, prefix) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// Summary builds the dashboard projection: the current-month total, the
// all-time entry count, the month total under the optional category filter,
// and the per-category month totals the chart consumes. Every registry
// category appears in the map, zero-filled.
func (s *ledgerService) Summary(categoryFilter string) (*DashboardSummary, error) {
	monthEntries, err := s.CurrentMonthEntries()
	if err != nil {
		return nil, err
	}

	totals := map[string]float64{}
	for _, category := range s.store.LoadCategories() {
		totals[category] = 0
	}

	summary := &DashboardSummary{EntryCount: len(s.entries())}
	for _, entry := range monthEntries {
		summary.MonthTotal += entry.Amount
		totals[entry.Category] += entry.Amount
		if categoryFilter == "" || entry.Category == categoryFilter {
			summary.CategoryTotal += entry.Amount
		}
	}
	for category, total := range totals {
		totals[category] = round2(total)
	}
	summary.MonthTotal = round2(summary.MonthTotal)
	summary.CategoryTotal = round2(summary.CategoryTotal)
	summary.TotalsByCategory = totals
	return summary, nil
}

// Report builds the export projection for the given inclusive date range and
// optional category filter.
func (s *ledgerService) Report(start, end, categoryFilter string) (*Report, error) {
	expenses, err := s.EntriesInRange(start, end, categoryFilter)
	if err != nil {
		return nil, err
	}
	report := &Report{Start: start, End: end, Category: categoryFilter, Expenses: expenses}
	for _, entry := range expenses {
		report.Total += entry.Amount
	}
	report.Total = round2(report.Total)
	return report, nil
}

func filterByCategory(entries []models.Expense, category string) []models.Expense {
	if category == "" {
		if entries == nil {
			return []models.Expense{}
		}
		return entries
	}
	matched := []models.Expense{}
	for _, entry := range entries {
		if entry.Category == category {
			matched = append(matched, entry)
		}
	}
	return matched
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
