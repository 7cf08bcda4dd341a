package services

import (
	"aureus/internal/models"
	"aureus/internal/pagination"
)

// SessionServicer tracks the single active account. At most one account is
// active at a time; the marker is persisted so it survives restarts.
type SessionServicer interface {
	// Current returns the active account identifier. ok is false when logged
	// out or when the marker references an account that no longer exists.
	Current() (email string, ok bool)
	Activate(email string) error
	Clear() error
}

// AccountServicer defines the contract for the account directory.
// Identifiers are normalized (trimmed, lower-cased) at every entry point;
// the returned email is the normalized form used as the map key.
type AccountServicer interface {
	Signup(email, name, password string) (string, *models.Account, error)
	Login(email, password string) (string, *models.Account, error)
	ChangePassword(email, current, next, confirm string) error
	GetByEmail(email string) (*models.Account, error)
}

// CategoryServicer owns the ordered, case-insensitively deduplicated
// category registry. Rename and Remove cascade over every account's ledger
// so that no entry is left referencing a name absent from the registry.
type CategoryServicer interface {
	List() []string
	Add(name string) ([]string, error)
	Rename(oldName, newName string) ([]string, error)
	Remove(name string) ([]string, error)
}

// DashboardSummary is the read-only projection behind the dashboard and the
// chart: current-month totals per category plus headline numbers.
type DashboardSummary struct {
	MonthTotal       float64            `json:"month_total"`
	EntryCount       int                `json:"entry_count"`
	CategoryTotal    float64            `json:"category_total"`
	TotalsByCategory map[string]float64 `json:"totals_by_category"`
}

// Report is the export projection: a date-range- and category-filtered,
// ordered sequence of entries plus the computed total. Formatting the
// document artifact is the consumer's job.
type Report struct {
	Start    string           `json:"start"`
	End      string           `json:"end"`
	Category string           `json:"category,omitempty"`
	Expenses []models.Expense `json:"expenses"`
	Total    float64          `json:"total"`
}

// LedgerServicer operates on the active account's expense ledger. No method
// takes an account parameter: the owner is always the account the session
// points at, and every operation is a silent no-op when logged out.
type LedgerServicer interface {
	Add(category, description string, amount float64) (*models.Expense, error)
	Amend(id, category, description string, amount float64) (*models.Expense, error)
	Delete(id string) error
	List(categoryFilter string) ([]models.Expense, error)
	EntriesInRange(start, end, categoryFilter string) ([]models.Expense, error)
	CurrentMonthEntries() ([]models.Expense, error)
	Summary(categoryFilter string) (*DashboardSummary, error)
	Report(start, end, categoryFilter string) (*Report, error)
}

// ContactServicer defines the contract for the contact intake log. Submission
// is independent of authentication; reading the log is for the administrator
// view only, which the HTTP layer enforces.
type ContactServicer interface {
	Submit(name, email, phone, purpose string) (*models.ContactMessage, error)
	List(page pagination.PageRequest) (*pagination.PageResponse[models.ContactMessage], error)
}
