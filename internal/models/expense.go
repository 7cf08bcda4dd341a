package models

// Expense is a single entry in an account's ledger. Entries reference a
// category by display name, not by key; the category services keep those
// references consistent when categories are renamed or removed.
type Expense struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"` // ISO 8601 calendar date, fixed width
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
