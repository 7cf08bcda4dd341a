package models

// Account is one entry in the users document. The map key is the normalized
// (trimmed, lower-cased) identifier; the struct holds everything else,
// including the account's entire ledger.
type Account struct {
	Name     string    `json:"name"`
	Password string    `json:"password"` // bcrypt hash
	Expenses []Expense `json:"expenses"`
}
