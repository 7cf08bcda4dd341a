package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"aureus/internal/models"
	"aureus/internal/store"
	"aureus/internal/uuid"

	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext password behind every fixture account.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// SetupTestStore creates an isolated in-memory database and wraps it in a
// document store.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t))
}

// CreateTestAccount registers an account with a unique email and the fixture
// password, and returns its normalized email.
func CreateTestAccount(t *testing.T, st *store.Store) string {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	CreateTestAccountWithEmail(t, st, email)
	return email
}

// CreateTestAccountWithEmail registers an account under the given email.
func CreateTestAccountWithEmail(t *testing.T, st *store.Store, email string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	accounts := st.LoadAccounts()
	accounts[email] = &models.Account{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Password: string(hash),
		Expenses: []models.Expense{},
	}
	if err := st.SaveAccounts(accounts); err != nil {
		t.Fatalf("failed to save test account: %v", err)
	}
}

// ActivateTestSession marks the given account as the active session.
func ActivateTestSession(t *testing.T, st *store.Store, email string) {
	t.Helper()
	if err := st.SaveSession(email); err != nil {
		t.Fatalf("failed to activate test session: %v", err)
	}
}

// AddTestExpense appends an expense to the given account's ledger and returns
// its generated id. The date is in ISO form, e.g. "2026-03-15".
func AddTestExpense(t *testing.T, st *store.Store, email, date, category, description string, amount float64) string {
	t.Helper()

	accounts := st.LoadAccounts()
	account, ok := accounts[email]
	if !ok {
		t.Fatalf("no fixture account %q", email)
	}

	exp := models.Expense{
		ID:          uuid.New(),
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
	}
	account.Expenses = append(account.Expenses, exp)
	if err := st.SaveAccounts(accounts); err != nil {
		t.Fatalf("failed to save test expense: %v", err)
	}
	return exp.ID
}

// Today returns the current date in the ledger's ISO form.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// CreateTestContactMessage appends one contact-log row with unique contents.
func CreateTestContactMessage(t *testing.T, st *store.Store) *models.ContactMessage {
	t.Helper()

	n := nextID()
	msg := &models.ContactMessage{
		ID:        uuid.New(),
		Name:      fmt.Sprintf("Visitor %d", n),
		Email:     fmt.Sprintf("visitor%d@test.com", n),
		Phone:     "555-0100",
		Purpose:   "General inquiry",
		CreatedAt: time.Now(),
	}
	if err := st.AppendContactMessage(msg); err != nil {
		t.Fatalf("failed to create test contact message: %v", err)
	}
	return msg
}
