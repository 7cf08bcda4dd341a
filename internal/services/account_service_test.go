package services

import (
	"testing"

	"aureus/internal/store"
	"aureus/internal/testutil"
)

func setupAccountService(t *testing.T) (*store.Store, AccountServicer, SessionServicer) {
	t.Helper()
	st := testutil.SetupTestStore(t)
	sessions := NewSessionService(st)
	return st, NewAccountService(st, sessions), sessions
}

func TestSignup(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		_, svc, sessions := setupAccountService(t)

		email, account, err := svc.Signup("New@Test.com", "New User", "secret123")
		testutil.AssertNoError(t, err)
		if email != "new@test.com" {
			t.Errorf("expected normalized email, got %q", email)
		}
		if account.Name != "New User" {
			t.Errorf("expected name 'New User', got %q", account.Name)
		}
		if account.Password == "secret123" {
			t.Error("password must not be stored in the clear")
		}
		if len(account.Expenses) != 0 {
			t.Errorf("new account should start with an empty ledger, got %d entries", len(account.Expenses))
		}
		if active, ok := sessions.Current(); !ok || active != "new@test.com" {
			t.Errorf("signup should activate the session, got %q ok=%v", active, ok)
		}
	})

	t.Run("case_insensitive_collision", func(t *testing.T) {
		_, svc, _ := setupAccountService(t)

		_, _, err := svc.Signup("user@test.com", "First", "secret123")
		testutil.AssertNoError(t, err)

		_, _, err = svc.Signup("USER@test.com", "Second", "other456")
		testutil.AssertAppError(t, err, "ACCOUNT_EXISTS")
	})

	t.Run("blank_fields_rejected", func(t *testing.T) {
		_, svc, _ := setupAccountService(t)

		_, _, err := svc.Signup("user@test.com", "   ", "secret123")
		testutil.AssertAppError(t, err, "VALIDATION_REJECTED")

		_, _, err = svc.Signup("user@test.com", "Name", "   ")
		testutil.AssertAppError(t, err, "VALIDATION_REJECTED")
	})

	t.Run("admin_identifier_taken", func(t *testing.T) {
		_, svc, _ := setupAccountService(t)

		_, _, err := svc.Signup(store.AdminEmail, "Impostor", "secret123")
		testutil.AssertAppError(t, err, "ACCOUNT_EXISTS")
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		st, svc, sessions := setupAccountService(t)
		email := testutil.CreateTestAccount(t, st)

		got, account, err := svc.Login(email, testutil.TestPassword)
		testutil.AssertNoError(t, err)
		if got != email || account == nil {
			t.Fatalf("expected account %q, got %q", email, got)
		}
		if active, ok := sessions.Current(); !ok || active != email {
			t.Errorf("login should activate the session, got %q ok=%v", active, ok)
		}
	})

	t.Run("admin_default_credentials", func(t *testing.T) {
		_, svc, _ := setupAccountService(t)

		email, account, err := svc.Login(store.AdminEmail, store.AdminPassword)
		testutil.AssertNoError(t, err)
		if email != store.AdminEmail || account.Name != store.AdminName {
			t.Errorf("expected administrator, got %q %q", email, account.Name)
		}
	})

	t.Run("unknown_account", func(t *testing.T) {
		_, svc, _ := setupAccountService(t)

		_, _, err := svc.Login("nobody@test.com", "whatever")
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("wrong_password_leaves_session", func(t *testing.T) {
		st, svc, sessions := setupAccountService(t)
		first := testutil.CreateTestAccount(t, st)
		second := testutil.CreateTestAccount(t, st)
		testutil.ActivateTestSession(t, st, first)

		_, _, err := svc.Login(second, "wrong-password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")

		if active, ok := sessions.Current(); !ok || active != first {
			t.Errorf("failed login must not disturb the session, got %q ok=%v", active, ok)
		}
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		st, svc, _ := setupAccountService(t)
		email := testutil.CreateTestAccount(t, st)

		err := svc.ChangePassword(email, testutil.TestPassword, "newpass456", "newpass456")
		testutil.AssertNoError(t, err)

		_, _, err = svc.Login(email, "newpass456")
		testutil.AssertNoError(t, err)

		_, _, err = svc.Login(email, testutil.TestPassword)
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("wrong_current_password", func(t *testing.T) {
		st, svc, _ := setupAccountService(t)
		email := testutil.CreateTestAccount(t, st)

		err := svc.ChangePassword(email, "wrong", "newpass456", "newpass456")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("confirmation_mismatch", func(t *testing.T) {
		st, svc, _ := setupAccountService(t)
		email := testutil.CreateTestAccount(t, st)

		err := svc.ChangePassword(email, testutil.TestPassword, "newpass456", "different")
		testutil.AssertAppError(t, err, "PASSWORD_MISMATCH")
	})

	t.Run("blank_new_password", func(t *testing.T) {
		st, svc, _ := setupAccountService(t)
		email := testutil.CreateTestAccount(t, st)

		err := svc.ChangePassword(email, testutil.TestPassword, "   ", "   ")
		testutil.AssertAppError(t, err, "PASSWORD_MISMATCH")
	})
}

func TestGetByEmail(t *testing.T) {
	st, svc, _ := setupAccountService(t)
	email := testutil.CreateTestAccount(t, st)

	account, err := svc.GetByEmail("  " + email + "  ")
	testutil.AssertNoError(t, err)
	if account == nil {
		t.Fatal("expected account for normalized lookup")
	}

	_, err = svc.GetByEmail("missing@test.com")
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}
