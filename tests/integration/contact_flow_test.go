package integration

import (
	"net/http"
	"testing"
)

func TestContactSubmissionIsPublic(t *testing.T) {
	app := setupApp(t)

	body := `{"name":"Jane","email":"jane@test.com","phone":"555-0101","purpose":"Question"}`
	rec := app.request("POST", "/api/v1/contact", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("contact submit failed: %d %s", rec.Code, rec.Body.String())
	}
	msg := parseJSON(t, rec)["message"].(map[string]interface{})
	if msg["id"] == "" {
		t.Error("expected a generated message id")
	}
}

func TestContactLogIsAdminOnly(t *testing.T) {
	app := setupApp(t)

	body := `{"name":"Jane","email":"jane@test.com","phone":"555-0101","purpose":"Question"}`
	app.request("POST", "/api/v1/contact", body, "")

	userToken := app.signup(t, "alice@test.com", "secret123")
	rec := app.request("GET", "/api/v1/contact", "", userToken)
	if rec.Code != http.StatusForbidden {
		t.Errorf("regular accounts must not read the log, got %d", rec.Code)
	}
	app.request("POST", "/api/v1/auth/logout", "", userToken)

	adminToken := app.login(t, "admin", "nimda")
	rec = app.request("GET", "/api/v1/contact", "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin list failed: %d %s", rec.Code, rec.Body.String())
	}
	if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 1 {
		t.Errorf("expected 1 logged message, got %d", len(data))
	}
}
