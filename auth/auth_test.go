package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	tokens := NewTokens("testsecret", time.Hour)

	raw, err := tokens.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	uid, err := tokens.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if uid != 42 {
		t.Errorf("Parse() = %d, want 42", uid)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, err := NewTokens("secret-a", time.Hour).Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := NewTokens("secret-b", time.Hour).Parse(raw); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	tokens := NewTokens("testsecret", -time.Minute)
	raw, err := tokens.Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := tokens.Parse(raw); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	tokens := NewTokens("testsecret", time.Hour)
	if _, err := tokens.Parse("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestMiddlewareAndRequireAuth(t *testing.T) {
	tokens := NewTokens("testsecret", time.Hour)

	var seenID uint
	handler := tokens.Middleware(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})))

	// No token: rejected before the handler runs.
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	// Garbage token: same outcome.
	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bogus token, got %d", w.Code)
	}

	// Valid token: user id lands in the context.
	raw, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", w.Code)
	}
	if seenID != 7 {
		t.Errorf("handler saw user id %d, want 7", seenID)
	}
}
