package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testVerifier() *Verifier {
	return NewVerifier("test-signing-key-0123456789", "fundhub-test", zap.NewNop())
}

func TestParse_RoundTrip(t *testing.T) {
	v := testVerifier()

	tok, err := v.Mint(SessionUser{ID: "abc123", Name: "Dana Donor", Email: "dana@test.com", Role: "donor"}, time.Hour)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	u, err := v.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.ID != "abc123" {
		t.Errorf("ID: got %q, want %q", u.ID, "abc123")
	}
	if u.Role != "donor" {
		t.Errorf("Role: got %q, want %q", u.Role, "donor")
	}
	if u.Email != "dana@test.com" {
		t.Errorf("Email: got %q, want %q", u.Email, "dana@test.com")
	}
}

func TestParse_Rejections(t *testing.T) {
	v := testVerifier()

	t.Run("garbage token", func(t *testing.T) {
		if _, err := v.Parse("not.a.token"); err == nil {
			t.Error("expected error for garbage token")
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		other := NewVerifier("a-completely-different-key", "fundhub-test", zap.NewNop())
		tok, err := other.Mint(SessionUser{ID: "abc", Role: "donor"}, time.Hour)
		if err != nil {
			t.Fatalf("Mint: %v", err)
		}
		if _, err := v.Parse(tok); err == nil {
			t.Error("expected error for token signed with a different key")
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewVerifier("test-signing-key-0123456789", "someone-else", zap.NewNop())
		tok, err := other.Mint(SessionUser{ID: "abc", Role: "donor"}, time.Hour)
		if err != nil {
			t.Fatalf("Mint: %v", err)
		}
		if _, err := v.Parse(tok); err == nil {
			t.Error("expected error for wrong issuer")
		}
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := v.Mint(SessionUser{ID: "abc", Role: "donor"}, -time.Minute)
		if err != nil {
			t.Fatalf("Mint: %v", err)
		}
		if _, err := v.Parse(tok); err != ErrExpiredToken {
			t.Errorf("got %v, want ErrExpiredToken", err)
		}
	})
}

func TestLoadBearerUser(t *testing.T) {
	v := testVerifier()
	tok, err := v.Mint(SessionUser{ID: "abc123", Name: "Dana", Role: "donor"}, time.Hour)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	var got *SessionUser
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = CurrentUser(r)
	})

	t.Run("valid token injects user", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		v.LoadBearerUser(next).ServeHTTP(httptest.NewRecorder(), req)

		if !found {
			t.Fatal("expected user in context")
		}
		if got.ID != "abc123" {
			t.Errorf("ID: got %q, want %q", got.ID, "abc123")
		}
	})

	t.Run("missing header continues anonymously", func(t *testing.T) {
		found = false
		req := httptest.NewRequest("GET", "/", nil)
		v.LoadBearerUser(next).ServeHTTP(httptest.NewRecorder(), req)
		if found {
			t.Error("expected no user in context")
		}
	})

	t.Run("malformed token continues anonymously", func(t *testing.T) {
		found = false
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		v.LoadBearerUser(next).ServeHTTP(httptest.NewRecorder(), req)
		if found {
			t.Error("expected no user in context")
		}
	})
}

func TestRequireSignedIn(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("anonymous gets 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireSignedIn(next).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("signed-in passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := WithTestUser(httptest.NewRequest("GET", "/", nil), &SessionUser{ID: "abc", Role: "donor"})
		RequireSignedIn(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := RequireRole("organizer", "admin")

	tests := []struct {
		name string
		user *SessionUser
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"donor forbidden", &SessionUser{ID: "a", Role: "donor"}, http.StatusForbidden},
		{"organizer allowed", &SessionUser{ID: "b", Role: "organizer"}, http.StatusOK},
		{"admin allowed case-insensitive", &SessionUser{ID: "c", Role: "Admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.user != nil {
				req = WithTestUser(req, tt.user)
			}
			rec := httptest.NewRecorder()
			mw(next).ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
