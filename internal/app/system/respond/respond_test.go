package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return body
}

func TestOK_MergesPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, Payload{"data": "hello", "count": 3})

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	body := decode(t, rec)
	if body["success"] != true {
		t.Errorf("success: got %v, want true", body["success"])
	}
	if body["data"] != "hello" {
		t.Errorf("data: got %v, want %q", body["data"], "hello")
	}
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, Payload{"data": map[string]any{"id": "abc"}})

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	if decode(t, rec)["success"] != true {
		t.Error("success: want true")
	}
}

func TestErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantMsg    string
	}{
		{"not found", func(w http.ResponseWriter) { NotFound(w, "Campaign not found") }, http.StatusNotFound, "Campaign not found"},
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "amount must be positive") }, http.StatusBadRequest, "amount must be positive"},
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w) }, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "Access denied") }, http.StatusForbidden, "Access denied"},
		{"internal", Internal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decode(t, rec)
			if body["success"] != false {
				t.Errorf("success: got %v, want false", body["success"])
			}
			if body["message"] != tt.wantMsg {
				t.Errorf("message: got %q, want %q", body["message"], tt.wantMsg)
			}
		})
	}
}
