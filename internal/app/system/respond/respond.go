// internal/app/system/respond/respond.go
package respond

import (
	"encoding/json"
	"net/http"
)

// Payload is the body of a success envelope. Keys are merged alongside
// the "success" flag, so a handler can shape its own top-level fields
// ("data", "top", "leaderboard", ...).
type Payload map[string]any

// JSON writes a success envelope with the given status code.
func JSON(w http.ResponseWriter, status int, p Payload) {
	body := Payload{"success": true}
	for k, v := range p {
		body[k] = v
	}
	write(w, status, body)
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, p Payload) { JSON(w, http.StatusOK, p) }

// Created writes a 201 success envelope.
func Created(w http.ResponseWriter, p Payload) { JSON(w, http.StatusCreated, p) }

// Error writes a failure envelope: { "success": false, "message": msg }.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, Payload{"success": false, "message": msg})
}

// BadRequest writes a 400 failure envelope (validation errors).
func BadRequest(w http.ResponseWriter, msg string) { Error(w, http.StatusBadRequest, msg) }

// Unauthorized writes a 401 failure envelope.
func Unauthorized(w http.ResponseWriter) { Error(w, http.StatusUnauthorized, "unauthorized") }

// Forbidden writes a 403 failure envelope.
func Forbidden(w http.ResponseWriter, msg string) { Error(w, http.StatusForbidden, msg) }

// NotFound writes a 404 failure envelope.
func NotFound(w http.ResponseWriter, msg string) { Error(w, http.StatusNotFound, msg) }

// Internal writes a 500 failure envelope. The underlying error is never
// echoed to the client; callers log it.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}

func write(w http.ResponseWriter, status int, body Payload) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
