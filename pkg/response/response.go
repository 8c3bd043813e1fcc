// Package response writes the JSON envelope shared by every endpoint:
//
//	{"message": "Order placed", "data": {...}}
//	{"message": "Validation failed", "errors": {"items[0].quantity": "..."}}
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Write encodes body with the given status.
func Write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 with data.
func Success(w http.ResponseWriter, message string, data any) {
	Write(w, http.StatusOK, Envelope{Message: message, Data: data})
}

// Created sends a 201 with data.
func Created(w http.ResponseWriter, message string, data any) {
	Write(w, http.StatusCreated, Envelope{Message: message, Data: data})
}

// Error sends a message-only error body.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, Envelope{Message: message})
}

// ValidationError sends a 400 with the field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	Write(w, http.StatusBadRequest, Envelope{Message: "Validation failed", Errors: errs})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

// TooManyRequests sends a 429.
func TooManyRequests(w http.ResponseWriter) {
	Error(w, http.StatusTooManyRequests, "Too Many Requests")
}
