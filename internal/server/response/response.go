// Package response defines the JSON envelope every API endpoint writes:
// a data field on success, an error object on failure, never both.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/modelatlas/modelatlas/pkg/errors"
)

// Response is the wire envelope.
type Response struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
}

// Error carries a stable machine-readable code alongside the message.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// JSON writes resp with the given status. Encoding failures after the
// header is sent cannot be reported to the client and are dropped.
func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// OK writes a 200 with the data envelope.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Response{Data: data})
}

func fail(w http.ResponseWriter, status int, code, message, details string) {
	JSON(w, status, Response{Error: &Error{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// BadRequest writes a 400 error.
func BadRequest(w http.ResponseWriter, message, details string) {
	fail(w, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

// NotFound writes a 404 error.
func NotFound(w http.ResponseWriter, message, details string) {
	fail(w, http.StatusNotFound, "NOT_FOUND", message, details)
}

// MethodNotAllowed writes a 405 error naming the rejected method.
func MethodNotAllowed(w http.ResponseWriter, method string) {
	fail(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED",
		"Method not allowed", "Method "+method+" is not supported for this endpoint")
}

// InternalError writes a 500. The underlying error stays in the server
// logs and is never exposed to the client.
func InternalError(w http.ResponseWriter, _ error) {
	fail(w, http.StatusInternalServerError, "INTERNAL_ERROR",
		"Internal server error", "An unexpected error occurred")
}

// ServiceUnavailable writes a 503 error.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	fail(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE",
		"Service unavailable", message)
}

// ErrorFromType translates registry errors into HTTP statuses using the
// package sentinels: missing records and unknown collections are 404s,
// rejected input is a 400, anything else a 500.
func ErrorFromType(w http.ResponseWriter, err error) {
	switch {
	case errors.IsNotFound(err), errors.IsUnknownCollection(err):
		NotFound(w, err.Error(), "")
	case errors.IsValidationError(err):
		BadRequest(w, err.Error(), "")
	default:
		InternalError(w, err)
	}
}
