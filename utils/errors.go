package utils

import "net/http"

// APIError is the typed error every service-level failure surfaces as. Readable
// errors carry messages safe to show the caller; internal ones are replaced with
// a generic message at the response boundary.
type APIError struct {
	Status   int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Readable bool   `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: "validation_error", Message: message, Readable: true}
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: "not_found", Message: message, Readable: true}
}

func NewConflictError(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Code: "conflict", Message: message, Readable: true}
}

func NewUnauthorizedError(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: "unauthorized", Message: message, Readable: true}
}

func NewInternalError(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Code: "internal_error", Message: message, Readable: false}
}
