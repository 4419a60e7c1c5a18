package apperrors

import "net/http"

// Factories for common business errors. Repository sentinels (for example
// gorm.ErrRecordNotFound mapped errors) get wrapped here before they reach
// the handler layer.

// ErrNotFound wraps a lookup miss as a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrDatabase wraps an unexpected store failure as a 500 with a generic
// user-facing message.
func ErrDatabase(err error, domain string) *AppError {
	return Wrap(err, CodeDatabaseError, domain, "Something went wrong", http.StatusInternalServerError)
}

// ErrInvalidOperation builds a 400 for requests the state machine rejects.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}
