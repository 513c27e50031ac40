package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/lingua-match/internal/db"
	"github.com/jonathan/lingua-match/internal/profiles"
)

// ErrUserNotFound indicates the requested user has no profile
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStoreUnavailable indicates a route needs the profile store but none is configured
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "profile store not configured"
}

// ErrPayloadTooLarge indicates a request body over the size cap
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound    *ErrUserNotFound
		validation  *ErrValidation
		unavailable *ErrStoreUnavailable
		tooLarge    *ErrPayloadTooLarge
		loadErr     *profiles.LoadError
		profileErr  *profiles.ValidationError
	)
	switch {
	case errors.As(err, &notFound), errors.Is(err, db.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &loadErr), errors.As(err, &profileErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
