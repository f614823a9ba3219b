package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user row no longer exists.
	ErrUserNotFound = errors.New("User not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("Email already registered")
	// ErrInvalidCredentials is returned for a wrong password or unknown email.
	// The same error covers both so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrPasswordIncorrect is returned when the current password re-check fails.
	ErrPasswordIncorrect = errors.New("Current password is incorrect")
	// ErrPropertyNotFound is returned when a property id is unknown.
	ErrPropertyNotFound = errors.New("Property not found")
	// ErrMaterialNotFound is returned when a material id is unknown.
	ErrMaterialNotFound = errors.New("Material not found")
	// ErrContactNotFound is returned when a contact id is unknown.
	ErrContactNotFound = errors.New("Contact not found")
	// ErrAlreadySubscribed is returned when an address is actively subscribed.
	ErrAlreadySubscribed = errors.New("Email already subscribed")
	// ErrSubscriberNotFound is returned when unsubscribing an unknown address.
	ErrSubscriberNotFound = errors.New("Email not found")
)

// ErrorResponse is the error half of the API envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse builds the envelope for an error message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// degrades to a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPropertyNotFound),
		errors.Is(err, ErrMaterialNotFound),
		errors.Is(err, ErrContactNotFound),
		errors.Is(err, ErrSubscriberNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrAlreadySubscribed):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrPasswordIncorrect):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Something went wrong!")
	}
}
