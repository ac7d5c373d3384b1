package apperrors

import "net/http"

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// Predefined errors for the auth and job domains.

// ErrEmailAlreadyExists is returned on registration with a taken email.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials carries the same message for an unknown email and
// a wrong password, so login gives no enumeration signal.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid Credentials",
	http.StatusUnauthorized,
)

// ErrInvalidToken covers bad signature, malformed payload and expiry alike.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUserNotFound is the 404 for a profile whose user no longer exists.
var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound,
)

// ErrJobNotFound is returned for a missing record, a malformed record id
// and a record owned by someone else. The three cases are indistinguishable
// on the wire so non-owners cannot confirm a record exists.
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"No job found",
	http.StatusNotFound,
)
