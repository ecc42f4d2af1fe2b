package models

import "errors"

// ErrorKind classifies an AppError for HTTP mapping.
type ErrorKind int

const (
	// KindValidation is a missing or malformed required field.
	KindValidation ErrorKind = iota
	// KindNotFound is a reference to an entity that does not exist.
	KindNotFound
	// KindConflict is an ambiguous doctor match that needs out-of-band
	// resolution.
	KindConflict
	// KindInternal is an unexpected storage or service failure.
	KindInternal
)

// AppError is the failure result of a core operation. Every operation either
// returns its result or exactly one AppError; nothing is retried here.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{Kind: KindInternal, Message: message}
}

// ErrNoSuchDoctor means zero doctors matched the requested department and
// name.
func ErrNoSuchDoctor() *AppError {
	return NewNotFoundError("No such doctor found")
}

// ErrDoctorConflict means more than one doctor matched; the caller must
// disambiguate out-of-band instead of the system guessing.
func ErrDoctorConflict() *AppError {
	return NewConflictError("Doctor Conflict! Please Contact Through Phone or Email")
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool   { return IsKind(err, KindNotFound) }
func IsConflict(err error) bool   { return IsKind(err, KindConflict) }
func IsValidation(err error) bool { return IsKind(err, KindValidation) }
