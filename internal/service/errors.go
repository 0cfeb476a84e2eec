package service

import (
	"errors"
	"net/http"
)

// Error is the closed failure taxonomy of the service layer. Every failed
// operation surfaces as exactly one Error carrying the HTTP status and the
// human-readable message the transport boundary should report.
type Error struct {
	Status  int
	Message string

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches two service errors by status and message, so that predefined
// errors work with errors.Is even after a cause has been attached.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Status == t.Status && e.Message == t.Message
}

// WithCause returns a copy of e wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{Status: e.Status, Message: e.Message, cause: cause}
}

func NewValidationError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func NewAuthError(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func NewInternalError(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

var (
	ErrUserExists                = NewConflictError("User with this email or username already exists")
	ErrAvatarImageRequired       = NewValidationError("Avatar image is required")
	ErrAvatarFileRequired        = NewValidationError("Avatar file is required")
	ErrAvatarUploadFailed        = NewInternalError("Couldn't upload avatar")
	ErrRegistrationFailed        = NewInternalError("Something went wrong while registering user")
	ErrLoginIdentifierRequired   = NewValidationError("username or email is required")
	ErrUserNotFound              = NewNotFoundError("User with this username or email does not exists")
	ErrInvalidCredentials        = NewAuthError("Invalid credentials")
	ErrRefreshTokenGeneration    = NewInternalError("Something went wrong while generating refresh token")
	ErrIncorrectOldPassword      = NewValidationError("Incorrect old password")
	ErrAvatarUpdateFailed        = NewInternalError("Something went wrong while updating avatar")
	ErrTokenMissing              = NewAuthError("Token is missing")
	ErrTokenIsExpiredOrInvalid   = NewAuthError("Invalid token")
	ErrDetailsIdentifierRequired = NewValidationError("username or email is required")
)
