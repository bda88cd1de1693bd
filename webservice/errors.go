package webservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/kbukum/resourcekit/errors"
)

// ErrorKind classifies a failed load.
type ErrorKind int

const (
	// Other covers an empty or undecodable response body.
	Other ErrorKind = iota
	// BadInput covers transport failures (connection, DNS, timeout) and
	// requests that could not be built.
	BadInput
	// NotAuthenticated indicates an HTTP 401 response.
	NotAuthenticated
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case NotAuthenticated:
		return "not_authenticated"
	case BadInput:
		return "bad_input"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Error is a classified load failure.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// StatusCode is the HTTP status code (0 when no response was received).
	StatusCode int
	// Message describes the failure.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("webservice: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("webservice: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// AppError converts the failure into an application error suitable for
// rendering to API clients. Transport failures caused by a deadline map to
// TIMEOUT, other transport failures to CONNECTION_FAILED.
func (e *Error) AppError() *apperrors.AppError {
	var appErr *apperrors.AppError
	switch {
	case e.Kind == NotAuthenticated:
		appErr = apperrors.New(apperrors.ErrCodeUnauthorized, "upstream requires authentication")
	case e.Kind == BadInput && isTimeout(e.Err):
		appErr = apperrors.New(apperrors.ErrCodeTimeout, "upstream did not respond in time")
	case e.Kind == BadInput:
		appErr = apperrors.New(apperrors.ErrCodeConnectionFailed, "upstream request failed")
	default:
		appErr = apperrors.New(apperrors.ErrCodeInvalidFormat, "upstream response could not be decoded")
	}
	if e.StatusCode > 0 {
		appErr.WithDetail("upstream_status", e.StatusCode)
	}
	return appErr.WithCause(e)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// newBadInputError wraps a transport or request-construction failure.
func newBadInputError(err error) *Error {
	return &Error{
		Kind:    BadInput,
		Message: err.Error(),
		Err:     err,
	}
}

// newNotAuthenticatedError reports a 401 response.
func newNotAuthenticatedError() *Error {
	return &Error{
		Kind:       NotAuthenticated,
		StatusCode: http.StatusUnauthorized,
		Message:    "HTTP 401",
	}
}

// newDecodeError reports an empty body or a parse failure.
func newDecodeError(statusCode int, err error) *Error {
	msg := "empty response body"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Kind:       Other,
		StatusCode: statusCode,
		Message:    msg,
		Err:        err,
	}
}

// KindOf returns the kind of err and whether err is an *Error. A nil *Error,
// such as Err() of a successful Result, has no kind.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind, true
	}
	return Other, false
}

// IsNotAuthenticated checks if an error is a 401 failure.
func IsNotAuthenticated(err error) bool {
	k, ok := KindOf(err)
	return ok && k == NotAuthenticated
}

// IsBadInput checks if an error is a transport failure.
func IsBadInput(err error) bool {
	k, ok := KindOf(err)
	return ok && k == BadInput
}

// IsOther checks if an error is a decode failure.
func IsOther(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Other
}
