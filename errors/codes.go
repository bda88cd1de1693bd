package errors

import "net/http"

// ErrorCode is a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeConnectionFailed: the upstream could not be reached.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout: the upstream did not answer in time.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeUnauthorized: the upstream rejected the credentials.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeInvalidFormat: the upstream answered with data that could not be decoded.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeInvalidInput: caller-supplied input or configuration is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

type codeInfo struct {
	title     string
	status    int
	retryable bool
}

var codes = map[ErrorCode]codeInfo{
	ErrCodeConnectionFailed: {"Upstream unavailable", http.StatusBadGateway, true},
	ErrCodeTimeout:          {"Upstream timeout", http.StatusGatewayTimeout, true},
	ErrCodeUnauthorized:     {"Unauthorized", http.StatusUnauthorized, false},
	ErrCodeInvalidFormat:    {"Invalid upstream response", http.StatusBadGateway, false},
	ErrCodeInvalidInput:     {"Invalid input", http.StatusBadRequest, false},
}

// HTTPStatus returns the status a server should answer with. Unknown codes
// map to 500.
func (c ErrorCode) HTTPStatus() int {
	if info, ok := codes[c]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Retryable reports whether repeating the operation may succeed.
func (c ErrorCode) Retryable() bool {
	return codes[c].retryable
}

// Title is a short human-readable summary of the code.
func (c ErrorCode) Title() string {
	if info, ok := codes[c]; ok {
		return info.title
	}
	return string(c)
}
