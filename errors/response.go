package errors

import "strings"

// ProblemContentType is the media type of a serialized Problem.
const ProblemContentType = "application/problem+json"

// Problem is an RFC 7807 problem details document.
type Problem struct {
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Status    int            `json:"status"`
	Detail    string         `json:"detail,omitempty"`
	Code      ErrorCode      `json:"code"`
	Retryable bool           `json:"retryable"`
	Details   map[string]any `json:"details,omitempty"`
}

// Problem converts the error into a problem document. The cause is not
// exposed.
func (e *AppError) Problem() Problem {
	return Problem{
		Type:      "urn:resourcekit:error:" + strings.ToLower(string(e.Code)),
		Title:     e.Code.Title(),
		Status:    e.HTTPStatus(),
		Detail:    e.Message,
		Code:      e.Code,
		Retryable: e.Retryable(),
		Details:   e.Details,
	}
}
