// Package errors defines AppError, a coded error that webservice failures
// and validation failures convert into, and its RFC 7807 rendering.
//
//	if appErr, ok := errors.As(err); ok {
//	    w.Header().Set("Content-Type", errors.ProblemContentType)
//	    w.WriteHeader(appErr.HTTPStatus())
//	    _ = json.NewEncoder(w).Encode(appErr.Problem())
//	}
package errors
