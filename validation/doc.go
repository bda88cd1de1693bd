// Package validation validates structs using `validate` tags.
//
//	type Config struct {
//	    Timeout time.Duration `validate:"gt=0"`
//	}
//	err := validation.Validate(cfg)
//
// Failures are returned as *errors.AppError with per-field details.
package validation
