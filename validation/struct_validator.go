package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/resourcekit/errors"
)

// FieldError is one failed constraint, keyed by the field's config name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Messages per validator tag; %s receives the tag parameter.
var tagMessages = map[string]string{
	"required": "is required",
	"gt":       "must be greater than %s",
	"gte":      "must be at least %s",
	"max":      "must be at most %s characters",
	"url":      "must be a valid URL",
	"oneof":    "must be one of: %s",
}

var structValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(configName)
	return v
})

// configName reports a field by the name used in config files: the yaml
// tag, then the json tag, then the snake-cased Go name.
func configName(fld reflect.StructField) string {
	for _, key := range []string{"yaml", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return toSnakeCase(fld.Name)
}

// Validate checks s against its `validate` tags. Failures are returned as an
// INVALID_INPUT *errors.AppError whose "fields" detail lists every FieldError.
func Validate(s any) error {
	err := structValidator().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "validation failed").WithCause(err)
	}

	fields := make([]FieldError, len(verrs))
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{Field: fe.Field(), Message: describe(fe)}
		parts[i] = fields[i].Field + ": " + fields[i].Message
	}
	return errors.New(errors.ErrCodeInvalidInput, strings.Join(parts, "; ")).
		WithDetail("fields", fields)
}

func describe(fe validator.FieldError) string {
	msg, ok := tagMessages[fe.Tag()]
	if !ok {
		return "is invalid"
	}
	if strings.Contains(msg, "%s") {
		return strings.Replace(msg, "%s", fe.Param(), 1)
	}
	return msg
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
