// Package validation checks single values and bound request payloads with
// go-playground/validator and turns failures into app_errors validation errors.
package validation

import (
	"MiniLearn/internal/app_errors"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/nullable"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Field validates value against the validator tag and names the field on failure.
func Field(name string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return app_errors.Validation("%s", describe(name, err))
	}
	return nil
}

// Nullable validates a partial-update value. Absent values pass; an explicit
// null passes only when allowNull is set.
func Nullable[T any](name string, v nullable.Nullable[T], tag string, allowNull bool) error {
	if !v.IsSpecified() {
		return nil
	}
	if v.IsNull() {
		if allowNull {
			return nil
		}
		return app_errors.Validation("%s may not be null", name)
	}
	return Field(name, v.MustGet(), tag)
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Message renders binding errors (validator.ValidationErrors from gin) for clients.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(toSnake(fe.Field()), fe))
	}
	return strings.Join(msgs, "; ")
}

func describe(name string, err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldMessage(name, verrs[0])
	}
	return fmt.Sprintf("%s is invalid", name)
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "json":
		return fmt.Sprintf("%s must be valid JSON", name)
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", name, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", name, fe.Tag())
}

func toSnake(s string) string {
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
