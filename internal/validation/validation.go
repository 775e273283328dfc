// Package validation runs struct-tag schemas over form values and reduces the
// result to one human-readable message per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name to its message. A field that is absent is valid.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return strings.Join(parts, "; ")
}

// Has reports whether field failed validation
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Messages keyed by "field.tag", with "tag" as the field-independent fallback
var defaultMessages = map[string]string{
	"email.required":    "Enter a valid email address",
	"email.email":       "Enter a valid email address",
	"password.min":      "Password must be at least 6 characters",
	"password.max":      "Password must be at most 128 characters",
	"name.min":          "Name is required",
	"name.required":     "Name is required",
	"provider.required": "Select a payment method",
	"planId.required":   "Select a plan",
	"required":          "This field is required",
}

// Validator wraps a validator.Validate configured to report JSON field names
type Validator struct {
	validate *validator.Validate
	messages map[string]string
}

// New creates a validator with the default messages
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	messages := make(map[string]string, len(defaultMessages))
	for k, msg := range defaultMessages {
		messages[k] = msg
	}

	return &Validator{validate: v, messages: messages}
}

// Struct validates s and returns nil when every field passes
func (v *Validator) Struct(s any) Errors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"": err.Error()}
	}

	result := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := result[field]; seen {
			continue
		}
		result[field] = v.message(fe)
	}
	return result
}

func (v *Validator) message(fe validator.FieldError) string {
	if msg, ok := v.messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := v.messages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	}
	return fmt.Sprintf("Failed the %q check", fe.Tag())
}
