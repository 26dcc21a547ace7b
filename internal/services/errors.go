package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps field names to user-facing validation messages. A CRUD flow
// that fails with FieldErrors never reached the network; the form stays open
// with the messages scoped to their fields.
type FieldErrors map[string]string

// Error renders the messages in field order.
func (e FieldErrors) Error() string {
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

// fieldErrorsFrom converts validator violations into field-scoped messages.
// Other errors pass through unchanged.
func fieldErrorsFrom(err error) error {
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}

	fieldErrs := make(FieldErrors, len(violations))
	for _, v := range violations {
		fieldErrs[strings.ToLower(v.Field())] = fmt.Sprintf("field '%s' failed on the '%s' tag", v.Field(), v.Tag())
	}
	return fieldErrs
}
