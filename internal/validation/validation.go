// Package validation implements aggregated request validation: every rule is
// checked and every violation recorded before the caller sees an error, so a
// response can name all invalid fields at once instead of failing on the
// first one.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern accepts the usual local@domain.tld shape. Deliberately loose;
// the address is only used as a login identifier.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Errors maps a field name to the list of rule violations recorded for it.
// It implements error so services can return it directly; callers unwrap it
// with errors.As.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// Validator accumulates rule violations across fields.
type Validator struct {
	errs Errors
}

func New() *Validator {
	return &Validator{errs: Errors{}}
}

// Add records a violation message for a field.
func (v *Validator) Add(field, msg string) {
	v.errs[field] = append(v.errs[field], msg)
}

// Require records a violation when value is empty.
func (v *Validator) Require(field, value string) {
	if value == "" {
		v.Add(field, fmt.Sprintf("The %s field is required.", label(field)))
	}
}

// MaxLen records a violation when value is longer than max characters.
// Empty values pass; combine with Require when the field is mandatory.
func (v *Validator) MaxLen(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		v.Add(field, fmt.Sprintf("The %s field must not be greater than %d characters.", label(field), max))
	}
}

// MinLen records a violation when a non-empty value is shorter than min
// characters.
func (v *Validator) MinLen(field, value string, min int) {
	if value != "" && utf8.RuneCountInString(value) < min {
		v.Add(field, fmt.Sprintf("The %s field must be at least %d characters.", label(field), min))
	}
}

// Email records a violation when a non-empty value is not a plausible
// email address.
func (v *Validator) Email(field, value string) {
	if value != "" && !emailPattern.MatchString(value) {
		v.Add(field, fmt.Sprintf("The %s field must be a valid email address.", label(field)))
	}
}

// Confirmed records a violation when the confirmation does not match the
// original value.
func (v *Validator) Confirmed(field, value, confirmation string) {
	if value != confirmation {
		v.Add(field, fmt.Sprintf("The %s field confirmation does not match.", label(field)))
	}
}

// Has reports whether any violation has been recorded for field. Useful for
// rules that only make sense on otherwise-valid input (e.g. a uniqueness
// lookup on a well-formed email).
func (v *Validator) Has(field string) bool {
	return len(v.errs[field]) > 0
}

// Err returns the accumulated Errors, or nil when every rule passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// label turns a payload field name into its human-readable form
// ("password_confirmation" -> "password confirmation").
func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
