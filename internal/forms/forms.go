// Package forms implements the per-field validation and sanitization
// pipeline applied to create-form submissions.
//
// Each field runs an ordered chain: trim first, then checks, then
// escaping. Checks never short-circuit; every violation is collected so
// a re-rendered form can surface all problems at once, together with the
// user's original input.
package forms

import (
	"html"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// DateLayout is the unambiguous international date format accepted by
// the optional date fields.
const DateLayout = "2006-01-02"

// FieldError is a single field-scoped validation message.
type FieldError struct {
	Field   string
	Message string
}

// Form collects field errors across a whole submission.
type Form struct {
	errors []FieldError
}

func New() *Form {
	return &Form{}
}

// Field starts a validation chain for a named input value.
func (f *Form) Field(name, value string) *Field {
	return &Field{form: f, name: name, value: value}
}

// AddError records an error outside a field chain, e.g. a failed
// reference-existence check.
func (f *Form) AddError(field, message string) {
	f.errors = append(f.errors, FieldError{Field: field, Message: message})
}

func (f *Form) Valid() bool {
	return len(f.errors) == 0
}

func (f *Form) Errors() []FieldError {
	return f.errors
}

// OptionalDate validates an optional date input. An empty value is
// accepted and reported as unset; anything else must parse as
// DateLayout or a field error is recorded.
func (f *Form) OptionalDate(name, value, message string) *time.Time {
	trimmed := trim(value)
	if trimmed == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		f.AddError(name, message)
		return nil
	}
	return &t
}

// Field is one value moving through the pipeline. Checks append to the
// parent form and keep going; sanitizers rewrite the value in place.
type Field struct {
	form  *Form
	name  string
	value string
}

// Trim strips surrounding whitespace. Always the first stage.
func (fl *Field) Trim() *Field {
	fl.value = trim(fl.value)
	return fl
}

// Required records an error when the value is empty.
func (fl *Field) Required(message string) *Field {
	return fl.MinLength(1, message)
}

// MinLength records an error when the value is shorter than n runes.
func (fl *Field) MinLength(n int, message string) *Field {
	if utf8.RuneCountInString(fl.value) < n {
		fl.form.AddError(fl.name, message)
	}
	return fl
}

// Alphanumeric records an error unless the value consists solely of
// ASCII letters and digits. An empty value fails this check too, so a
// missing name collects both the length and the character-class error.
func (fl *Field) Alphanumeric(message string) *Field {
	if !alphanumeric.MatchString(fl.value) {
		fl.form.AddError(fl.name, message)
	}
	return fl
}

// Escape encodes HTML metacharacters so stored text is inert when
// redisplayed.
func (fl *Field) Escape() *Field {
	fl.value = html.EscapeString(fl.value)
	return fl
}

// Value returns the sanitized value after the chain has run.
func (fl *Field) Value() string {
	return fl.value
}

// EscapeAll escapes each element of a multi-valued input. A nil slice
// comes back as an empty one, normalizing an absent selection.
func EscapeAll(values []string) []string {
	escaped := make([]string, 0, len(values))
	for _, v := range values {
		escaped = append(escaped, html.EscapeString(v))
	}
	return escaped
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
