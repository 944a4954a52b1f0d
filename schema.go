package envgate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// Schema describes a set of declared environment variables. Validate receives
// the raw subset of the environment covering exactly the declared names;
// absent variables are omitted from the map entirely rather than mapped to
// the empty string.
//
// Implementations report either the coerced values or a list of per-field
// errors, never both.
type Schema interface {
	// Keys returns every declared variable name.
	Keys() []string
	// Validate checks the raw subset and returns coerced values keyed by
	// variable name, or the field errors in a stable order.
	Validate(raw map[string]string) (map[string]any, []FieldError)
}

// Fields is the built-in Schema implementation: a set of variable names with
// their constraint rules. The zero-value Field declares a required string
// with no extra constraints.
type Fields map[string]Field

// fieldValidator evaluates Field rules. A single instance caches compiled
// tags and is safe for concurrent use.
var fieldValidator = validator.New()

// Keys returns the declared variable names in sorted order.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate implements Schema. Fields are checked in sorted name order so
// error reports are deterministic.
func (f Fields) Validate(raw map[string]string) (map[string]any, []FieldError) {
	values := make(map[string]any, len(f))
	var fieldErrs []FieldError

	for _, key := range f.Keys() {
		field := f[key]

		value, present := raw[key]
		if !present {
			switch {
			case field.Default != "":
				value = field.Default
			case field.Optional:
				continue
			default:
				fieldErrs = append(fieldErrs, FieldError{Key: key, Message: "required"})
				continue
			}
		}

		if msg := field.check(value); msg != "" {
			fieldErrs = append(fieldErrs, FieldError{Key: key, Message: msg})
			continue
		}

		coerced, err := field.coerce(value)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Key: key, Message: err.Error()})
			continue
		}
		values[key] = coerced
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return values, nil
}

// check runs the field's validator rule against the raw value and returns an
// empty string on success. KindURL implies the url rule even when no explicit
// rule is declared.
func (f Field) check(value string) string {
	rule := f.Rule
	if f.Kind == KindURL && rule == "" {
		rule = "url"
	}
	if rule == "" {
		return ""
	}

	err := fieldValidator.Var(value, rule)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("value %q fails rule %q", value, verrs[0].Tag())
	}
	return fmt.Sprintf("value %q fails rule %q", value, rule)
}
