package envgate

import (
	"fmt"
	"strconv"
	"time"
)

// Kind selects the Go type a validated variable is coerced to. Environment
// values are always strings at the OS boundary; coercion happens only after
// the constraint rule passes.
type Kind string

const (
	KindString   Kind = "string"
	KindInt      Kind = "int"
	KindBool     Kind = "bool"
	KindFloat    Kind = "float"
	KindDuration Kind = "duration"
	KindURL      Kind = "url"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindString, KindInt, KindBool, KindFloat, KindDuration, KindURL:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindString, nil
	}
	kind := Kind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid kind: %s (valid kinds: string, int, bool, float, duration, url)", s)
	}
	return kind, nil
}

// Field declares the constraint on a single environment variable.
//
// Rule is a go-playground/validator tag string evaluated against the raw
// string value, e.g. "oneof=development test production" or "min=1".
// An absent variable is distinct from one set to the empty string: absence
// with no Default fails as required unless the field is Optional, while an
// empty string is validated like any other value.
type Field struct {
	// Kind of the coerced value. The zero value means string.
	Kind Kind
	// Rule is the validator tag applied to the raw string value. Empty means
	// no constraint beyond the Kind coercion.
	Rule string
	// Optional fields are omitted from the validated mapping when absent
	// instead of failing.
	Optional bool
	// Default is substituted when the variable is absent, then validated and
	// coerced like a real value.
	Default string
}

// coerce converts a raw string value to the field's Kind.
func (f Field) coerce(value string) (any, error) {
	switch f.Kind {
	case KindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an integer", value)
		}
		return n, nil
	case KindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a boolean", value)
		}
		return b, nil
	case KindFloat:
		x, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a number", value)
		}
		return x, nil
	case KindDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a duration", value)
		}
		return d, nil
	default:
		// KindURL keeps the string; the url rule already validated its shape.
		return value, nil
	}
}
