package envgate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchemaValidation is returned when one or more declared variables
	// fail their schema constraints.
	ErrSchemaValidation = errors.New("environment schema validation failed")
	// ErrServerExposure is returned when a server variable is named with the
	// client exposure prefix.
	ErrServerExposure = errors.New("server variable uses client exposure prefix")
	// ErrClientExposure is returned when a client variable is named without
	// the client exposure prefix.
	ErrClientExposure = errors.New("client variable missing exposure prefix")
)

// FieldError describes a single variable that failed validation.
type FieldError struct {
	Key     string
	Message string
}

func (e FieldError) Error() string {
	return e.Key + ": " + e.Message
}

// SchemaError aggregates every field-level failure from both the server and
// the client schema. Server schema errors come first, in declaration-name
// order, followed by client schema errors.
type SchemaError struct {
	Fields []FieldError
}

func (e *SchemaError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		msgs[i] = fe.Error()
	}
	return "invalid environment variables: " + strings.Join(msgs, "; ")
}

func (e *SchemaError) Unwrap() error { return ErrSchemaValidation }

// Keys returns the names of all failing variables, in report order.
func (e *SchemaError) Keys() []string {
	keys := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		keys[i] = fe.Key
	}
	return keys
}

// Side identifies which schema an exposure violation belongs to.
type Side string

const (
	SideServer Side = "server"
	SideClient Side = "client"
)

// ExposureError reports variables that breach the exposure-prefix naming
// convention on one side. It unwraps to ErrServerExposure or
// ErrClientExposure depending on Side.
type ExposureError struct {
	Side   Side
	Prefix string
	Keys   []string
}

func (e *ExposureError) Error() string {
	switch e.Side {
	case SideServer:
		return fmt.Sprintf("server variables must not start with %q: %s", e.Prefix, strings.Join(e.Keys, ", "))
	default:
		return fmt.Sprintf("client variables must start with %q: %s", e.Prefix, strings.Join(e.Keys, ", "))
	}
}

func (e *ExposureError) Unwrap() error {
	if e.Side == SideServer {
		return ErrServerExposure
	}
	return ErrClientExposure
}
