package envgate

import (
	"context"
	"errors"
	"sort"
	"time"
)

// Env is the merged, validated environment: every declared variable from both
// schemas keyed by name, values coerced per their Kind. It is produced once
// at startup and treated as read-only from then on.
type Env map[string]any

// Keys returns every variable name in sorted order.
func (e Env) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the variable was declared and validated.
func (e Env) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// String returns the variable as a string, or "" if missing or not a string.
func (e Env) String(key string) string {
	s, _ := e[key].(string)
	return s
}

// Int returns the variable as an int, or 0 if missing or not an int.
func (e Env) Int(key string) int {
	n, _ := e[key].(int)
	return n
}

// Bool returns the variable as a bool, or false if missing or not a bool.
func (e Env) Bool(key string) bool {
	b, _ := e[key].(bool)
	return b
}

// Float returns the variable as a float64, or 0 if missing or not a float.
func (e Env) Float(key string) float64 {
	x, _ := e[key].(float64)
	return x
}

// Duration returns the variable as a time.Duration, or 0 if missing or not a
// duration.
func (e Env) Duration(key string) time.Duration {
	d, _ := e[key].(time.Duration)
	return d
}

// envKey is the context key for storing the validated environment.
type envKey struct{}

// WithContext returns a new context carrying the validated environment.
func WithContext(ctx context.Context, env Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// FromContext retrieves the validated environment from context.
// Returns an error if no environment is stored.
func FromContext(ctx context.Context) (Env, error) {
	env, ok := ctx.Value(envKey{}).(Env)
	if !ok || env == nil {
		return nil, errors.New("validated environment not found in context")
	}
	return env, nil
}
