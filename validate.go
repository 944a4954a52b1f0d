package envgate

import (
	"log/slog"
	"os"
	"strings"
)

// DefaultPrefix marks variables as safe for client-side exposure by the
// surrounding build system.
const DefaultPrefix = "NEXT_PUBLIC_"

// LookupFunc looks up a variable from the environment, reporting whether it
// is set. An unset variable and one set to the empty string are distinct.
type LookupFunc func(key string) (string, bool)

type options struct {
	prefix string
	lookup LookupFunc
	logger *slog.Logger
}

// Option configures Validate.
type Option func(*options)

// WithPrefix overrides the client exposure prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithLookup overrides the environment source. The default is os.LookupEnv;
// tests inject a map-backed lookup instead of mutating the process
// environment.
func WithLookup(fn LookupFunc) Option {
	return func(o *options) { o.lookup = fn }
}

// WithLogger sets the logger used for failure diagnostics. The default is
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Validate checks the process environment against both schemas, enforces the
// exposure-prefix convention, and returns the merged typed mapping.
//
// Both schemas are always validated so all value errors are reported
// together, even when the first schema already failed. The exposure checks
// run only after both validations pass: a malformed value is always reported
// before a naming violation, and a server naming violation is reported before
// a client one.
//
// On any failure the full list of offending variables is logged and a nil
// mapping is returned with a *SchemaError or *ExposureError; the error
// unwraps to ErrSchemaValidation, ErrServerExposure, or ErrClientExposure.
func Validate(client, server Schema, opts ...Option) (Env, error) {
	o := options{
		prefix: DefaultPrefix,
		lookup: os.LookupEnv,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	serverValues, serverErrs := server.Validate(subset(server.Keys(), o.lookup))
	clientValues, clientErrs := client.Validate(subset(client.Keys(), o.lookup))

	if len(serverErrs) > 0 || len(clientErrs) > 0 {
		all := make([]FieldError, 0, len(serverErrs)+len(clientErrs))
		all = append(all, serverErrs...)
		all = append(all, clientErrs...)

		err := &SchemaError{Fields: all}
		o.logger.Error("invalid environment variables", "errors", err.Keys())
		for _, fe := range all {
			o.logger.Error("environment variable rejected", "key", fe.Key, "reason", fe.Message)
		}
		return nil, err
	}

	if leaked := withPrefix(server.Keys(), o.prefix); len(leaked) > 0 {
		o.logger.Error("server variables must not use the client exposure prefix",
			"prefix", o.prefix, "keys", leaked)
		return nil, &ExposureError{Side: SideServer, Prefix: o.prefix, Keys: leaked}
	}

	if hidden := withoutPrefix(client.Keys(), o.prefix); len(hidden) > 0 {
		o.logger.Error("client variables missing the exposure prefix",
			"prefix", o.prefix, "keys", hidden)
		return nil, &ExposureError{Side: SideClient, Prefix: o.prefix, Keys: hidden}
	}

	merged := make(Env, len(serverValues)+len(clientValues))
	for k, v := range serverValues {
		merged[k] = v
	}
	for k, v := range clientValues {
		merged[k] = v
	}
	return merged, nil
}

// subset extracts the declared variables from the environment. Absent
// variables are left out of the map so schemas can tell absence from an
// empty string.
func subset(keys []string, lookup LookupFunc) map[string]string {
	raw := make(map[string]string, len(keys))
	for _, key := range keys {
		if value, ok := lookup(key); ok {
			raw[key] = value
		}
	}
	return raw
}

func withPrefix(keys []string, prefix string) []string {
	var matched []string
	for _, key := range keys {
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}
	return matched
}

func withoutPrefix(keys []string, prefix string) []string {
	var matched []string
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}
	return matched
}
