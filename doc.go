// Package envgate validates process environment variables against declared
// client and server schemas at application startup.
//
// Envgate splits declared variables into two groups: server variables, which
// must never reach a browser bundle, and client variables, which the
// surrounding build tooling only exposes when their name carries a required
// prefix (NEXT_PUBLIC_ by default). Validation, prefix enforcement, and
// merging happen in one pass that either returns a complete typed mapping or
// fails with a structured error listing every offending variable.
//
// # Key Components
//
//   - Schema: interface for anything that can enumerate declared variable
//     names and validate a raw name→value subset
//   - Fields: the built-in Schema implementation, with constraint rules
//     checked by go-playground/validator and typed coercion per Kind
//   - Validate: the pipeline combining both schemas, the exposure checks,
//     and the merge
//   - Env: the merged validated mapping, with typed accessors and context
//     helpers for dependency injection
//
// # Failure Kinds
//
// Validate fails with exactly one of three error kinds, checked in order:
//
//   - ErrSchemaValidation: one or more variables fail their constraints;
//     errors from both schemas are aggregated into a single report
//   - ErrServerExposure: a server variable is named with the client prefix
//     and would leak into the client bundle
//   - ErrClientExposure: a client variable is missing the prefix and would
//     silently never be exposed
//
// # Example Usage
//
//	server := envgate.Fields{
//	    "NODE_ENV":     {Rule: "oneof=development test production"},
//	    "DATABASE_URL": {Kind: envgate.KindURL},
//	}
//	client := envgate.Fields{
//	    "NEXT_PUBLIC_APP_URL": {Kind: envgate.KindURL},
//	}
//
//	env, err := envgate.Validate(client, server)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Pass the validated environment along explicitly
//	ctx = envgate.WithContext(ctx, env)
//
// See the manifest package for YAML-declared schemas and cmd/envgate for the
// command line checker.
package envgate
