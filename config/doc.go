// Package config provides configuration loading and validation for the
// envgate CLI.
//
// The package handles YAML configuration files, environment variables, and
// CLI flags with automatic merging and validation using
// go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (ENVGATE_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"envgate.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with ENVGATE_ prefix:
//   - manifest.path → ENVGATE_MANIFEST_PATH
//   - prefix → ENVGATE_PREFIX
//   - log.level → ENVGATE_LOG_LEVEL
//
// # Configuration Structure
//
// The Config struct contains:
//   - Manifest: path to the schema manifest
//   - Prefix: client exposure prefix
//   - SkipVar: name of the escape-hatch variable that skips validation
//   - Log: logging level and format
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Manifest path, prefix, and skip variable name must be set
//   - Log level must be debug, info, warn, or error
//   - Log format must be text or json
package config
