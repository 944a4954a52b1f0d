package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/envgate/envgate"
	"github.com/envgate/envgate/config"
	"github.com/envgate/envgate/manifest"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the current environment against the manifest",
	Long: `Read the schema manifest, validate the current process environment
against the server and client schemas, and enforce the client
exposure prefix.

Exits non-zero when any declared variable is missing or malformed,
when a server variable is named with the exposure prefix, or when a
client variable is named without it. Setting the escape-hatch
variable (SKIP_ENV_VALIDATION by default) to a truthy value skips
validation entirely.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	// Escape hatch: the integration layer decides to skip, never the library.
	if flag, ok := os.LookupEnv(cfg.SkipVar); ok && isTruthy(flag) {
		slog.Warn("skipping environment validation", "flag", cfg.SkipVar)
		return nil
	}

	m, err := manifest.Load(cfg.Manifest.Path)
	if err != nil {
		return err
	}

	client, server, err := m.Schemas()
	if err != nil {
		return err
	}

	prefix := m.Prefix
	if prefix == "" {
		prefix = cfg.Prefix
	}

	env, err := envgate.Validate(client, server, envgate.WithPrefix(prefix))
	if err != nil {
		return fmt.Errorf("environment check failed: %w", err)
	}

	slog.Info("environment valid", "variables", len(env))
	for _, key := range env.Keys() {
		slog.Debug("validated", "key", key)
	}
	return nil
}

// isTruthy matches the values build tooling conventionally accepts for
// boolean flags.
func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
