package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/envgate/envgate/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "envgate",
	Short:   "Validate environment variables against declared schemas",
	Long: `Envgate checks the process environment against a YAML manifest that
declares server-only and client-exposed variables, enforcing the
client exposure prefix before the application starts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		var files []string
		if configFile != "" {
			files = []string{configFile}
		}

		cfg, err := config.Load(files, cmd.Flags())
		if err != nil {
			return err
		}

		setupLogging(cfg.Log)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./envgate.yaml)")
	rootCmd.PersistentFlags().String("manifest", "", "schema manifest path (default: env.yaml, env: ENVGATE_MANIFEST_PATH)")
	rootCmd.PersistentFlags().String("prefix", "", "client exposure prefix (default: NEXT_PUBLIC_, env: ENVGATE_PREFIX)")
	rootCmd.PersistentFlags().String("skip-var", "", "escape-hatch variable name (default: SKIP_ENV_VALIDATION, env: ENVGATE_SKIP_VAR)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: ENVGATE_LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
