package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/envgate/envgate/config"
	"github.com/envgate/envgate/manifest"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a schema manifest interactively",
	Long: `Create a new schema manifest by answering prompts.

You will be asked for:
  - The client exposure prefix
  - Each variable's name, side (server or client), kind, and rule

An existing manifest is never overwritten without --force.`,
	RunE: runInit,
}

var initForce bool

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing manifest")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	path := cfg.Manifest.Path
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("manifest already exists: %s (use --force to overwrite)", path)
	}

	prefixPrompt := promptui.Prompt{
		Label:   "Client exposure prefix",
		Default: cfg.Prefix,
	}
	prefix, err := prefixPrompt.Run()
	if err != nil {
		return err
	}

	m := manifest.Manifest{
		Prefix: prefix,
		Server: make(map[string]manifest.Declaration),
		Client: make(map[string]manifest.Declaration),
	}

	for {
		namePrompt := promptui.Prompt{Label: "Variable name (empty to finish)"}
		name, err := namePrompt.Run()
		if err != nil {
			return err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			break
		}

		sideSelect := promptui.Select{
			Label: fmt.Sprintf("Side for %s", name),
			Items: []string{"server", "client"},
		}
		_, side, err := sideSelect.Run()
		if err != nil {
			return err
		}

		kindSelect := promptui.Select{
			Label: fmt.Sprintf("Kind for %s", name),
			Items: []string{"string", "int", "bool", "float", "duration", "url"},
		}
		_, kind, err := kindSelect.Run()
		if err != nil {
			return err
		}

		rulePrompt := promptui.Prompt{Label: "Constraint rule (optional)"}
		rule, err := rulePrompt.Run()
		if err != nil {
			return err
		}

		decl := manifest.Declaration{Kind: kind, Rule: strings.TrimSpace(rule)}
		if side == "server" {
			if strings.HasPrefix(name, prefix) {
				slog.Warn("server variable uses the exposure prefix; check will reject it", "key", name)
			}
			m.Server[name] = decl
		} else {
			if !strings.HasPrefix(name, prefix) {
				slog.Warn("client variable missing the exposure prefix; check will reject it", "key", name)
			}
			m.Client[name] = decl
		}
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	slog.Info("manifest written", "path", path,
		"server_vars", len(m.Server), "client_vars", len(m.Client))
	return nil
}
