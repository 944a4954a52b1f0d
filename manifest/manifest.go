package manifest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/envgate/envgate"
)

// Declaration is the YAML form of a single variable's constraints.
type Declaration struct {
	Kind     string `yaml:"kind"`
	Rule     string `yaml:"rule"`
	Optional bool   `yaml:"optional"`
	Default  string `yaml:"default"`
}

// Manifest is a YAML-declared pair of environment schemas.
type Manifest struct {
	// Prefix overrides the client exposure prefix. Empty means
	// envgate.DefaultPrefix.
	Prefix string                 `yaml:"prefix"`
	Server map[string]Declaration `yaml:"server"`
	Client map[string]Declaration `yaml:"client"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest from YAML. Unknown fields are rejected.
func Parse(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	for side, decls := range map[string]map[string]Declaration{
		"server": m.Server,
		"client": m.Client,
	} {
		for name, decl := range decls {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("%s section declares a variable with an empty name", side)
			}
			if _, err := envgate.ParseKind(decl.Kind); err != nil {
				return fmt.Errorf("%s variable %s: %w", side, name, err)
			}
		}
	}
	return nil
}

// Schemas compiles the manifest into envgate field sets.
func (m *Manifest) Schemas() (client, server envgate.Fields, err error) {
	server, err = compile(m.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("server schema: %w", err)
	}
	client, err = compile(m.Client)
	if err != nil {
		return nil, nil, fmt.Errorf("client schema: %w", err)
	}
	return client, server, nil
}

func compile(decls map[string]Declaration) (envgate.Fields, error) {
	fields := make(envgate.Fields, len(decls))
	for name, decl := range decls {
		kind, err := envgate.ParseKind(decl.Kind)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		fields[name] = envgate.Field{
			Kind:     kind,
			Rule:     decl.Rule,
			Optional: decl.Optional,
			Default:  decl.Default,
		}
	}
	return fields, nil
}
