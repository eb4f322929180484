package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	for i := range cfg.Groups {
		g := &cfg.Groups[i]
		if g.Action == "" {
			g.Action = ActionCompose
		}
	}

	if cfg.Note == "" {
		cfg.Note = defaultNote(cfg.Groups)
	}
}

// defaultNote describes which groups were kept direct, mirroring the
// provenance note recorded with composition metadata.
func defaultNote(groups []Group) string {
	var direct []string
	for _, g := range groups {
		if g.Action == ActionDirect {
			direct = append(direct, g.Name)
		}
	}

	if len(direct) == 0 {
		return "no fields kept direct"
	}

	return strings.Join(direct, ", ") + " fields kept direct (typed identifiers)"
}
