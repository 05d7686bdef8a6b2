package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/theme"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PUBSITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: PUBSITE_PORT -> port, etc.
	if err := k.Load(env.Provider("PUBSITE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PUBSITE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.DefaultTab == "" {
		return fmt.Errorf("default_tab is required")
	}

	for token := range c.Theme {
		if !theme.IsToken(token) {
			return fmt.Errorf("unknown theme token %q", token)
		}
	}

	if c.Relay.BaseURL != "" && !strings.HasPrefix(c.Relay.BaseURL, "http") {
		return fmt.Errorf("relay base_url %q must be an http(s) URL", c.Relay.BaseURL)
	}

	return nil
}

// ThemeSeed returns the configured theme tokens as a snapshot the manager
// layers its saved overrides on top of.
func (c *Config) ThemeSeed() theme.Snapshot {
	if len(c.Theme) == 0 {
		return theme.Snapshot{}
	}
	seed := make(theme.Snapshot, len(c.Theme))
	for token, value := range c.Theme {
		seed[token] = value
	}
	return seed
}
