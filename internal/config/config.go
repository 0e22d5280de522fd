// Package config loads project settings from .gddgraph.yaml and GDDGRAPH_* variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/aretw0/gddgraph/internal/agents"
)

// FileName is the config file looked up in the project root, without extension.
const FileName = ".gddgraph"

// EnvPrefix prefixes environment overrides, e.g. GDDGRAPH_MAP or GDDGRAPH_AGENTS_SECTION.
const EnvPrefix = "GDDGRAPH"

// Config is the project configuration.
type Config struct {
	// Map is the graph source path, relative to the project root.
	Map string `mapstructure:"map"`
	// Report is where `validate --report` writes the markdown report.
	Report string `mapstructure:"report"`
	// Metrics is an optional Prometheus textfile path.
	Metrics string       `mapstructure:"metrics"`
	Agents  AgentsConfig `mapstructure:"agents"`
}

// AgentsConfig configures the agents section check.
type AgentsConfig struct {
	Section string   `mapstructure:"section"`
	Roster  []string `mapstructure:"roster"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Map:    "docs/system-map.yaml",
		Report: "docs/system-validation.md",
		Agents: AgentsConfig{
			Section: agents.DefaultSectionTitle,
			Roster:  append([]string(nil), agents.DefaultRoster...),
		},
	}
}

// Load reads the configuration for the project at root.
// explicit, when set, names a config file that must exist; otherwise
// .gddgraph.{yaml,yml,json,toml} is looked up in root and its absence is not an error.
func Load(fs afero.Fs, root, explicit string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetFs(fs)
	v.SetDefault("map", def.Map)
	v.SetDefault("report", def.Report)
	v.SetDefault("metrics", def.Metrics)
	v.SetDefault("agents.section", def.Agents.Section)
	v.SetDefault("agents.roster", def.Agents.Roster)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(filepath.Clean(root))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Map) == "" {
		return &Error{Field: "map", Message: "graph source path is empty"}
	}
	if len(c.Agents.Roster) == 0 {
		return &Error{Field: "agents.roster", Message: "roster is empty"}
	}
	return nil
}

// Error reports an invalid setting.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
