/*
Package config loads runtime settings for the leave planner.

SOURCES (later wins):
  1. Built-in defaults (SetDefaults)
  2. Optional YAML or JSON file (--config)
  3. Environment variables prefixed LEAVE_, with "__" as the key separator
     e.g. LEAVE_SERVER__PORT=9090, LEAVE_PLANNER__STANDARD_ALLOCATION=28

Validation uses go-playground/validator struct tags.

SEE ALSO:
  - logging.go: zerolog setup from LoggingConfig
  - cmd/server/main.go: flag wiring
*/
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LEAVE_"

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Planner  PlannerConfig  `json:"planner"`
	Logging  LoggingConfig  `json:"logging"`
	Metrics  MetricsConfig  `json:"metrics"`
}

type ServerConfig struct {
	Port           int      `json:"port" validate:"min=1,max=65535"`
	AllowedOrigins []string `json:"allowed_origins" validate:"min=1"`
}

type DatabaseConfig struct {
	// Path of the SQLite file holding custom holidays. ":memory:" is allowed.
	Path string `json:"path" validate:"required"`
}

type PlannerConfig struct {
	// StandardAllocation is the yearly entitlement the balance ratio is measured against.
	StandardAllocation int    `json:"standard_allocation" validate:"gt=0"`
	DefaultRegion      string `json:"default_region"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled"`
}

// SetDefaults fills zero values.
func (c *Config) SetDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if c.Database.Path == "" {
		c.Database.Path = "./leave-planner.db"
	}
	if c.Planner.StandardAllocation == 0 {
		c.Planner.StandardAllocation = 25
	}
	if c.Planner.DefaultRegion == "" {
		c.Planner.DefaultRegion = "england-and-wales"
	}
	c.Logging.SetDefaults()
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads the config file at path (skipped when empty), applies LEAVE_
// environment overrides, then defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	// Env values arrive as one string; accept a comma-separated origin list.
	if raw, ok := k.Get("server.allowed_origins").(string); ok {
		cfg.Server.AllowedOrigins = splitList(raw)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
