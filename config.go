package elmaws

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Endpoint providers selectable in configuration.
const (
	ProviderAWS                = "aws"
	ProviderDigitalOceanSpaces = "digitalocean-spaces"
)

// Config holds the configuration for a generation run.
type Config struct {
	// OutDir is the directory generated modules are written to.
	OutDir string `yaml:"out" validate:"required"`

	// Definitions lists the service definition files to generate from.
	Definitions []string `yaml:"definitions"`

	// Provider selects the endpoint provider for every generated
	// service: "aws" (default) or "digitalocean-spaces".
	Provider string `yaml:"provider" validate:"omitempty,oneof=aws digitalocean-spaces"`

	// ModulePrefix is the Elm module namespace, e.g. "AWS".
	ModulePrefix string `yaml:"modulePrefix"`
}

var validateConfig = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validateConfig.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return applyConfigDefaults(&cfg), nil
}

// applyConfigDefaults fills unset fields on a copy of cfg.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg
	if result.Provider == "" {
		result.Provider = ProviderAWS
	}
	if result.ModulePrefix == "" {
		result.ModulePrefix = "AWS"
	}
	return &result
}
