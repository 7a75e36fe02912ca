package appconf

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the optional YAML config file. Command
// line flags take precedence over it; see cmd/api.
type fileConfig struct {
	Server struct {
		Port               int      `yaml:"port" validate:"gte=0,lte=65535"`
		Env                string   `yaml:"env"`
		ApiKeys            []string `yaml:"api_keys"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	} `yaml:"server"`
	Search SearchTunables `yaml:"search"`
}

// LoadFromFile reads and validates a YAML config file and merges it into base.
// Values present in the file override the corresponding base values.
func LoadFromFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return base, fmt.Errorf("parsing config file: %w", err)
	}

	v := validator.New()
	if err := v.Struct(fc.Server); err != nil {
		return base, fmt.Errorf("invalid server config: %w", err)
	}
	if err := v.Struct(fc.Search); err != nil {
		return base, fmt.Errorf("invalid search config: %w", err)
	}

	merged := base
	if fc.Server.Port != 0 {
		merged.Port = fc.Server.Port
	}
	if fc.Server.Env != "" {
		merged.Env = EnvFlagToEnvironment(fc.Server.Env)
	}
	if len(fc.Server.ApiKeys) > 0 {
		merged.ApiKeys = fc.Server.ApiKeys
	}
	if len(fc.Server.CORSAllowedOrigins) > 0 {
		merged.CORSAllowedOrigins = fc.Server.CORSAllowedOrigins
	}
	merged.Search = fc.Search
	return merged, nil
}
