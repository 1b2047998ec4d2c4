package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "lumina-mcp.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "lumina-mcp.yml"

// envPrefix is the prefix for environment overrides, e.g.
// LUMINA_TENANT_API_KEY maps to tenant.api_key.
const envPrefix = "LUMINA_"

// Load reads the configuration from an optional YAML file and the
// environment. path may be empty, in which case lumina-mcp.yaml /
// lumina-mcp.yml is searched in the current directory. Environment
// variables override file values. A missing file is not an error; a
// missing required field is (see [Config.Validate]).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		wd, err := os.Getwd()
		if err == nil {
			path = findConfigFile(wd)
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envToKey maps LUMINA_TENANT_API_KEY to tenant.api_key. The first
// underscore separates the section; the rest of the name keeps its
// underscores.
func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, rest, found := strings.Cut(s, "_")
	if !found {
		return section
	}
	return section + "." + rest
}

// findConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func findConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}
