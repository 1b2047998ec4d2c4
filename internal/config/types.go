// Package config loads the server configuration from a YAML file and
// the environment. It is decoupled from CLI concerns so the MCP server
// and debug commands share one loading path.
package config

import (
	"fmt"
	"strings"
)

// TenantConfig holds the platform REST connection settings.
type TenantConfig struct {
	// URL is the tenant base URL, e.g. "https://acme.lumina.cloud".
	URL string `koanf:"url"`

	// APIKey is the bearer token for the REST API and the engine.
	APIKey string `koanf:"api_key"`

	// PageSize is the listing page size (capped at the API maximum).
	PageSize int `koanf:"page_size"`
}

// EngineConfig holds the analytics engine WebSocket settings.
type EngineConfig struct {
	// URL is the engine endpoint, e.g. "wss://acme.lumina.cloud/engine".
	// Empty derives it from the tenant URL.
	URL string `koanf:"url"`
}

// PanelConfig holds the companion visual surface settings.
type PanelConfig struct {
	// Addr is the listen address of the panel host. Empty disables it.
	Addr string `koanf:"addr"`

	// Keep is how many recent panels are retained for polling.
	Keep int `koanf:"keep"`
}

// Config is the full server configuration.
type Config struct {
	Tenant TenantConfig `koanf:"tenant"`
	Engine EngineConfig `koanf:"engine"`
	Panel  PanelConfig  `koanf:"panel"`
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tenant.URL) == "" {
		return fmt.Errorf("tenant.url is required (or set LUMINA_TENANT_URL)")
	}
	if strings.TrimSpace(c.Tenant.APIKey) == "" {
		return fmt.Errorf("tenant.api_key is required (or set LUMINA_TENANT_API_KEY)")
	}
	return nil
}

// EngineURL returns the configured engine endpoint, deriving a wss://
// URL from the tenant URL when unset.
func (c *Config) EngineURL() string {
	if c.Engine.URL != "" {
		return c.Engine.URL
	}
	u := c.Tenant.URL
	u = strings.Replace(u, "https://", "wss://", 1)
	u = strings.Replace(u, "http://", "ws://", 1)
	return strings.TrimSuffix(u, "/") + "/engine"
}
