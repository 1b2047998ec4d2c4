package config

// Default configuration values.
const (
	DefaultPageSize  = 100
	DefaultPanelKeep = 50
)

// ApplyDefaults applies default values to a Config.
func (c *Config) ApplyDefaults() {
	if c.Tenant.PageSize <= 0 {
		c.Tenant.PageSize = DefaultPageSize
	}
	if c.Panel.Keep <= 0 {
		c.Panel.Keep = DefaultPanelKeep
	}
}
