package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load materializes the configuration from viper on top of defaults.
// Missing keys keep their default values; a malformed config file is an
// error so typos don't silently fall back.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks constraints that would otherwise surface as confusing
// runtime failures.
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if len(c.Paths.Code) == 0 {
		return fmt.Errorf("paths.code must list at least one pattern")
	}
	if c.Scan.CacheSize <= 0 {
		return fmt.Errorf("scan.cache_size must be positive, got %d", c.Scan.CacheSize)
	}
	if c.Scan.DebounceMS <= 0 {
		return fmt.Errorf("scan.debounce_ms must be positive, got %d", c.Scan.DebounceMS)
	}
	return nil
}
