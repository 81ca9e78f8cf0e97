// Package config holds the csift configuration, loadable from
// $HOME/.csift.yaml or a --config file with environment overrides.
package config

// Config represents the complete csift configuration.
type Config struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
}

// OutputConfig controls where the extract command writes its JSON files.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"` // directory for macros.json, types.json, apis.json
}

// PathsConfig defines which files a scan visits and which it skips.
type PathsConfig struct {
	Code   []string `yaml:"code" mapstructure:"code"`     // glob patterns for C sources and headers
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to ignore
}

// ScanConfig defines scan persistence and search index behavior.
type ScanConfig struct {
	Database   string `yaml:"database" mapstructure:"database"`       // SQLite scan database path
	Index      string `yaml:"index" mapstructure:"index"`             // bleve search index path
	CacheSize  int    `yaml:"cache_size" mapstructure:"cache_size"`   // MCP in-memory result cache capacity
	DebounceMS int    `yaml:"debounce_ms" mapstructure:"debounce_ms"` // watch-mode debounce interval
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir: "outputs",
		},
		Paths: PathsConfig{
			Code: []string{
				"**/*.c",
				"**/*.h",
			},
			Ignore: []string{
				"build/**",
				".git/**",
				".csift/**",
			},
		},
		Scan: ScanConfig{
			Database:   ".csift/scan.db",
			Index:      ".csift/index.bleve",
			CacheSize:  256,
			DebounceMS: 500,
		},
	}
}
