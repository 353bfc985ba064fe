// Package config provides configuration management for the standex CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	SourcesDir   string `koanf:"sources_dir"`
	OutputDir    string `koanf:"output_dir"`
	CatalogPath  string `koanf:"catalog"`
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultSourcesDir = "pdfs"
	DefaultOutputDir  = "public/standards"
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=json
)

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		SourcesDir:   DefaultSourcesDir,
		OutputDir:    DefaultOutputDir,
		OutputFormat: DefaultOutput,
	}
}
