// Package config holds the viper-backed application configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Parser    ParserConfig    `mapstructure:"parser"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Log       LogConfig       `mapstructure:"log"`
}

// GeneratorConfig controls which source files qualify and how the generated
// test classes are shaped.
type GeneratorConfig struct {
	SourceExtension        string   `mapstructure:"source_extension"`
	EntryPointPrefix       string   `mapstructure:"entry_point_prefix"`
	TestFileSuffix         string   `mapstructure:"test_file_suffix"`
	TestNamespace          string   `mapstructure:"test_namespace"`
	ExcludedMethodPrefixes []string `mapstructure:"excluded_method_prefixes"`
	MockVariablePrefix     string   `mapstructure:"mock_variable_prefix"`
	ManifestPath           string   `mapstructure:"manifest_path"`
}

// TestFileName returns the generated file name for a source base name,
// e.g. "Calculator" -> "CalculatorTests.cs".
func (g GeneratorConfig) TestFileName(baseName string) string {
	return baseName + g.TestFileSuffix + g.SourceExtension
}

// SourceNamespace derives the namespace imported by generated files: the
// configured test namespace with its trailing test suffix removed.
func (g GeneratorConfig) SourceNamespace() string {
	return strings.TrimSuffix(g.TestNamespace, "."+g.TestFileSuffix)
}

// ParserConfig holds tree-sitter parser guards.
type ParserConfig struct {
	MaxSourceSizeBytes int64         `mapstructure:"max_source_size_bytes"`
	ParseTimeout       time.Duration `mapstructure:"parse_timeout"`
}

// MetricsConfig controls run metrics collection.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New creates a Config instance from Viper.
func New(v *viper.Viper) *Config {
	var config Config

	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("unable to decode config: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	return &config
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Generator.SourceExtension, ".") {
		return errors.New("generator.source_extension must start with '.'")
	}

	if c.Generator.TestFileSuffix == "" {
		return errors.New("generator.test_file_suffix is required")
	}

	if c.Generator.TestNamespace == "" {
		return errors.New("generator.test_namespace is required")
	}

	if c.Generator.MockVariablePrefix == "" {
		return errors.New("generator.mock_variable_prefix is required")
	}

	if c.Parser.MaxSourceSizeBytes < 1 {
		return errors.New("parser.max_source_size_bytes must be positive")
	}

	if c.Parser.ParseTimeout <= 0 {
		return errors.New("parser.parse_timeout must be positive")
	}

	return nil
}
