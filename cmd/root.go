// Package cmd provides the command-line interface for testscaffold.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testscaffold/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "testscaffold",
	Short: "Generate skeleton xUnit tests for C# source trees",
	Long: `testscaffold walks a directory of C# source files, parses each file with
tree-sitter, extracts class, constructor and method signatures, and emits one
skeleton xUnit test file per source file.

Generated tests instantiate each class (mocking interface-typed constructor
dependencies with Moq) and invoke each method with synthesized default
arguments. They bootstrap line coverage; assertions are placeholders to
refine by hand.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format (json, text)")

	// Bind flags to viper
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
	}
	if err := viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-format flag: %v\n", err)
	}
}

func initConfig() {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Set config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Environment variables
	v.SetEnvPrefix("TESTSCAFFOLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read configuration
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
		// Config file not found; use defaults and environment
	}

	// Load configuration
	cfg = config.New(v)
}

func setDefaults(v *viper.Viper) {
	// Generator defaults
	v.SetDefault("generator.source_extension", ".cs")
	v.SetDefault("generator.entry_point_prefix", "Program")
	v.SetDefault("generator.test_file_suffix", "Tests")
	v.SetDefault("generator.test_namespace", "YourProject.Tests")
	v.SetDefault("generator.excluded_method_prefixes", []string{"Test", "Arrange", "Act", "Assert"})
	v.SetDefault("generator.mock_variable_prefix", "mock")
	v.SetDefault("generator.manifest_path", "")

	// Parser defaults
	v.SetDefault("parser.max_source_size_bytes", 10*1024*1024)
	v.SetDefault("parser.parse_timeout", "30s")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
