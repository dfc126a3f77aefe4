package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"testscaffold/internal/adapter/outbound/treesitter"
	"testscaffold/internal/application/common/logging"
	"testscaffold/internal/application/common/slogger"
	"testscaffold/internal/application/generator"
	"testscaffold/internal/application/service"
	"testscaffold/internal/config"
	"testscaffold/internal/version"
)

// generateCmd implements: testscaffold generate <source-dir> <test-dir>.
func newGenerateCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "generate <source-dir> <test-dir>",
		Short: "Generate skeleton test files for every C# file under a source directory",
		Long: `Generate walks the source directory recursively and, for every qualifying
C# file, writes a skeleton xUnit test file at the mirrored relative path
under the test directory (Calculator.cs -> CalculatorTests.cs).

Entry-point files (Program*) and existing test files (*Tests.cs) are
skipped. Classes without methods produce no output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg := GetConfig()
			if manifestPath != "" {
				appCfg.Generator.ManifestPath = manifestPath
			}
			return runGenerate(cmd, appCfg, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Optional path to write a YAML run manifest")

	return cmd
}

// runGenerate wires logger, parser, extractor, generator, metrics and driver,
// then executes the run.
func runGenerate(cmd *cobra.Command, appCfg *config.Config, sourceDir, testDir string) error {
	logger, err := logging.NewApplicationLogger(logging.Config{
		Level:  appCfg.Log.Level,
		Format: appCfg.Log.Format,
		Output: "stderr",
	})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	slogger.SetGlobalLogger(logger)

	ctx := context.Background()

	parser, err := treesitter.NewCSharpParser(ctx, treesitter.ParserConfig{
		MaxSourceSize: appCfg.Parser.MaxSourceSizeBytes,
		ParseTimeout:  appCfg.Parser.ParseTimeout,
	})
	if err != nil {
		return fmt.Errorf("init parser: %w", err)
	}
	extractor := treesitter.NewCSharpSignatureExtractor(parser)

	gen := generator.New(generator.Config{
		TestNamespace:      appCfg.Generator.TestNamespace,
		SourceNamespace:    appCfg.Generator.SourceNamespace(),
		TestFileSuffix:     appCfg.Generator.TestFileSuffix,
		MockVariablePrefix: appCfg.Generator.MockVariablePrefix,
	})

	metrics := service.NewNoopScaffoldMetrics()
	if appCfg.Metrics.Enabled {
		metrics, err = service.NewScaffoldMetrics(service.ScaffoldMetricsConfig{
			ServiceName:    "testscaffold",
			ServiceVersion: version.GetVersion(),
		})
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
	}

	scaffolder := service.NewScaffolder(appCfg.Generator, extractor, gen, metrics)
	summary, err := scaffolder.Run(ctx, sourceDir, testDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Test generation complete: %d test classes (%d test methods) from %d files.\n",
		summary.ClassesGenerated, summary.MethodsGenerated, summary.FilesScanned)

	return nil
}

func init() { //nolint:gochecknoinits // required by cobra for command registration
	rootCmd.AddCommand(newGenerateCmd())
}
