// Package service contains the scaffold driver that turns a source tree into
// a tree of skeleton test files.
package service

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"testscaffold/internal/application/common/logging"
	"testscaffold/internal/application/common/slogger"
	"testscaffold/internal/application/generator"
	"testscaffold/internal/config"
	"testscaffold/internal/port/outbound"
)

// Skip reasons recorded on the files-skipped counter.
const (
	skipReasonExtension  = "extension"
	skipReasonEntryPoint = "entry_point"
	skipReasonTestFile   = "test_file"
	skipReasonNoMethods  = "no_methods"
)

// RunSummary aggregates the outcome of one generation run.
type RunSummary struct {
	RunID            string
	FilesScanned     int
	FilesSkipped     int
	ParseFailures    int
	ClassesGenerated int
	MethodsGenerated int
	GeneratedFiles   []ManifestFile
}

// Scaffolder walks a source directory and writes one skeleton test file per
// qualifying source file. Execution is sequential and stateless across
// files; only the parser setup is shared.
type Scaffolder struct {
	config    config.GeneratorConfig
	extractor outbound.SignatureExtractor
	generator *generator.TestClassGenerator
	metrics   ScaffoldMetrics
}

// NewScaffolder wires the driver from its collaborators.
func NewScaffolder(
	cfg config.GeneratorConfig,
	extractor outbound.SignatureExtractor,
	gen *generator.TestClassGenerator,
	metrics ScaffoldMetrics,
) *Scaffolder {
	if metrics == nil {
		metrics = NewNoopScaffoldMetrics()
	}
	return &Scaffolder{
		config:    cfg,
		extractor: extractor,
		generator: gen,
		metrics:   metrics,
	}
}

// Run generates test skeletons for every qualifying file under sourceDir,
// mirroring relative paths under testDir. Filesystem errors abort the run;
// per-file parse failures are logged and skipped.
func (s *Scaffolder) Run(ctx context.Context, sourceDir, testDir string) (*RunSummary, error) {
	ctx, runID := logging.WithNewCorrelationID(ctx)
	startedAt := time.Now()
	summary := &RunSummary{RunID: runID}

	slogger.Info(ctx, "Starting test generation", slogger.Fields{
		"source_dir": sourceDir,
		"test_dir":   testDir,
	})

	walkErr := filepath.WalkDir(sourceDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		return s.processFile(ctx, sourceDir, testDir, path, summary)
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk source directory: %w", walkErr)
	}

	if s.config.ManifestPath != "" {
		manifest := RunManifest{
			RunID:       runID,
			SourceDir:   sourceDir,
			TestDir:     testDir,
			StartedAt:   startedAt,
			CompletedAt: time.Now(),
			Files:       summary.GeneratedFiles,
		}
		if err := WriteManifest(s.config.ManifestPath, manifest); err != nil {
			return nil, err
		}
		slogger.Info(ctx, "Wrote run manifest", slogger.Fields{"path": s.config.ManifestPath})
	}

	s.logMetricsSummary(ctx)

	slogger.Info(ctx, "Test generation complete", slogger.Fields{
		"files_scanned":     summary.FilesScanned,
		"files_skipped":     summary.FilesSkipped,
		"parse_failures":    summary.ParseFailures,
		"classes_generated": summary.ClassesGenerated,
		"methods_generated": summary.MethodsGenerated,
		"duration":          time.Since(startedAt).String(),
	})

	return summary, nil
}

// processFile handles a single walked file: filter, read, extract, generate,
// write.
func (s *Scaffolder) processFile(ctx context.Context, sourceDir, testDir, path string, summary *RunSummary) error {
	fileName := filepath.Base(path)
	if reason, skip := s.skipReason(fileName); skip {
		s.metrics.RecordFileSkipped(ctx, reason)
		summary.FilesSkipped++
		return nil
	}

	start := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source file %s: %w", path, err)
	}

	classes, err := s.extractor.ExtractClasses(ctx, source, outbound.ExtractionOptions{
		ExcludedMethodPrefixes: s.config.ExcludedMethodPrefixes,
	})
	if err != nil {
		// Parse failures degrade per-file; the walk continues.
		slogger.Warn(ctx, "Skipping file: extraction failed", slogger.Fields{
			"file":  path,
			"error": err.Error(),
		})
		s.metrics.RecordParseFailure(ctx)
		summary.ParseFailures++
		return nil
	}

	s.metrics.RecordFileScanned(ctx, time.Since(start))
	summary.FilesScanned++

	generated := s.generateUnits(ctx, classes)
	if len(generated.units) == 0 {
		s.metrics.RecordFileSkipped(ctx, skipReasonNoMethods)
		summary.FilesSkipped++
		return nil
	}

	relPath, err := filepath.Rel(sourceDir, path)
	if err != nil {
		return fmt.Errorf("relativize %s: %w", path, err)
	}
	baseName := strings.TrimSuffix(fileName, s.config.SourceExtension)
	outputRel := filepath.Join(filepath.Dir(relPath), s.config.TestFileName(baseName))
	outputPath := filepath.Join(testDir, outputRel)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o750); err != nil {
		return fmt.Errorf("create test directory for %s: %w", outputPath, err)
	}
	if err := os.WriteFile(outputPath, []byte(strings.Join(generated.units, "")), 0o600); err != nil {
		return fmt.Errorf("write test file %s: %w", outputPath, err)
	}

	for _, className := range generated.classNames {
		slogger.Info(ctx, "Generated tests", slogger.Fields{
			"class": className,
			"file":  outputPath,
		})
	}

	summary.ClassesGenerated += len(generated.classNames)
	summary.MethodsGenerated += generated.methodCount
	summary.GeneratedFiles = append(summary.GeneratedFiles, ManifestFile{
		Source:  relPath,
		Output:  outputRel,
		Classes: generated.classNames,
		Methods: generated.methodCount,
	})

	return nil
}

type generatedUnits struct {
	units       []string
	classNames  []string
	methodCount int
}

// generateUnits renders one test-class unit per class that has methods.
func (s *Scaffolder) generateUnits(ctx context.Context, classes []outbound.ClassInfo) generatedUnits {
	var out generatedUnits
	for _, class := range classes {
		if !class.HasMethods() {
			continue
		}
		out.units = append(out.units, s.generator.GenerateTestClass(class))
		out.classNames = append(out.classNames, class.Name)
		out.methodCount += len(class.Methods)
		s.metrics.RecordClassGenerated(ctx, len(class.Methods))
	}
	return out
}

// skipReason applies the driver filters: wrong extension, entry-point prefix,
// already a test file.
func (s *Scaffolder) skipReason(fileName string) (string, bool) {
	if !strings.HasSuffix(fileName, s.config.SourceExtension) {
		return skipReasonExtension, true
	}
	if s.config.EntryPointPrefix != "" && strings.HasPrefix(fileName, s.config.EntryPointPrefix) {
		return skipReasonEntryPoint, true
	}
	if strings.HasSuffix(fileName, s.config.TestFileSuffix+s.config.SourceExtension) {
		return skipReasonTestFile, true
	}
	return "", false
}

// logMetricsSummary collects and logs the accumulated counter totals.
func (s *Scaffolder) logMetricsSummary(ctx context.Context) {
	totals, err := s.metrics.Summary(ctx)
	if err != nil {
		slogger.Warn(ctx, "Failed to collect run metrics", slogger.Fields{"error": err.Error()})
		return
	}
	if len(totals) == 0 {
		return
	}

	fields := make(slogger.Fields, len(totals))
	for name, value := range totals {
		fields[name] = value
	}
	slogger.Info(ctx, "Run metrics", fields)
}
