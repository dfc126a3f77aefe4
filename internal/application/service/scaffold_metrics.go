package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Metric names following OpenTelemetry naming conventions for the scaffold run.
const (
	FilesScannedCounterName     = "scaffold_files_scanned_total"
	FilesSkippedCounterName     = "scaffold_files_skipped_total"
	ParseFailuresCounterName    = "scaffold_parse_failures_total"
	ClassesGeneratedCounterName = "scaffold_test_classes_generated_total"
	MethodsGeneratedCounterName = "scaffold_test_methods_generated_total"
	FileDurationHistogramName   = "scaffold_file_duration_seconds"
)

// AttrSkipReason labels skip counters with why a file was passed over.
const AttrSkipReason = "reason"

// ScaffoldMetrics records observability signals for one generation run.
type ScaffoldMetrics interface {
	RecordFileScanned(ctx context.Context, duration time.Duration)
	RecordFileSkipped(ctx context.Context, reason string)
	RecordParseFailure(ctx context.Context)
	RecordClassGenerated(ctx context.Context, methodCount int)

	// Summary collects the counter totals accumulated so far. Runs are batch
	// one-shots, so totals are read once at the end instead of being exported.
	Summary(ctx context.Context) (map[string]int64, error)
}

// ScaffoldMetricsConfig holds construction parameters for run metrics.
type ScaffoldMetricsConfig struct {
	ServiceName    string
	ServiceVersion string
}

// otelScaffoldMetrics implements ScaffoldMetrics with OpenTelemetry
// instruments behind a manual reader.
type otelScaffoldMetrics struct {
	reader *sdkmetric.ManualReader

	filesScanned     metric.Int64Counter
	filesSkipped     metric.Int64Counter
	parseFailures    metric.Int64Counter
	classesGenerated metric.Int64Counter
	methodsGenerated metric.Int64Counter
	fileDuration     metric.Float64Histogram
}

// NewScaffoldMetrics creates run metrics with a dedicated meter provider and
// manual reader, keeping the collection local to the process.
func NewScaffoldMetrics(config ScaffoldMetricsConfig) (ScaffoldMetrics, error) {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", config.ServiceName),
			attribute.String("service.version", config.ServiceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	meter := provider.Meter("testscaffold/scaffolder")

	filesScanned, err := meter.Int64Counter(FilesScannedCounterName,
		metric.WithDescription("Total number of qualifying source files scanned"),
	)
	if err != nil {
		return nil, err
	}

	filesSkipped, err := meter.Int64Counter(FilesSkippedCounterName,
		metric.WithDescription("Total number of files skipped by the walk filters"),
	)
	if err != nil {
		return nil, err
	}

	parseFailures, err := meter.Int64Counter(ParseFailuresCounterName,
		metric.WithDescription("Total number of files whose parse failed"),
	)
	if err != nil {
		return nil, err
	}

	classesGenerated, err := meter.Int64Counter(ClassesGeneratedCounterName,
		metric.WithDescription("Total number of generated test classes"),
	)
	if err != nil {
		return nil, err
	}

	methodsGenerated, err := meter.Int64Counter(MethodsGeneratedCounterName,
		metric.WithDescription("Total number of generated test methods"),
	)
	if err != nil {
		return nil, err
	}

	fileDuration, err := meter.Float64Histogram(FileDurationHistogramName,
		metric.WithDescription("Per-file scaffold duration in seconds"),
	)
	if err != nil {
		return nil, err
	}

	return &otelScaffoldMetrics{
		reader:           reader,
		filesScanned:     filesScanned,
		filesSkipped:     filesSkipped,
		parseFailures:    parseFailures,
		classesGenerated: classesGenerated,
		methodsGenerated: methodsGenerated,
		fileDuration:     fileDuration,
	}, nil
}

func (m *otelScaffoldMetrics) RecordFileScanned(ctx context.Context, duration time.Duration) {
	m.filesScanned.Add(ctx, 1)
	m.fileDuration.Record(ctx, duration.Seconds())
}

func (m *otelScaffoldMetrics) RecordFileSkipped(ctx context.Context, reason string) {
	m.filesSkipped.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrSkipReason, reason)))
}

func (m *otelScaffoldMetrics) RecordParseFailure(ctx context.Context) {
	m.parseFailures.Add(ctx, 1)
}

func (m *otelScaffoldMetrics) RecordClassGenerated(ctx context.Context, methodCount int) {
	m.classesGenerated.Add(ctx, 1)
	m.methodsGenerated.Add(ctx, int64(methodCount))
}

// Summary reads the accumulated counter sums from the manual reader.
func (m *otelScaffoldMetrics) Summary(ctx context.Context) (map[string]int64, error) {
	var rm metricdata.ResourceMetrics
	if err := m.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}

	totals := make(map[string]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, met := range scope.Metrics {
			sum, ok := met.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[met.Name] += dp.Value
			}
		}
	}
	return totals, nil
}

// noopScaffoldMetrics disables metrics collection.
type noopScaffoldMetrics struct{}

// NewNoopScaffoldMetrics returns a ScaffoldMetrics that records nothing,
// used when metrics are disabled in configuration.
func NewNoopScaffoldMetrics() ScaffoldMetrics {
	return noopScaffoldMetrics{}
}

func (noopScaffoldMetrics) RecordFileScanned(context.Context, time.Duration) {}
func (noopScaffoldMetrics) RecordFileSkipped(context.Context, string)        {}
func (noopScaffoldMetrics) RecordParseFailure(context.Context)               {}
func (noopScaffoldMetrics) RecordClassGenerated(context.Context, int)        {}

func (noopScaffoldMetrics) Summary(context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}
