package treesitter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testscaffold/internal/port/outbound"
)

const invoiceServiceSource = `using System;
using System.Collections.Generic;
using System.Threading.Tasks;

namespace Billing
{
    public class InvoiceService
    {
        public InvoiceService(IInvoiceRepository repository, int maxRetries) { }

        public InvoiceService(IInvoiceRepository repository) { }

        public decimal ComputeTotal(List<decimal> lines, bool applyDiscount)
        {
            return 0m;
        }

        public async Task<int> SyncAsync(string invoiceId)
        {
            return 0;
        }

        public void Reset() { }

        public void TestHelper() { }
    }

    public class EmptyModel
    {
        public int Id { get; set; }
    }
}
`

func newTestExtractor(t *testing.T) *CSharpSignatureExtractor {
	t.Helper()
	parser, err := NewCSharpParser(context.Background(), ParserConfig{})
	require.NoError(t, err)
	return NewCSharpSignatureExtractor(parser)
}

func defaultOptions() outbound.ExtractionOptions {
	return outbound.ExtractionOptions{
		ExcludedMethodPrefixes: []string{"Test", "Arrange", "Act", "Assert"},
	}
}

func TestExtractClasses_CollectsSignatures(t *testing.T) {
	extractor := newTestExtractor(t)

	classes, err := extractor.ExtractClasses(context.Background(), []byte(invoiceServiceSource), defaultOptions())
	require.NoError(t, err)
	require.Len(t, classes, 2)

	service := classes[0]
	assert.Equal(t, "InvoiceService", service.Name)

	require.Len(t, service.Constructors, 2)
	require.Len(t, service.Constructors[0].Parameters, 2)
	assert.Equal(t, "IInvoiceRepository", service.Constructors[0].Parameters[0].TypeDescription)
	assert.Equal(t, "int", service.Constructors[0].Parameters[1].TypeDescription)
	require.Len(t, service.Constructors[1].Parameters, 1)

	// TestHelper is excluded, leaving three methods in declaration order.
	require.Len(t, service.Methods, 3)

	computeTotal := service.Methods[0]
	assert.Equal(t, "ComputeTotal", computeTotal.Name)
	assert.Equal(t, "decimal", computeTotal.ReturnType)
	assert.False(t, computeTotal.IsAsync)
	require.Len(t, computeTotal.Parameters, 2)
	assert.Equal(t, "List<decimal>", computeTotal.Parameters[0].TypeDescription)
	assert.Equal(t, "bool", computeTotal.Parameters[1].TypeDescription)

	syncAsync := service.Methods[1]
	assert.Equal(t, "SyncAsync", syncAsync.Name)
	assert.Equal(t, "Task<int>", syncAsync.ReturnType)
	assert.True(t, syncAsync.IsAsync)

	reset := service.Methods[2]
	assert.Equal(t, "Reset", reset.Name)
	assert.Equal(t, "void", reset.ReturnType)
	assert.Empty(t, reset.Parameters)
}

func TestExtractClasses_ClassWithoutMethodsIsRetained(t *testing.T) {
	extractor := newTestExtractor(t)

	classes, err := extractor.ExtractClasses(context.Background(), []byte(invoiceServiceSource), defaultOptions())
	require.NoError(t, err)

	model := classes[1]
	assert.Equal(t, "EmptyModel", model.Name)
	assert.False(t, model.HasMethods())
	assert.Empty(t, model.Constructors)
}

func TestExtractClasses_ExclusionPrefixes(t *testing.T) {
	source := `public class Helpers
{
    public void TestSomething() { }
    public void ArrangeFixture() { }
    public void ActNow() { }
    public void AssertState() { }
    public void Testify() { }
    public void Compute() { }
}
`
	extractor := newTestExtractor(t)

	classes, err := extractor.ExtractClasses(context.Background(), []byte(source), defaultOptions())
	require.NoError(t, err)
	require.Len(t, classes, 1)

	// Prefix matching is literal: Testify starts with Test and is dropped.
	require.Len(t, classes[0].Methods, 1)
	assert.Equal(t, "Compute", classes[0].Methods[0].Name)
}

func TestExtractClasses_NestedClass(t *testing.T) {
	source := `public class Outer
{
    public void Run() { }

    public class Inner
    {
        public int Count() { return 0; }
    }
}
`
	extractor := newTestExtractor(t)

	classes, err := extractor.ExtractClasses(context.Background(), []byte(source), defaultOptions())
	require.NoError(t, err)
	require.Len(t, classes, 2)

	assert.Equal(t, "Outer", classes[0].Name)
	require.Len(t, classes[0].Methods, 1)
	assert.Equal(t, "Run", classes[0].Methods[0].Name)

	assert.Equal(t, "Inner", classes[1].Name)
	require.Len(t, classes[1].Methods, 1)
	assert.Equal(t, "Count", classes[1].Methods[0].Name)
}

func TestExtractClasses_MalformedSourceDegradesSilently(t *testing.T) {
	source := `public class Broken
{
    public void Works() { }

    public void Truncated(
`
	extractor := newTestExtractor(t)

	classes, err := extractor.ExtractClasses(context.Background(), []byte(source), defaultOptions())
	require.NoError(t, err)

	// Malformed input degrades to an empty or partial result, never an error.
	// The grammar may or may not recover a class node from the truncation, so
	// only the shape of whatever it did recover is checked.
	for _, class := range classes {
		assert.Equal(t, "Broken", class.Name)
	}
}

func TestParse_RejectsOversizedSource(t *testing.T) {
	parser, err := NewCSharpParser(context.Background(), ParserConfig{MaxSourceSize: 8})
	require.NoError(t, err)

	_, err = parser.Parse(context.Background(), []byte("public class TooBig { }"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceTooLarge)
}
