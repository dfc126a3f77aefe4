// Package outbound defines the ports implemented by outbound adapters.
package outbound

import "context"

// ParameterInfo carries the raw type text of one declared parameter, exactly
// as it appeared in source. The text stays unparsed until a dummy value is
// inferred for it.
type ParameterInfo struct {
	TypeDescription string
}

// MethodInfo describes one extracted method signature.
type MethodInfo struct {
	Name       string
	Parameters []ParameterInfo
	ReturnType string
	IsAsync    bool
}

// ConstructorInfo describes one extracted constructor signature.
type ConstructorInfo struct {
	Parameters []ParameterInfo
}

// ClassInfo groups the signatures extracted for a single class. The value is
// owned by the extraction pass for one source file and discarded after the
// corresponding test file is written.
type ClassInfo struct {
	Name         string
	Methods      []MethodInfo
	Constructors []ConstructorInfo
}

// HasMethods reports whether any method survived extraction. Classes without
// methods are retained in extraction results but produce no test output.
func (c ClassInfo) HasMethods() bool {
	return len(c.Methods) > 0
}

// ExtractionOptions controls which signatures the extractor keeps.
type ExtractionOptions struct {
	// ExcludedMethodPrefixes drops methods whose names begin with any of the
	// given prefixes (test/arrange/act/assert helpers by default).
	ExcludedMethodPrefixes []string
}

// SignatureExtractor parses one source file and collects, per class, its
// constructors and methods in declaration order. Malformed or unparseable
// files yield an empty or partial result rather than an error; the returned
// error is reserved for parser infrastructure failures.
type SignatureExtractor interface {
	ExtractClasses(ctx context.Context, source []byte, opts ExtractionOptions) ([]ClassInfo, error)
}
