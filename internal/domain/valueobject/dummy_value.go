package valueobject

import (
	"regexp"
	"strings"
)

// NullSentinel is the literal used for any type without a better default.
// Generation stays total because every unresolvable type falls back to it.
const NullSentinel = "null"

// dummyRule maps a primitive type name pattern to its literal expression.
// Rules are evaluated in order against the lowercased base name; the first
// match wins, so order encodes priority for ambiguous names.
type dummyRule struct {
	pattern *regexp.Regexp
	literal string
}

//nolint:gochecknoglobals // Fixed rule table, compiled once at startup.
var dummyRules = []dummyRule{
	{regexp.MustCompile(`^int$`), "0"},
	{regexp.MustCompile(`^long$`), "0L"},
	{regexp.MustCompile(`^float$`), "0.0f"},
	{regexp.MustCompile(`^double$`), "0.0"},
	{regexp.MustCompile(`^bool$`), "false"},
	{regexp.MustCompile(`^string$`), `""`},
	{regexp.MustCompile(`^decimal$`), "0m"},
	{regexp.MustCompile(`^char$`), "'a'"},
	{regexp.MustCompile(`^byte$`), "0"},
	{regexp.MustCompile(`^short$`), "0"},
	{regexp.MustCompile(`^sbyte$`), "0"},
	{regexp.MustCompile(`^ushort$`), "0"},
	{regexp.MustCompile(`^uint$`), "0u"},
	{regexp.MustCompile(`^ulong$`), "0UL"},
	{regexp.MustCompile(`^datetime$`), "DateTime.Now"},
}

// Known generic container base names, matched case-insensitively.
const (
	containerDictionary = "dictionary"
	containerTask       = "task"
)

//nolint:gochecknoglobals // Fixed set of list-like container names.
var listLikeBases = map[string]struct{}{
	"list":        {},
	"ilist":       {},
	"icollection": {},
	"ienumerable": {},
}

// InferDummyValue returns a C# literal expression approximating a default
// value for the given type description. It handles a single trailing array
// marker, known container generics (list-like, Dictionary, Task) and an
// ordered table of primitive patterns, defaulting to the null sentinel for
// anything unrecognized. The function is pure: the same description always
// yields the same literal.
//
// Multi-level array markers (int[][], int[,]) are not specified by the
// reference behavior; only the outermost [] is interpreted and the remainder
// falls through to the null sentinel.
func InferDummyValue(typeDescription string) string {
	typeText := removeWhitespace(typeDescription)

	if elem, ok := strings.CutSuffix(typeText, "[]"); ok {
		elemDummy := InferDummyValue(ParseTypeDescription(elem).String())
		if elemDummy == NullSentinel {
			return "new " + typeText + " { }"
		}
		return "new " + typeText + " { " + elemDummy + " }"
	}

	descriptor := ParseTypeDescription(typeText)
	baseLower := strings.ToLower(descriptor.Base())

	if descriptor.IsGeneric() {
		fullType := descriptor.String()
		if _, ok := listLikeBases[baseLower]; ok {
			return "new " + fullType + "()"
		}
		switch baseLower {
		case containerDictionary:
			if descriptor.Arity() >= 2 {
				return "new " + fullType + "()"
			}
			return NullSentinel
		case containerTask:
			if descriptor.Arity() == 1 {
				inner := descriptor.Args()[0]
				return "Task.FromResult(" + InferDummyValue(inner.String()) + ")"
			}
			return "Task.CompletedTask"
		}
		// Unrecognized generic bases fall through to the null sentinel.
		return NullSentinel
	}

	if baseLower == containerTask {
		return "Task.CompletedTask"
	}

	for _, rule := range dummyRules {
		if rule.pattern.MatchString(baseLower) {
			return rule.literal
		}
	}

	return NullSentinel
}
