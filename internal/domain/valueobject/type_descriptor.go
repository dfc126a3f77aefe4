package valueobject

import "strings"

// TypeDescriptor represents a C# type description decomposed into its base
// name and recursively parsed generic type arguments. It serves as an
// immutable value object in the domain layer; a leaf descriptor has an empty
// argument list. Reconstructing a descriptor with String and re-parsing it
// yields an identical descriptor (round-trip stability, modulo whitespace).
type TypeDescriptor struct {
	base string
	args []TypeDescriptor
}

// NewTypeDescriptor creates a TypeDescriptor from an already decomposed base
// name and argument list. The argument slice is copied so callers cannot
// mutate the descriptor afterwards.
func NewTypeDescriptor(base string, args []TypeDescriptor) TypeDescriptor {
	if len(args) == 0 {
		return TypeDescriptor{base: base}
	}
	copied := make([]TypeDescriptor, len(args))
	copy(copied, args)
	return TypeDescriptor{base: base, args: copied}
}

// ParseTypeDescription decomposes a type description as written in source
// (possibly containing nested angle-bracket generics) into a TypeDescriptor.
// Whitespace is stripped before processing. Commas split generic arguments
// only at bracket-nesting depth zero. Unbalanced brackets are not validated;
// malformed input produces an arbitrary but non-crashing segmentation.
func ParseTypeDescription(typeDescription string) TypeDescriptor {
	normalized := removeWhitespace(typeDescription)

	ltPos := strings.IndexByte(normalized, '<')
	if ltPos == -1 {
		return TypeDescriptor{base: normalized}
	}

	base := normalized[:ltPos]
	gtPos := strings.LastIndexByte(normalized, '>')
	if gtPos <= ltPos {
		gtPos = len(normalized)
	}
	argsText := normalized[ltPos+1 : gtPos]

	var args []TypeDescriptor
	for _, segment := range splitTopLevel(argsText) {
		args = append(args, ParseTypeDescription(segment))
	}

	return TypeDescriptor{base: base, args: args}
}

// Base returns the type name without generic arguments.
func (t TypeDescriptor) Base() string {
	return t.base
}

// Args returns a copy of the generic type arguments in declaration order.
func (t TypeDescriptor) Args() []TypeDescriptor {
	if len(t.args) == 0 {
		return nil
	}
	copied := make([]TypeDescriptor, len(t.args))
	copy(copied, t.args)
	return copied
}

// Arity returns the number of generic type arguments.
func (t TypeDescriptor) Arity() int {
	return len(t.args)
}

// IsGeneric reports whether the descriptor carries generic type arguments.
func (t TypeDescriptor) IsGeneric() bool {
	return len(t.args) > 0
}

// String reconstructs the canonical type description: the base name followed
// by the recursively rendered arguments joined by ", " inside angle brackets.
func (t TypeDescriptor) String() string {
	if len(t.args) == 0 {
		return t.base
	}

	rendered := make([]string, len(t.args))
	for i, arg := range t.args {
		rendered[i] = arg.String()
	}
	return t.base + "<" + strings.Join(rendered, ", ") + ">"
}

// Equal reports whether two descriptors denote the same type tree.
func (t TypeDescriptor) Equal(other TypeDescriptor) bool {
	if t.base != other.base || len(t.args) != len(other.args) {
		return false
	}
	for i := range t.args {
		if !t.args[i].Equal(other.args[i]) {
			return false
		}
	}
	return true
}

// splitTopLevel splits a generic argument list on commas that sit at angle
// bracket depth zero. Depth is tracked by incrementing on '<' and
// decrementing on '>'.
func splitTopLevel(argsText string) []string {
	var segments []string
	var current strings.Builder
	depth := 0

	for i := range len(argsText) {
		ch := argsText[i]
		switch ch {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				segments = append(segments, current.String())
				current.Reset()
				continue
			}
		}
		current.WriteByte(ch)
	}
	if current.Len() > 0 {
		segments = append(segments, current.String())
	}

	return segments
}

// removeWhitespace strips every space and tab from a type description so that
// "Dictionary<string, int>" and "Dictionary<string,int>" parse identically.
func removeWhitespace(s string) string {
	if !strings.ContainsAny(s, " \t") {
		return strings.TrimSpace(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := range len(s) {
		if s[i] != ' ' && s[i] != '\t' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
