package valueobject

import "testing"

func TestParseTypeDescription_NonGeneric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBase string
	}{
		{name: "simple primitive", input: "int", wantBase: "int"},
		{name: "class name", input: "Repository", wantBase: "Repository"},
		{name: "surrounding whitespace", input: "  string ", wantBase: "string"},
		{name: "empty string", input: "", wantBase: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTypeDescription(tt.input)
			if got.Base() != tt.wantBase {
				t.Errorf("Base() = %q, want %q", got.Base(), tt.wantBase)
			}
			if got.IsGeneric() {
				t.Errorf("IsGeneric() = true, want false for %q", tt.input)
			}
		})
	}
}

func TestParseTypeDescription_Generics(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantBase  string
		wantArity int
	}{
		{name: "single argument", input: "List<string>", wantBase: "List", wantArity: 1},
		{name: "two arguments", input: "Dictionary<string, int>", wantBase: "Dictionary", wantArity: 2},
		{name: "nested argument", input: "Task<List<int>>", wantBase: "Task", wantArity: 1},
		{name: "nested with top-level comma", input: "Dictionary<string, List<int>>", wantBase: "Dictionary", wantArity: 2},
		{name: "deeply nested", input: "Task<Dictionary<string, List<List<int>>>>", wantBase: "Task", wantArity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTypeDescription(tt.input)
			if got.Base() != tt.wantBase {
				t.Errorf("Base() = %q, want %q", got.Base(), tt.wantBase)
			}
			if got.Arity() != tt.wantArity {
				t.Errorf("Arity() = %d, want %d", got.Arity(), tt.wantArity)
			}
		})
	}
}

func TestParseTypeDescription_NestedStructure(t *testing.T) {
	got := ParseTypeDescription("Dictionary<string, List<int>>")

	args := got.Args()
	if len(args) != 2 {
		t.Fatalf("Args() length = %d, want 2", len(args))
	}
	if args[0].Base() != "string" || args[0].IsGeneric() {
		t.Errorf("first argument = %v, want leaf 'string'", args[0])
	}
	if args[1].Base() != "List" || args[1].Arity() != 1 {
		t.Fatalf("second argument = %v, want List with one argument", args[1])
	}
	if inner := args[1].Args()[0]; inner.Base() != "int" {
		t.Errorf("inner argument base = %q, want 'int'", inner.Base())
	}
}

func TestTypeDescriptor_String_RoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "int", want: "int"},
		{input: "List<string>", want: "List<string>"},
		{input: "Dictionary<string,int>", want: "Dictionary<string, int>"},
		{input: "Dictionary<string, int>", want: "Dictionary<string, int>"},
		{input: "Task<List<List<int>>>", want: "Task<List<List<int>>>"},
		{input: "Dictionary< string , List<int> >", want: "Dictionary<string, List<int>>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			first := ParseTypeDescription(tt.input)
			if got := first.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}

			// Re-parsing the canonical form must yield an identical tree.
			second := ParseTypeDescription(first.String())
			if !first.Equal(second) {
				t.Errorf("round trip changed descriptor: %v != %v", first, second)
			}
		})
	}
}

func TestTypeDescriptor_MalformedInputDoesNotPanic(t *testing.T) {
	inputs := []string{"List<", "List<string", "Dictionary<string,", "<int>", "List<>>", ">"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			// Segmentation is undefined for unbalanced brackets, but parsing
			// must never crash.
			_ = ParseTypeDescription(input).String()
		})
	}
}

func TestNewTypeDescriptor_CopiesArgs(t *testing.T) {
	args := []TypeDescriptor{NewTypeDescriptor("int", nil)}
	td := NewTypeDescriptor("List", args)

	args[0] = NewTypeDescriptor("string", nil)
	if td.Args()[0].Base() != "int" {
		t.Error("mutating the source slice must not change the descriptor")
	}
}
