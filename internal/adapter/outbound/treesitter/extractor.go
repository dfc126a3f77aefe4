package treesitter

import (
	"context"
	"strings"

	tree_sitter "github.com/alexaandru/go-tree-sitter-bare"

	"testscaffold/internal/port/outbound"
)

// C# grammar node types matched by the fixed extraction traversal.
const (
	nodeClassDeclaration       = "class_declaration"
	nodeMethodDeclaration      = "method_declaration"
	nodeConstructorDeclaration = "constructor_declaration"
	nodeParameter              = "parameter"
	nodeModifier               = "modifier"
)

// voidReturnType is assumed when a method declaration carries no type field.
const voidReturnType = "void"

// CSharpSignatureExtractor collects class, constructor and method signatures
// from parsed C# source. It implements outbound.SignatureExtractor.
type CSharpSignatureExtractor struct {
	parser *CSharpParser
}

// NewCSharpSignatureExtractor creates an extractor on top of a parser.
func NewCSharpSignatureExtractor(parser *CSharpParser) *CSharpSignatureExtractor {
	return &CSharpSignatureExtractor{parser: parser}
}

// ExtractClasses parses the source and walks the syntax tree, collecting one
// ClassInfo per class declaration in source order. Methods whose names start
// with an excluded prefix are skipped. Syntax errors degrade to a partial
// result: tree-sitter still produces a tree for malformed input, and whatever
// declarations parsed cleanly are extracted.
func (e *CSharpSignatureExtractor) ExtractClasses(
	ctx context.Context,
	source []byte,
	opts outbound.ExtractionOptions,
) ([]outbound.ClassInfo, error) {
	tree, err := e.parser.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var classes []outbound.ClassInfo
	collectClasses(tree.RootNode(), source, opts, &classes)
	return classes, nil
}

// collectClasses walks the whole tree so classes nested in namespaces (or in
// other classes) are found as well.
func collectClasses(
	node tree_sitter.Node,
	source []byte,
	opts outbound.ExtractionOptions,
	classes *[]outbound.ClassInfo,
) {
	if node.IsNull() {
		return
	}

	if node.Type() == nodeClassDeclaration {
		if class, ok := extractClass(node, source, opts); ok {
			*classes = append(*classes, class)
		}
	}

	for i := range node.ChildCount() {
		collectClasses(node.Child(i), source, opts, classes)
	}
}

// extractClass reads one class declaration: its name plus the constructors
// and methods declared directly in its body.
func extractClass(
	node tree_sitter.Node,
	source []byte,
	opts outbound.ExtractionOptions,
) (outbound.ClassInfo, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode.IsNull() {
		return outbound.ClassInfo{}, false
	}

	class := outbound.ClassInfo{Name: strings.TrimSpace(nameNode.Content(source))}

	body := node.ChildByFieldName("body")
	if body.IsNull() {
		return class, true
	}

	for i := range body.ChildCount() {
		member := body.Child(i)
		switch member.Type() {
		case nodeMethodDeclaration:
			if method, ok := extractMethod(member, source, opts); ok {
				class.Methods = append(class.Methods, method)
			}
		case nodeConstructorDeclaration:
			class.Constructors = append(class.Constructors, outbound.ConstructorInfo{
				Parameters: extractParameters(member, source),
			})
		}
	}

	return class, true
}

// extractMethod reads one method declaration. It returns false when the
// method name matches an excluded prefix.
func extractMethod(
	node tree_sitter.Node,
	source []byte,
	opts outbound.ExtractionOptions,
) (outbound.MethodInfo, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode.IsNull() {
		return outbound.MethodInfo{}, false
	}

	name := strings.TrimSpace(nameNode.Content(source))
	if isExcludedName(name, opts.ExcludedMethodPrefixes) {
		return outbound.MethodInfo{}, false
	}

	// The C# grammar names the return-type field "returns"; "type" is kept as
	// a fallback for grammar revisions that used the generic field name.
	returnType := voidReturnType
	returnNode := node.ChildByFieldName("returns")
	if returnNode.IsNull() {
		returnNode = node.ChildByFieldName("type")
	}
	if !returnNode.IsNull() {
		returnType = strings.TrimSpace(returnNode.Content(source))
	}

	return outbound.MethodInfo{
		Name:       name,
		Parameters: extractParameters(node, source),
		ReturnType: returnType,
		IsAsync:    hasAsyncModifier(node, source),
	}, true
}

// extractParameters reads the declared parameter types of a method or
// constructor declaration in order.
func extractParameters(node tree_sitter.Node, source []byte) []outbound.ParameterInfo {
	paramList := node.ChildByFieldName("parameters")
	if paramList.IsNull() {
		return nil
	}

	var params []outbound.ParameterInfo
	for i := range paramList.ChildCount() {
		child := paramList.Child(i)
		if child.Type() != nodeParameter {
			continue
		}
		typeNode := child.ChildByFieldName("type")
		if typeNode.IsNull() {
			continue
		}
		params = append(params, outbound.ParameterInfo{
			TypeDescription: strings.TrimSpace(typeNode.Content(source)),
		})
	}

	return params
}

// hasAsyncModifier scans a declaration's modifier children for "async".
func hasAsyncModifier(node tree_sitter.Node, source []byte) bool {
	for i := range node.ChildCount() {
		child := node.Child(i)
		if child.Type() == nodeModifier && strings.TrimSpace(child.Content(source)) == "async" {
			return true
		}
	}
	return false
}

// isExcludedName reports whether a method name begins with any of the
// configured exclusion prefixes.
func isExcludedName(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
