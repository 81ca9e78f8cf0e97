// Package precise implements the AST-backed extraction strategy using the
// tree-sitter C grammar. It produces the same record schema as the
// heuristic engine so callers stay strategy-agnostic; the orchestrator
// falls back to the heuristic engine whenever this strategy errors.
package precise

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"

	"github.com/mvp-joe/csift/internal/extract"
)

// Strategy extracts C declarations from a tree-sitter parse tree.
type Strategy struct {
	language *sitter.Language
}

// NewStrategy creates the tree-sitter backed extraction strategy.
func NewStrategy() *Strategy {
	return &Strategy{
		language: sitter.NewLanguage(c.Language()),
	}
}

// Extract parses the source with the C grammar and walks the AST for
// macros, typedef'd structs/enums, and functions. A nil tree or a tree
// containing syntax errors is reported as an error so the caller can
// degrade to the heuristic engine.
func (s *Strategy) Extract(source []byte) (*extract.Summary, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(s.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter returned no parse tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("parse tree contains syntax errors")
	}

	macros := []extract.Macro{}
	types := []extract.Type{}
	funcs := newFunctionSet()

	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "preproc_def", "preproc_function_def":
			if m := extractMacro(n, source); m != nil {
				macros = append(macros, *m)
			}
		case "type_definition":
			if t := extractTypedef(n, source); t != nil {
				types = append(types, *t)
			}
			// The wrapped specifier is handled here; don't descend into it.
			return false
		case "struct_specifier":
			if t := extractSpecifier(n, source, extract.KindStruct); t != nil {
				types = append(types, *t)
			}
		case "enum_specifier":
			if t := extractSpecifier(n, source, extract.KindEnum); t != nil {
				types = append(types, *t)
			}
		case "function_definition":
			extractFunctionDefinition(n, source, funcs)
			// Nothing to extract from statements inside the body.
			return false
		case "declaration":
			extractPrototype(n, source, funcs)
		}
		return true
	})

	functions := funcs.ordered()

	return &extract.Summary{
		Macros:    macros,
		Types:     types,
		Functions: functions,
		Counts:    extract.CountsFor(macros, types, functions),
	}, nil
}

// extractMacro converts a preproc_def or preproc_function_def node.
// For function-like macros the parameter list is folded into the value,
// matching how token-based extraction reports them.
func extractMacro(node *sitter.Node, source []byte) *extract.Macro {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nodeText(nameNode, source)

	var parts []string
	if params := node.ChildByFieldName("parameters"); params != nil {
		parts = append(parts, nodeText(params, source))
	}
	if value := node.ChildByFieldName("value"); value != nil {
		parts = append(parts, strings.TrimSpace(nodeText(value, source)))
	}
	value := strings.Join(parts, " ")

	return &extract.Macro{
		Name:    name,
		Value:   value,
		Comment: extract.MacroComment(name, value),
	}
}

// extractTypedef converts a type_definition wrapping a struct or enum
// specifier. Typedefs of scalar or pointer types are not part of the
// summary and yield nil.
func extractTypedef(node *sitter.Node, source []byte) *extract.Type {
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}

	var kind string
	switch typeNode.Kind() {
	case "struct_specifier":
		kind = extract.KindStruct
	case "enum_specifier":
		kind = extract.KindEnum
	default:
		return nil
	}

	members := specifierMembers(typeNode, source, kind)
	if members == nil {
		// Forward declaration or bodiless specifier.
		return nil
	}

	var typedefName *string
	displayName := "<anon>"
	if declNode := node.ChildByFieldName("declarator"); declNode != nil {
		name := nodeText(declNode, source)
		typedefName = &name
		displayName = name
	}

	return &extract.Type{
		TypedefName: typedefName,
		Kind:        kind,
		NumMembers:  len(members),
		Members:     members,
		Comment:     extract.TypeComment(displayName, len(members)),
	}
}

// extractSpecifier converts a named struct/enum specifier that carries a
// body, e.g. "struct point { int x; int y; };" outside a typedef.
func extractSpecifier(node *sitter.Node, source []byte, kind string) *extract.Type {
	members := specifierMembers(node, source, kind)
	if members == nil {
		return nil
	}
	if len(members) == 0 {
		return nil
	}

	var typedefName *string
	displayName := "<anon>"
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		name := nodeText(nameNode, source)
		typedefName = &name
		displayName = name
	}

	return &extract.Type{
		TypedefName: typedefName,
		Kind:        kind,
		NumMembers:  len(members),
		Members:     members,
		Comment:     extract.TypeComment(displayName, len(members)),
	}
}

// specifierMembers lists member names of a struct/enum specifier body in
// declaration order. Returns nil when the specifier has no body.
func specifierMembers(node *sitter.Node, source []byte, kind string) []string {
	body := node.ChildByFieldName("body")
	if body == nil {
		return nil
	}

	members := []string{}
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(uint(i))
		switch kind {
		case extract.KindEnum:
			if child.Kind() != "enumerator" {
				continue
			}
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				members = append(members, nodeText(nameNode, source))
			}
		case extract.KindStruct:
			if child.Kind() != "field_declaration" {
				continue
			}
			if name := fieldName(child, source); name != "" {
				members = append(members, name)
			}
		}
	}
	return members
}

// innerDeclarator steps one level into a wrapping declarator. Parenthesized
// declarators carry their inner declarator as an unnamed child rather than
// a field, so the field lookup alone is not enough.
func innerDeclarator(node *sitter.Node) *sitter.Node {
	if d := node.ChildByFieldName("declarator"); d != nil {
		return d
	}
	if node.NamedChildCount() > 0 {
		return node.NamedChild(0)
	}
	return nil
}

// fieldName digs the field identifier out of a field declaration,
// unwrapping pointer and array declarators.
func fieldName(node *sitter.Node, source []byte) string {
	declNode := node.ChildByFieldName("declarator")
	for declNode != nil {
		switch declNode.Kind() {
		case "field_identifier", "identifier":
			return nodeText(declNode, source)
		case "pointer_declarator", "array_declarator", "function_declarator", "parenthesized_declarator":
			declNode = innerDeclarator(declNode)
		default:
			return ""
		}
	}
	return ""
}

// extractFunctionDefinition records a function_definition node, body
// included, and marks the name as seen-as-definition.
func extractFunctionDefinition(node *sitter.Node, source []byte, funcs *functionSet) {
	declNode := node.ChildByFieldName("declarator")
	fnDecl := findFunctionDeclarator(declNode)
	if fnDecl == nil {
		return
	}

	name := declaratorName(fnDecl, source)
	if name == "" {
		return
	}

	returnType := functionReturnType(node, declNode, source)
	args := parameterRecords(fnDecl, source)

	body := extract.NoBody
	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		body = strings.TrimSpace(nodeText(bodyNode, source))
	}

	funcs.addDefinition(extract.Function{
		Name:       name,
		ReturnType: returnType,
		NumArgs:    len(args),
		Args:       args,
		Body:       body,
		Comment:    extract.FunctionComment(name, len(args), returnType),
	})
}

// extractPrototype records a declaration that declares a function, e.g.
// "int add(int a, int b);". Non-function declarations are ignored.
func extractPrototype(node *sitter.Node, source []byte, funcs *functionSet) {
	declNode := node.ChildByFieldName("declarator")
	fnDecl := findFunctionDeclarator(declNode)
	if fnDecl == nil {
		return
	}

	name := declaratorName(fnDecl, source)
	if name == "" {
		return
	}

	returnType := functionReturnType(node, declNode, source)
	args := parameterRecords(fnDecl, source)

	funcs.addPrototype(extract.Function{
		Name:       name,
		ReturnType: returnType,
		NumArgs:    len(args),
		Args:       args,
		Body:       extract.NoBody,
		Comment:    extract.FunctionComment(name, len(args), returnType),
	})
}

// findFunctionDeclarator unwraps pointer declarators until it reaches the
// function_declarator, if any.
func findFunctionDeclarator(node *sitter.Node) *sitter.Node {
	for node != nil {
		switch node.Kind() {
		case "function_declarator":
			return node
		case "pointer_declarator", "parenthesized_declarator":
			node = innerDeclarator(node)
		default:
			return nil
		}
	}
	return nil
}

// declaratorName returns the identifier of a function_declarator.
func declaratorName(fnDecl *sitter.Node, source []byte) string {
	declNode := fnDecl.ChildByFieldName("declarator")
	for declNode != nil {
		switch declNode.Kind() {
		case "identifier":
			return nodeText(declNode, source)
		case "pointer_declarator", "parenthesized_declarator":
			declNode = innerDeclarator(declNode)
		default:
			return ""
		}
	}
	return ""
}

// functionReturnType combines the declaration's type node with any pointer
// stars that sit between it and the function declarator.
func functionReturnType(node, declNode *sitter.Node, source []byte) string {
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return ""
	}
	returnType := nodeText(typeNode, source)

	// Pointer return types keep their stars on the declarator side of the
	// tree; fold them back into the type text.
	for declNode != nil && declNode.Kind() == "pointer_declarator" {
		returnType += "*"
		declNode = declNode.ChildByFieldName("declarator")
	}
	return returnType
}

// parameterRecords converts a function_declarator's parameter list. A sole
// "void" parameter means no arguments, as does a missing list.
func parameterRecords(fnDecl *sitter.Node, source []byte) []extract.Argument {
	args := []extract.Argument{}
	params := fnDecl.ChildByFieldName("parameters")
	if params == nil {
		return args
	}
	for i := 0; i < int(params.ChildCount()); i++ {
		child := params.Child(uint(i))
		if child.Kind() != "parameter_declaration" {
			continue
		}

		raw := strings.TrimSpace(nodeText(child, source))
		if raw == "void" {
			continue
		}

		name := ""
		if declNode := child.ChildByFieldName("declarator"); declNode != nil {
			name = parameterName(declNode, source)
		}

		typ := raw
		if name != "" {
			typ = strings.TrimSpace(strings.TrimSuffix(raw, name))
		}

		args = append(args, extract.Argument{Raw: raw, Type: typ, Name: name})
	}
	return args
}

// parameterName digs the identifier out of a parameter declarator,
// including function-pointer parameters like "int (*cb)(int, int)".
func parameterName(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	switch node.Kind() {
	case "identifier":
		return nodeText(node, source)
	case "pointer_declarator", "array_declarator", "function_declarator", "parenthesized_declarator":
		return parameterName(innerDeclarator(node), source)
	default:
		for i := 0; i < int(node.ChildCount()); i++ {
			if name := parameterName(node.Child(uint(i)), source); name != "" {
				return name
			}
		}
		return ""
	}
}

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false skips the node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visitor(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walkTree(node.Child(uint(i)), visitor)
	}
}
