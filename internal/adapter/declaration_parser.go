package adapter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"

	m "classidx.dev/pkg/classidx/internal/model"
)

var phpSyntaxLanguage = sitter.NewLanguage(tree_sitter_php.LanguagePHP())

// declarationKinds are the node kinds that declare an autoloadable symbol.
var declarationKinds = map[string]struct{}{
	"class_declaration":     {},
	"interface_declaration": {},
	"trait_declaration":     {},
	"enum_declaration":      {},
}

// declarationHeadPattern matches namespace statements and symbol declaration
// heads at the start of a line. Group 1 is a namespace, group 2 a symbol.
var declarationHeadPattern = regexp.MustCompile(
	`(?mi)^[ \t]*(?:namespace[ \t]+\\?([A-Za-z_][\w\\]*)[ \t]*(?:[;{]|$)|(?:(?:abstract|final|readonly)[ \t]+)*(?:class|interface|trait|enum)[ \t]+([A-Za-z_]\w*))`,
)

// DeclarationParser statically extracts the symbols a source file declares,
// without executing it.
type DeclarationParser interface {
	// Declarations returns fully-qualified symbol names in source order.
	Declarations(ctx context.Context, path m.Path, source []byte) ([]string, error)
}

// TreeSitterDeclarationParser implements DeclarationParser with the
// tree-sitter PHP grammar. A new tree-sitter parser is created per call, so
// the type is safe for concurrent use.
type TreeSitterDeclarationParser struct{}

// NewTreeSitterDeclarationParser constructs a TreeSitterDeclarationParser.
func NewTreeSitterDeclarationParser() *TreeSitterDeclarationParser {
	return &TreeSitterDeclarationParser{}
}

// Declarations parses source and returns the namespaced class, interface,
// trait and enum names it declares, including conditional declarations.
// Syntax errors are tolerated: whatever the grammar recovers is reported and
// load-time validation decides whether the file is usable.
func (p *TreeSitterDeclarationParser) Declarations(ctx context.Context, path m.Path, source []byte) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(phpSyntaxLanguage); err != nil {
		return nil, fmt.Errorf("set language php: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter returned nil tree for %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, nil
	}

	var (
		symbols   []string
		namespace string
	)

	for i := uint(0); i < root.NamedChildCount(); i++ {
		stmt := root.NamedChild(i)
		if stmt == nil {
			continue
		}

		if stmt.Kind() != "namespace_definition" {
			symbols = collectDeclarations(stmt, source, namespace, symbols)
			continue
		}

		name := namespaceName(stmt, source)

		body := stmt.ChildByFieldName("body")
		if body == nil {
			// `namespace Foo;` applies to the statements that follow.
			namespace = name
			continue
		}

		symbols = collectDeclarations(body, source, name, symbols)
	}

	if root.HasError() {
		symbols = appendMissing(symbols, recoverDeclarations(source))
	}

	return symbols, nil
}

// recoverDeclarations scans declaration heads line by line. It backs up the
// grammar when a syntax error swallowed a declaration into an ERROR node, so
// a broken file still yields its symbols and fails validation visibly.
func recoverDeclarations(source []byte) []string {
	var (
		symbols   []string
		namespace string
	)

	for _, match := range declarationHeadPattern.FindAllSubmatch(source, -1) {
		if len(match[1]) > 0 {
			namespace = strings.Trim(string(match[1]), `\`)
			continue
		}

		symbols = append(symbols, qualify(namespace, string(match[2])))
	}

	return symbols
}

func appendMissing(symbols, recovered []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		seen[symbol] = struct{}{}
	}

	for _, symbol := range recovered {
		if _, ok := seen[symbol]; ok {
			continue
		}

		seen[symbol] = struct{}{}
		symbols = append(symbols, symbol)
	}

	return symbols
}

func namespaceName(node *sitter.Node, source []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}

	return strings.Trim(strings.TrimSpace(nameNode.Utf8Text(source)), `\`)
}

func collectDeclarations(node *sitter.Node, source []byte, namespace string, symbols []string) []string {
	walkTreePreOrder(node, func(n *sitter.Node) {
		if _, ok := declarationKinds[n.Kind()]; !ok {
			return
		}

		nameNode := n.ChildByFieldName("name")
		if nameNode == nil {
			return
		}

		name := strings.TrimSpace(nameNode.Utf8Text(source))
		if name == "" {
			return
		}

		symbols = append(symbols, qualify(namespace, name))
	})

	return symbols
}

func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}

	return namespace + `\` + name
}

func walkTreePreOrder(root *sitter.Node, visit func(*sitter.Node)) {
	if root == nil || visit == nil {
		return
	}

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(node)

		for i := int(node.NamedChildCount()) - 1; i >= 0; i-- {
			child := node.NamedChild(uint(i))
			if child != nil {
				stack = append(stack, child)
			}
		}
	}
}
