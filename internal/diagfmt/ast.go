package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"oath/internal/ast"
	"oath/internal/source"
)

// FormatASTJSON writes the dump of tree as indented JSON.
func FormatASTJSON(w io.Writer, tree *ast.SyntaxTree, in *source.Interner) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ast.Dump(tree, in))
}

// FormatASTYAML writes the dump of tree as YAML.
func FormatASTYAML(w io.Writer, tree *ast.SyntaxTree, in *source.Interner) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(ast.Dump(tree, in)); err != nil {
		return fmt.Errorf("encode ast: %w", err)
	}
	return encoder.Close()
}

// FormatASTPretty рисует дерево узлов псевдографикой.
func FormatASTPretty(w io.Writer, tree *ast.SyntaxTree, in *source.Interner) error {
	root := ast.Dump(tree, in)
	if root == nil {
		return nil
	}
	var b strings.Builder
	writeTreeNode(&b, root, "", true, true)
	_, err := io.WriteString(w, b.String())
	return err
}

func nodeLabel(n *ast.DumpNode) string {
	label := n.Kind
	if n.Text != "" {
		label += " " + n.Text
	}
	label += " (span: " + formatRange(n.Loc()) + ")"
	if n.Error {
		label += " <error>"
	}
	return label
}

func writeTreeNode(b *strings.Builder, n *ast.DumpNode, prefix string, last, root bool) {
	switch {
	case root:
		b.WriteString(nodeLabel(n))
	case last:
		b.WriteString(prefix + "└─ " + nodeLabel(n))
	default:
		b.WriteString(prefix + "├─ " + nodeLabel(n))
	}
	b.WriteByte('\n')

	childPrefix := prefix
	if !root {
		if last {
			childPrefix += "   "
		} else {
			childPrefix += "│  "
		}
	}
	for i, c := range n.Children {
		writeTreeNode(b, c, childPrefix, i == len(n.Children)-1, false)
	}
}
