package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"oath/internal/source"
	"oath/internal/token"
)

// TokenOutput is one token tree in JSON form; groups carry their children.
type TokenOutput struct {
	Kind     string        `json:"kind"`
	Text     string        `json:"text,omitempty"`
	Span     string        `json:"span"`
	Children []TokenOutput `json:"children,omitempty"`
}

func tokenText(t token.Tree, in *source.Interner) string {
	switch t.Kind {
	case token.TreeIdent:
		if in != nil {
			if s, ok := in.Lookup(t.Ident); ok {
				return s
			}
		}
		return "?"
	case token.TreeKeyword:
		return t.Keyword.String()
	case token.TreePunct:
		return t.Punct.String()
	case token.TreeLiteral:
		text := t.Lit.Kind.String() + " " + t.Lit.Raw
		if t.Lit.Suffix != source.NoStrID && in != nil {
			text += " suffix=" + in.MustLookup(t.Lit.Suffix)
		}
		return text
	case token.TreeGroup:
		return t.Group.Delim.String()
	}
	return ""
}

func formatRange(sp source.Span) string {
	start, end := sp.Start.LineCol(), sp.End.LineCol()
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// FormatTokensPretty выводит деревья токенов с отступом по вложенности групп.
func FormatTokensPretty(w io.Writer, trees []token.Tree, in *source.Interner) error {
	n := 0
	var walk func(trees []token.Tree, depth int) error
	walk = func(trees []token.Tree, depth int) error {
		for _, t := range trees {
			n++
			if _, err := fmt.Fprintf(w, "%3d: %s%-8s %-12q at %s\n", n, strings.Repeat("  ", depth),
				t.Kind, tokenText(t, in), formatRange(t.Span)); err != nil {
				return err
			}
			if t.Kind == token.TreeGroup && t.Group != nil {
				if err := walk(t.Group.Trees, depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(trees, 0)
}

// BuildTokensOutput converts trees into their JSON form.
func BuildTokensOutput(trees []token.Tree, in *source.Interner) []TokenOutput {
	out := make([]TokenOutput, 0, len(trees))
	for _, t := range trees {
		to := TokenOutput{Kind: t.Kind.String(), Text: tokenText(t, in), Span: formatRange(t.Span)}
		if t.Kind == token.TreeGroup && t.Group != nil {
			to.Children = BuildTokensOutput(t.Group.Trees, in)
		}
		out = append(out, to)
	}
	return out
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, trees []token.Tree, in *source.Interner) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(trees, in))
}
