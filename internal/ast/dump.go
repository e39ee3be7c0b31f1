package ast

import (
	"fmt"

	"oath/internal/parser"
	"oath/internal/source"
)

// DumpNode is a serializable view of a syntax node.
type DumpNode struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Span     string      `json:"span" yaml:"span"`
	Text     string      `json:"text,omitempty" yaml:"text,omitempty"`
	Error    bool        `json:"error,omitempty" yaml:"error,omitempty"`
	Children []*DumpNode `json:"children,omitempty" yaml:"children,omitempty"`

	loc source.Span
}

// Loc returns the node's span.
func (d *DumpNode) Loc() source.Span { return d.loc }

// Walk visits d and its descendants depth-first.
func (d *DumpNode) Walk(fn func(n *DumpNode, depth int)) {
	d.walk(fn, 0)
}

func (d *DumpNode) walk(fn func(*DumpNode, int), depth int) {
	fn(d, depth)
	for _, c := range d.Children {
		c.walk(fn, depth+1)
	}
}

type dumper struct {
	in *source.Interner
}

// Dump converts a tree into DumpNodes. in resolves identifier names and may be nil.
func Dump(tree *SyntaxTree, in *source.Interner) *DumpNode {
	if tree == nil {
		return nil
	}
	d := dumper{in: in}
	root := d.node("SyntaxTree", tree.Loc)
	for _, it := range tree.Items {
		root.add(d.item(it))
	}
	if tree.Leftovers != nil {
		root.add(d.skipped(*tree.Leftovers))
	}
	return root
}

func (d dumper) node(kind string, sp source.Span) *DumpNode {
	return &DumpNode{Kind: kind, Span: fmt.Sprintf("%s-%s", sp.Start, sp.End), loc: sp}
}

func (d *DumpNode) add(children ...*DumpNode) *DumpNode {
	for _, c := range children {
		if c != nil {
			d.Children = append(d.Children, c)
		}
	}
	return d
}

func (d dumper) name(id source.StrID) string {
	if d.in == nil {
		return fmt.Sprintf("#%x", uint64(id))
	}
	if s, ok := d.in.Lookup(id); ok {
		return s
	}
	return "?"
}

func (d dumper) ident(id parser.Try[parser.Ident]) *DumpNode {
	v, ok := id.Get()
	if !ok {
		return d.missing("Ident", id.Span())
	}
	n := d.node("Ident", v.Loc)
	n.Text = d.name(v.Name)
	return n
}

func (d dumper) missing(kind string, sp source.Span) *DumpNode {
	n := d.node(kind, sp)
	n.Error = true
	return n
}

func (d dumper) skipped(s parser.Skipped) *DumpNode {
	n := d.node("Skipped", s.Loc)
	n.Error = true
	return n
}

func (d dumper) leftovers(s *parser.Skipped) *DumpNode {
	if s == nil {
		return nil
	}
	return d.skipped(*s)
}

func (d dumper) item(it *Item) *DumpNode {
	n := d.node("Item", it.Loc)
	if it.Garbage != nil {
		return n.add(d.skipped(*it.Garbage))
	}
	for _, a := range it.Attrs {
		n.add(d.attr(a))
	}
	for _, m := range it.Mods {
		mn := d.node("Modifier", m.Loc)
		mn.Text = m.Kind.String()
		n.add(mn)
	}
	kind, ok := it.Kind.Get()
	if !ok {
		return n.add(d.missing("ItemKind", it.Kind.Span()))
	}
	switch k := kind.(type) {
	case *Mod:
		n.add(d.mod(k))
	case *Use:
		n.add(d.use(k))
	case *Struct:
		n.add(d.strct(k))
	case *Fn:
		n.add(d.fn(k))
	case *Trait:
		n.add(d.trait(k))
	}
	return n
}

func (d dumper) attr(a *Attr) *DumpNode {
	n := d.node("Attr", a.Loc)
	body, ok := a.Body.Value.Get()
	if !ok {
		return n.add(d.missing("AttrBody", a.Body.Value.Span()))
	}
	bn := d.node("AttrBody", body.Loc).add(d.path(body.Path))
	if body.Args != nil {
		bn.add(d.exprList("Args", *body.Args))
	}
	return n.add(bn, d.leftovers(a.Body.Leftovers))
}

func (d dumper) items(kind string, body parser.Delimited[[]*Item]) *DumpNode {
	n := d.node(kind, body.Span())
	for _, it := range body.Value.Value() {
		n.add(d.item(it))
	}
	return n.add(d.leftovers(body.Leftovers))
}

func (d dumper) mod(m *Mod) *DumpNode {
	n := d.node("Mod", m.Loc).add(d.ident(m.Name))
	if m.Body != nil {
		n.add(d.items("Items", *m.Body))
	}
	return n
}

func (d dumper) use(u *Use) *DumpNode {
	n := d.node("Use", u.Loc)
	trees, ok := u.Trees.Get()
	if !ok {
		return n.add(d.missing("UseTree", u.Trees.Span()))
	}
	for _, t := range trees.Items {
		n.add(d.useTree(t))
	}
	return n
}

func (d dumper) useTree(t *UseTree) *DumpNode {
	n := d.node("UseTree", t.Loc).add(d.path(t.Path))
	switch {
	case t.Group != nil:
		g := d.node("Group", t.Group.Span())
		for _, sub := range t.Group.Value.Value().Items {
			g.add(d.useTree(sub))
		}
		n.add(g.add(d.leftovers(t.Group.Leftovers)))
	case t.Glob != nil:
		n.add(d.node("Glob", t.Glob.Loc))
	case t.As != nil:
		n.add(d.ident(t.Alias))
	}
	return n
}

func (d dumper) path(pa *Path) *DumpNode {
	if pa == nil {
		return nil
	}
	n := d.node("Path", pa.Loc)
	for _, s := range pa.Segments.Items {
		sn := d.node("Segment", s.Loc)
		if s.Kind == SegIdent {
			sn.Text = d.name(s.Ident.Name)
		} else {
			sn.Text = s.Kind.String()
		}
		n.add(sn)
	}
	return n
}

func (d dumper) generics(g *Generics) *DumpNode {
	if g == nil {
		return nil
	}
	n := d.node("Generics", g.Span())
	for _, gp := range g.Value.Value().Items {
		gn := d.node("GenericParam", gp.Loc)
		gn.Text = d.name(gp.Name.Name)
		n.add(gn.add(d.bounds(gp.Bounds)))
	}
	return n
}

func (d dumper) bounds(b *Bounds) *DumpNode {
	if b == nil {
		return nil
	}
	return d.node("Bounds", b.Loc).add(d.tryExpr(b.Expr))
}

func (d dumper) contract(c Contract) []*DumpNode {
	out := make([]*DumpNode, 0, len(c))
	for _, seg := range c {
		n := d.node("Contract", seg.Loc)
		n.Text = seg.Kind.String()
		out = append(out, n.add(d.tryExpr(seg.Cond)))
	}
	return out
}

func (d dumper) strct(s *Struct) *DumpNode {
	n := d.node("Struct", s.Loc).add(d.ident(s.Name), d.generics(s.Generics))
	n.add(d.contract(s.Contract)...)
	fields, ok := s.Fields.Get()
	if !ok {
		return n.add(d.missing("Fields", s.Fields.Span()))
	}
	fn := d.node("Fields", fields.Span())
	for _, f := range fields.Value.Value().Items {
		fn.add(d.node("Field", f.Loc).add(d.ident(f.Name), d.tryType(f.Type)))
	}
	return n.add(fn.add(d.leftovers(fields.Leftovers)))
}

func (d dumper) trait(t *Trait) *DumpNode {
	n := d.node("Trait", t.Loc).add(d.ident(t.Name), d.generics(t.Generics), d.bounds(t.Bounds))
	body, ok := t.Body.Get()
	if !ok {
		return n.add(d.missing("Items", t.Body.Span()))
	}
	return n.add(d.items("Items", body))
}

func (d dumper) fn(f *Fn) *DumpNode {
	n := d.node("Fn", f.Loc).add(d.ident(f.Name), d.generics(f.Generics))
	if params, ok := f.Params.Get(); ok {
		pn := d.node("Params", params.Span())
		for _, prm := range params.Value.Value().Items {
			pn.add(d.node("Param", prm.Loc).add(d.ident(prm.Name), d.tryType(prm.Type)))
		}
		n.add(pn.add(d.leftovers(params.Leftovers)))
	} else {
		n.add(d.missing("Params", f.Params.Span()))
	}
	if f.Arrow != nil {
		n.add(d.tryType(f.Ret))
	}
	n.add(d.contract(f.Contract)...)
	if body, ok := f.Body.Get(); ok {
		n.add(d.block(body))
	} else {
		n.add(d.missing("Block", f.Body.Span()))
	}
	return n
}

func (d dumper) tryType(t parser.Try[Type]) *DumpNode {
	v, ok := t.Get()
	if !ok {
		return d.missing("Type", t.Span())
	}
	return d.typ(v)
}

func (d dumper) typ(t Type) *DumpNode {
	switch t := t.(type) {
	case *RefType:
		n := d.node("RefType", t.Loc)
		if t.Mut != nil {
			n.Text = "mut"
		}
		return n.add(d.tryType(t.Elem))
	case *TupleType:
		n := d.node("TupleType", t.Loc)
		for _, el := range t.Elems.Value.Value().Items {
			n.add(d.typ(el))
		}
		return n.add(d.leftovers(t.Elems.Leftovers))
	case *SliceType:
		return d.node("SliceType", t.Loc).add(d.tryType(t.Elem.Value), d.leftovers(t.Elem.Leftovers))
	case *PathType:
		n := d.node("PathType", t.Loc).add(d.path(t.Path))
		if t.Args != nil {
			for _, a := range t.Args.Value.Value().Items {
				n.add(d.typ(a))
			}
		}
		return n
	}
	return nil
}

func (d dumper) block(b *Block) *DumpNode {
	n := d.node("Block", b.Loc)
	for _, st := range b.Stmts() {
		n.add(d.stmt(st))
	}
	return n.add(d.leftovers(b.Body.Leftovers))
}

func (d dumper) stmt(s Stmt) *DumpNode {
	switch s := s.(type) {
	case *Let:
		n := d.node("Let", s.Loc).add(d.ident(s.Name))
		if s.Mut != nil {
			n.Text = "mut"
		}
		if s.Type != nil {
			n.add(d.tryType(*s.Type))
		}
		if s.Value != nil {
			n.add(d.tryExpr(*s.Value))
		}
		return n
	case *ItemStmt:
		return d.item(s.Item)
	case *ExprStmt:
		return d.node("ExprStmt", s.Loc).add(d.expr(s.Expr))
	case *EmptyStmt:
		return d.node("EmptyStmt", s.Loc)
	case *GarbageStmt:
		return d.skipped(s.Skipped)
	}
	return nil
}

func (d dumper) tryExpr(e parser.Try[Expr]) *DumpNode {
	v, ok := e.Get()
	if !ok {
		return d.missing("Expr", e.Span())
	}
	return d.expr(v)
}

func (d dumper) exprList(kind string, l parser.Delimited[parser.Punctuated[Expr]]) *DumpNode {
	n := d.node(kind, l.Span())
	for _, e := range l.Value.Value().Items {
		n.add(d.expr(e))
	}
	return n.add(d.leftovers(l.Leftovers))
}

func (d dumper) expr(e Expr) *DumpNode {
	switch e := e.(type) {
	case *Literal:
		n := d.node("Literal", e.Loc)
		n.Text = e.Lit.Kind.String() + " " + e.Lit.Raw
		return n
	case *Bool:
		n := d.node("Bool", e.Loc)
		n.Text = fmt.Sprint(e.Value)
		return n
	case *PathExpr:
		return d.path(e.Path)
	case *Paren:
		return d.node("Paren", e.Loc).add(d.expr(e.Inner))
	case *Tuple:
		return d.exprList("Tuple", e.Elems)
	case *Unary:
		n := d.node("Unary", e.Loc)
		n.Text = e.Op.String()
		return n.add(d.tryExpr(e.Operand))
	case *Binary:
		n := d.node("Binary", e.Loc)
		n.Text = e.Op.String()
		return n.add(d.expr(e.Lhs), d.tryExpr(e.Rhs))
	case *Cast:
		return d.node("Cast", e.Loc).add(d.expr(e.Expr), d.tryType(e.Type))
	case *Call:
		return d.node("Call", e.Loc).add(d.expr(e.Callee), d.exprList("Args", e.Args))
	case *Member:
		return d.node("Member", e.Loc).add(d.expr(e.Recv), d.ident(e.Name))
	case *Index:
		return d.node("Index", e.Loc).add(d.expr(e.Recv), d.tryExpr(e.Index.Value), d.leftovers(e.Index.Leftovers))
	case *Block:
		return d.block(e)
	case *If:
		n := d.node("If", e.Loc).add(d.tryExpr(e.Cond))
		if b, ok := e.Then.Get(); ok {
			n.add(d.block(b))
		} else {
			n.add(d.missing("Block", e.Then.Span()))
		}
		if e.Else != nil {
			n.add(d.node("Else", e.Else.Loc).add(d.tryExpr(e.Else.Body)))
		}
		return n
	case *While:
		n := d.node("While", e.Loc).add(d.tryExpr(e.Cond))
		if b, ok := e.Body.Get(); ok {
			return n.add(d.block(b))
		}
		return n.add(d.missing("Block", e.Body.Span()))
	case *Return:
		n := d.node("Return", e.Loc)
		if e.Value != nil {
			n.add(d.expr(e.Value))
		}
		return n
	}
	return nil
}
