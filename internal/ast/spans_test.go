package ast

import (
	"testing"

	"oath/internal/source"
)

// spanCheck asserts that a node's span is exactly the join of its parts.
type spanCheck struct {
	t       *testing.T
	env     testEnv
	src     string
	checked int
}

func (c *spanCheck) eq(kind string, n source.Spanned, parts ...source.Span) {
	c.t.Helper()
	c.checked++
	want, ok := source.JoinAll(parts...)
	if !ok {
		c.t.Errorf("%s: %s has no parts", c.src, kind)
		return
	}
	if got := n.Span(); got != want {
		c.t.Errorf("%s: %s span %q, parts join to %q", c.src, kind, c.env.text(got), c.env.text(want))
	}
}

func (c *spanCheck) item(it *Item) {
	var parts []source.Span
	for _, a := range it.Attrs {
		c.eq("Attr", a, a.Hash.Loc, a.Body.Span())
		parts = append(parts, a.Loc)
	}
	for _, m := range it.Mods {
		parts = append(parts, m.Loc)
	}
	c.eq("Item", it, append(parts, it.Kind.Span())...)

	switch k := it.Kind.Value().(type) {
	case *Fn:
		parts := []source.Span{k.Kw.Loc, k.Name.Span(), k.Params.Span()}
		if k.Generics != nil {
			c.generics(k.Generics)
			parts = append(parts, k.Generics.Span())
		}
		for _, prm := range k.Params.Value().Value.Value().Items {
			pp := []source.Span{prm.Name.Span(), prm.Colon.Span(), prm.Type.Span()}
			if prm.Mut != nil {
				pp = append(pp, prm.Mut.Loc)
			}
			c.eq("Param", prm, pp...)
		}
		if k.Arrow != nil {
			parts = append(parts, k.Arrow.Loc, k.Ret.Span())
		}
		parts = append(parts, c.contract(k.Contract)...)
		c.eq("Fn", k, append(parts, k.Body.Span())...)
		c.expr(k.Body.Value())
	case *Struct:
		parts := []source.Span{k.Kw.Loc, k.Name.Span(), k.Fields.Span()}
		if k.Generics != nil {
			c.generics(k.Generics)
			parts = append(parts, k.Generics.Span())
		}
		for _, f := range k.Fields.Value().Value.Value().Items {
			fp := []source.Span{f.Name.Span(), f.Colon.Span(), f.Type.Span()}
			for _, m := range f.Mods {
				fp = append(fp, m.Loc)
			}
			c.eq("Field", f, fp...)
		}
		c.eq("Struct", k, append(parts, c.contract(k.Contract)...)...)
	case *Trait:
		parts := []source.Span{k.Kw.Loc, k.Name.Span(), k.Body.Span()}
		if k.Generics != nil {
			c.generics(k.Generics)
			parts = append(parts, k.Generics.Span())
		}
		if k.Bounds != nil {
			c.eq("Bounds", k.Bounds, k.Bounds.Colon.Loc, k.Bounds.Expr.Span())
			parts = append(parts, k.Bounds.Loc)
		}
		c.eq("Trait", k, parts...)
		for _, sub := range k.Body.Value().Value.Value() {
			c.item(sub)
		}
	case *Mod:
		parts := []source.Span{k.Kw.Loc, k.Name.Span()}
		if k.Semi != nil {
			parts = append(parts, k.Semi.Loc)
		}
		if k.Body != nil {
			parts = append(parts, k.Body.Span())
			for _, sub := range k.Body.Value.Value() {
				c.item(sub)
			}
		}
		c.eq("Mod", k, parts...)
	case *Use:
		c.eq("Use", k, k.Kw.Loc, k.Trees.Value().End.Span())
	}
}

func (c *spanCheck) generics(g *Generics) {
	for _, gp := range g.Value.Value().Items {
		parts := []source.Span{gp.Name.Loc}
		if gp.Bounds != nil {
			c.eq("Bounds", gp.Bounds, gp.Bounds.Colon.Loc, gp.Bounds.Expr.Span())
			parts = append(parts, gp.Bounds.Loc)
		}
		c.eq("GenericParam", gp, parts...)
	}
}

func (c *spanCheck) contract(segs Contract) []source.Span {
	var out []source.Span
	for _, seg := range segs {
		c.eq("ContractSegment", seg, seg.Kw.Loc, seg.Cond.Span())
		c.expr(seg.Cond.Value())
		out = append(out, seg.Loc)
	}
	return out
}

func (c *spanCheck) stmt(s Stmt) {
	switch s := s.(type) {
	case *Let:
		parts := []source.Span{s.Kw.Loc, s.Name.Span(), s.Semi.Span()}
		if s.Mut != nil {
			parts = append(parts, s.Mut.Loc)
		}
		if s.Type != nil {
			parts = append(parts, s.Type.Span())
		}
		if s.Value != nil {
			parts = append(parts, s.Value.Span())
			c.expr(s.Value.Value())
		}
		c.eq("Let", s, parts...)
	case *ExprStmt:
		parts := []source.Span{s.Expr.Span()}
		if s.Semi != nil {
			parts = append(parts, s.Semi.Loc)
		}
		c.eq("ExprStmt", s, parts...)
		c.expr(s.Expr)
	case *ItemStmt:
		c.eq("ItemStmt", s, s.Item.Loc)
		c.item(s.Item)
	}
}

func (c *spanCheck) expr(e Expr) {
	switch e := e.(type) {
	case *PathExpr:
		var parts []source.Span
		for _, seg := range e.Path.Segments.Items {
			parts = append(parts, seg.Loc)
		}
		c.eq("PathExpr", e, parts...)
	case *Unary:
		c.eq("Unary", e, e.OpLoc, e.Operand.Span())
		c.expr(e.Operand.Value())
	case *Binary:
		c.eq("Binary", e, e.Lhs.Span(), e.OpLoc, e.Rhs.Span())
		c.expr(e.Lhs)
		c.expr(e.Rhs.Value())
	case *Cast:
		c.eq("Cast", e, e.Expr.Span(), e.As.Loc, e.Type.Span())
		c.expr(e.Expr)
	case *Call:
		c.eq("Call", e, e.Callee.Span(), e.Args.Span())
		c.expr(e.Callee)
		for _, a := range e.Args.Value.Value().Items {
			c.expr(a)
		}
	case *Member:
		c.eq("Member", e, e.Recv.Span(), e.Dot.Loc, e.Name.Span())
		c.expr(e.Recv)
	case *Index:
		c.eq("Index", e, e.Recv.Span(), e.Index.Span())
		c.expr(e.Recv)
		c.expr(e.Index.Value.Value())
	case *Paren:
		c.expr(e.Inner)
	case *Tuple:
		c.eq("Tuple", e, e.Elems.Span())
		for _, el := range e.Elems.Value.Value().Items {
			c.expr(el)
		}
	case *Block:
		c.eq("Block", e, e.Body.Span())
		for _, st := range e.Stmts() {
			c.stmt(st)
		}
	case *If:
		parts := []source.Span{e.Kw.Loc, e.Cond.Span(), e.Then.Span()}
		if e.Else != nil {
			c.eq("Else", e.Else, e.Else.Kw.Loc, e.Else.Body.Span())
			c.expr(e.Else.Body.Value())
			parts = append(parts, e.Else.Loc)
		}
		c.eq("If", e, parts...)
		c.expr(e.Cond.Value())
		c.expr(e.Then.Value())
	case *While:
		c.eq("While", e, e.Kw.Loc, e.Cond.Span(), e.Body.Span())
		c.expr(e.Cond.Value())
		c.expr(e.Body.Value())
	case *Return:
		parts := []source.Span{e.Kw.Loc}
		if e.Value != nil {
			parts = append(parts, e.Value.Span())
			c.expr(e.Value)
		}
		c.eq("Return", e, parts...)
	}
}

func TestSpanIsJoinOfParts(t *testing.T) {
	for _, src := range wellFormed {
		env, tree := parseSource(t, src)
		env.noDiagnostics(t)
		c := &spanCheck{t: t, env: env, src: src}
		var parts []source.Span
		for _, it := range tree.Items {
			parts = append(parts, it.Loc)
			c.item(it)
		}
		c.eq("SyntaxTree", tree, parts...)
		if c.checked < 3 {
			t.Errorf("%s: only %d nodes checked", src, c.checked)
		}
	}
}
