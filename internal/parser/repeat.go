package parser

// Many parses r while it detects. The loop stops when an iteration consumes
// nothing, or after a Cut unless a non-fallback variant detects next; in that
// case the returned exit is Cut.
func Many[T any](p *Parser, r Rule[T]) ([]T, Exit) {
	var out []T
	for r.Detect(p) {
		m := p.Mark()
		v, exit := r.Parse(p)
		out = append(out, v)
		if !p.ConsumedSince(m) {
			return out, exit
		}
		if exit.IsCut() && !DetectStrict(p, r) {
			return out, Cut
		}
	}
	return out, Complete
}

// Repeated is zero or more of Item; it always detects.
type Repeated[T any] struct{ Item Rule[T] }

func (r Repeated[T]) Desc() string { return r.Item.Desc() }

func (r Repeated[T]) Detect(*Parser) bool { return true }

func (r Repeated[T]) Parse(p *Parser) ([]T, Exit) { return Many(p, r.Item) }

// Rep is one or more of Item.
type Rep[T any] struct{ Item Rule[T] }

func (r Rep[T]) Desc() string { return r.Item.Desc() }

func (r Rep[T]) Detect(p *Parser) bool { return r.Item.Detect(p) }

func (r Rep[T]) DetectStrict(p *Parser) bool { return DetectStrict(p, r.Item) }

func (r Rep[T]) Parse(p *Parser) ([]T, Exit) { return Many(p, r.Item) }
