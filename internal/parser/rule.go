package parser

// Rule is one grammar production.
//
// Detect must look at the next token only and must not consume anything.
// Parse is only called when Detect returned true and must consume at least
// one token.
type Rule[T any] interface {
	Desc() string
	Detect(p *Parser) bool
	Parse(p *Parser) (T, Exit)
}

// StrictDetector is implemented by rules with a fallback variant: DetectStrict
// ignores the fallback, so recovery can tell a real restart point from garbage.
type StrictDetector interface {
	DetectStrict(p *Parser) bool
}

// DetectStrict calls r's strict detection when it has one.
func DetectStrict[T any](p *Parser, r Rule[T]) bool {
	if s, ok := r.(StrictDetector); ok {
		return s.DetectStrict(p)
	}
	return r.Detect(p)
}

// OptionParse parses r when it detects; otherwise nothing is consumed.
func OptionParse[T any](p *Parser, r Rule[T]) (T, bool, Exit) {
	if !r.Detect(p) {
		var zero T
		return zero, false, Complete
	}
	v, exit := r.Parse(p)
	return v, true, exit
}

// Require parses r or reports "expected {desc}" at the next token and fails with Cut.
func Require[T any](p *Parser, r Rule[T]) (Try[T], Exit) {
	if !r.Detect(p) {
		p.Expected(p.NextSpan(), r.Desc())
		return Failure[T](p.Here()), Cut
	}
	v, exit := r.Parse(p)
	return Success(v), exit
}

// ParseOr parses r or substitutes fallback without a diagnostic.
func ParseOr[T any](p *Parser, r Rule[T], fallback T) (T, Exit) {
	v, ok, exit := OptionParse(p, r)
	if !ok {
		return fallback, Complete
	}
	return v, exit
}

// Opt makes r optional: it always detects and yields nil when r is absent.
type Opt[T any] struct{ Inner Rule[T] }

func (o Opt[T]) Desc() string { return o.Inner.Desc() }

func (o Opt[T]) Detect(*Parser) bool { return true }

func (o Opt[T]) Parse(p *Parser) (*T, Exit) {
	v, ok, exit := OptionParse(p, o.Inner)
	if !ok {
		return nil, Complete
	}
	return &v, exit
}

// Box is a passthrough returning *T, for recursive nodes.
type Box[T any] struct{ Inner Rule[T] }

func (b Box[T]) Desc() string { return b.Inner.Desc() }

func (b Box[T]) Detect(p *Parser) bool { return b.Inner.Detect(p) }

func (b Box[T]) DetectStrict(p *Parser) bool { return DetectStrict(p, b.Inner) }

func (b Box[T]) Parse(p *Parser) (*T, Exit) {
	v, exit := b.Inner.Parse(p)
	return &v, exit
}
