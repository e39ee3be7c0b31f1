package parser

// Variant is one alternative of an Enum.
type Variant[T any] struct {
	Name   string
	Detect func(p *Parser) bool
	Parse  func(p *Parser) (T, Exit)
}

// Case lifts a rule into a variant.
func Case[T, V any](name string, r Rule[V], wrap func(V) T) Variant[T] {
	return Variant[T]{
		Name:   name,
		Detect: r.Detect,
		Parse: func(p *Parser) (T, Exit) {
			v, exit := r.Parse(p)
			return wrap(v), exit
		},
	}
}

// Enum tries its variants top to bottom; Fallback, when set, runs only when no
// variant detects and the scope is not empty.
type Enum[T any] struct {
	Name     string
	Variants []Variant[T]
	Fallback func(p *Parser) (T, Exit)
}

func (e *Enum[T]) Desc() string { return e.Name }

func (e *Enum[T]) DetectStrict(p *Parser) bool {
	for _, v := range e.Variants {
		if v.Detect(p) {
			return true
		}
	}
	return false
}

func (e *Enum[T]) Detect(p *Parser) bool {
	if e.DetectStrict(p) {
		return true
	}
	return e.Fallback != nil && !p.IsEmpty()
}

func (e *Enum[T]) Parse(p *Parser) (T, Exit) {
	for _, v := range e.Variants {
		if v.Detect(p) {
			return v.Parse(p)
		}
	}
	if e.Fallback != nil {
		return e.Fallback(p)
	}
	var zero T
	return zero, Cut
}

// Detecting lists the names of every variant that detects at p.
func (e *Enum[T]) Detecting(p *Parser) []string {
	var names []string
	for _, v := range e.Variants {
		if v.Detect(p) {
			names = append(names, v.Name)
		}
	}
	return names
}
