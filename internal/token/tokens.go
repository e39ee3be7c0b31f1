package token

import (
	"cmp"
	"slices"
)

// keywordSet and punctSet are the single token-set definition of the
// language. Lookup maps and the lexer's longest-match list derive from them.
var keywordSet = [keywordCount]string{
	KwMod:     "mod",
	KwUse:     "use",
	KwPub:     "pub",
	KwRaw:     "raw",
	KwCon:     "con",
	KwFn:      "fn",
	KwStruct:  "struct",
	KwTrait:   "trait",
	KwLet:     "let",
	KwMut:     "mut",
	KwIf:      "if",
	KwElse:    "else",
	KwWhile:   "while",
	KwReturn:  "return",
	KwTrue:    "true",
	KwFalse:   "false",
	KwSuper:   "super",
	KwPackage: "package",
	KwSelf:    "self",
	KwPromise: "promise",
	KwRequire: "require",
	KwAs:      "as",
}

var punctSet = [punctCount]string{
	ShrAssign:   ">>=",
	ShlAssign:   "<<=",
	ColonColon:  "::",
	Arrow:       "->",
	FatArrow:    "=>",
	EqEq:        "==",
	BangEq:      "!=",
	LtEq:        "<=",
	GtEq:        ">=",
	Shl:         "<<",
	Shr:         ">>",
	AndAnd:      "&&",
	OrOr:        "||",
	PlusAssign:  "+=",
	MinusAssign: "-=",
	StarAssign:  "*=",
	SlashAssign: "/=",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	Slash:       "/",
	Percent:     "%",
	Assign:      "=",
	Lt:          "<",
	Gt:          ">",
	Bang:        "!",
	Amp:         "&",
	Pipe:        "|",
	Caret:       "^",
	Colon:       ":",
	Semicolon:   ";",
	Comma:       ",",
	Dot:         ".",
	Hash:        "#",
	Question:    "?",
	At:          "@",
}

var (
	keywords map[string]Keyword
	// puncts is sorted longest lexeme first for greedy matching.
	puncts []Punct
)

func init() {
	keywords = make(map[string]Keyword, len(keywordSet))
	for kw, text := range keywordSet {
		if text != "" {
			keywords[text] = Keyword(kw)
		}
	}
	for p, text := range punctSet {
		if text != "" {
			puncts = append(puncts, Punct(p))
		}
	}
	slices.SortStableFunc(puncts, func(a, b Punct) int {
		return cmp.Compare(len(punctSet[b]), len(punctSet[a]))
	})
}

// LookupKeyword возвращает keyword и bool, если ident зарезервирован.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Keyword, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// MatchPunct returns the longest punct that prefixes src.
func MatchPunct(src []byte) (Punct, int, bool) {
	for _, p := range puncts {
		text := punctSet[p]
		if len(src) >= len(text) && string(src[:len(text)]) == text {
			return p, len(text), true
		}
	}
	return PunctInvalid, 0, false
}

// Keywords lists every keyword in declaration order.
func Keywords() []Keyword {
	out := make([]Keyword, 0, keywordCount-1)
	for kw := KwInvalid + 1; kw < keywordCount; kw++ {
		out = append(out, kw)
	}
	return out
}

// Puncts lists every punct in declaration order.
func Puncts() []Punct {
	out := make([]Punct, 0, punctCount-1)
	for p := PunctInvalid + 1; p < punctCount; p++ {
		out = append(out, p)
	}
	return out
}

func (k Keyword) String() string {
	if k >= keywordCount || keywordSet[k] == "" {
		return "<invalid keyword>"
	}
	return keywordSet[k]
}

func (p Punct) String() string {
	if p >= punctCount || punctSet[p] == "" {
		return "<invalid punct>"
	}
	return punctSet[p]
}

// Len is the lexeme width in bytes.
func (p Punct) Len() uint32 {
	return uint32(len(p.String()))
}

// SplitGt peels a leading '>' off a compound punct. It is how a generic
// list closes on ">>" or ">=".
func (p Punct) SplitGt() (rest Punct, ok bool) {
	switch p {
	case Shr:
		return Gt, true
	case GtEq:
		return Assign, true
	case ShrAssign:
		return GtEq, true
	}
	return PunctInvalid, false
}

// IsGtClass reports whether p starts with '>'.
func (p Punct) IsGtClass() bool {
	if p == Gt {
		return true
	}
	_, ok := p.SplitGt()
	return ok
}
