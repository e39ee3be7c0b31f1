package token

// TreeKind discriminates the variants of Tree.
type TreeKind uint8

const (
	// TreeInvalid is the zero value; the lexer never produces it.
	TreeInvalid TreeKind = iota
	// TreeGroup is a delimited group with nested children.
	TreeGroup
	// TreeIdent is an identifier.
	TreeIdent
	// TreeKeyword is a reserved word.
	TreeKeyword
	// TreePunct is an operator or punctuation mark.
	TreePunct
	// TreeLiteral is a number, char or string literal.
	TreeLiteral
)

func (k TreeKind) String() string {
	switch k {
	case TreeGroup:
		return "Group"
	case TreeIdent:
		return "Ident"
	case TreeKeyword:
		return "Keyword"
	case TreePunct:
		return "Punct"
	case TreeLiteral:
		return "Literal"
	}
	return "Invalid"
}

// Keyword enumerates reserved words.
type Keyword uint8

const (
	KwInvalid Keyword = iota
	KwMod
	KwUse
	KwPub
	KwRaw
	KwCon
	KwFn
	KwStruct
	KwTrait
	KwLet
	KwMut
	KwIf
	KwElse
	KwWhile
	KwReturn
	KwTrue
	KwFalse
	KwSuper
	KwPackage
	KwSelf
	KwPromise
	KwRequire
	KwAs

	keywordCount
)

// Punct enumerates operators and punctuation.
type Punct uint8

const (
	PunctInvalid Punct = iota
	ShrAssign          // >>=
	ShlAssign          // <<=
	ColonColon         // ::
	Arrow              // ->
	FatArrow           // =>
	EqEq               // ==
	BangEq             // !=
	LtEq               // <=
	GtEq               // >=
	Shl                // <<
	Shr                // >>
	AndAnd             // &&
	OrOr               // ||
	PlusAssign         // +=
	MinusAssign        // -=
	StarAssign         // *=
	SlashAssign        // /=
	Plus               // +
	Minus              // -
	Star               // *
	Slash              // /
	Percent            // %
	Assign             // =
	Lt                 // <
	Gt                 // >
	Bang               // !
	Amp                // &
	Pipe               // |
	Caret              // ^
	Colon              // :
	Semicolon          // ;
	Comma              // ,
	Dot                // .
	Hash               // #
	Question           // ?
	At                 // @

	punctCount
)

// Delimiter is the bracket family of a group.
type Delimiter uint8

const (
	Parens   Delimiter = iota // ( )
	Braces                    // { }
	Brackets                  // [ ]
	Angles                    // < >
)

// Open returns the opening lexeme.
func (d Delimiter) Open() string {
	switch d {
	case Parens:
		return "("
	case Braces:
		return "{"
	case Brackets:
		return "["
	case Angles:
		return "<"
	}
	return "?"
}

// Close returns the closing lexeme.
func (d Delimiter) Close() string {
	switch d {
	case Parens:
		return ")"
	case Braces:
		return "}"
	case Brackets:
		return "]"
	case Angles:
		return ">"
	}
	return "?"
}

func (d Delimiter) String() string {
	return d.Open() + d.Close()
}

// LitKind discriminates literal payloads.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitChar
	LitStr
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "Int"
	case LitFloat:
		return "Float"
	case LitChar:
		return "Char"
	case LitStr:
		return "Str"
	}
	return "?"
}
