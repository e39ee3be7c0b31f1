package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	TokInfo                Code = 1000
	TokUnknownToken        Code = 1001
	TokUnclosed            Code = 1002
	TokUnopened            Code = 1003
	TokUnterminatedString  Code = 1004
	TokUnterminatedChar    Code = 1005
	TokUnterminatedComment Code = 1006
	TokMalformedNumber     Code = 1007

	// Парсерные
	SynInfo             Code = 2000
	SynExpected         Code = 2001
	SynUnexpectedTokens Code = 2002
	SynCannotBePutOn    Code = 2003
	SynDouble           Code = 2004

	// Связывание имён; выдаётся потребителями дерева через тот же sink
	SemaInfo           Code = 3000
	SemaDoesntExist    Code = 3001
	SemaAlreadyDefined Code = 3002

	// Ошибки I/O
	IOLoadFileError Code = 4001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:            "Unknown error",
		TokInfo:                "Token information",
		TokUnknownToken:        "Unknown token",
		TokUnclosed:            "Unclosed delimiter",
		TokUnopened:            "Unopened delimiter",
		TokUnterminatedString:  "Unterminated string",
		TokUnterminatedChar:    "Unterminated char",
		TokUnterminatedComment: "Unterminated block comment",
		TokMalformedNumber:     "Malformed number",
		SynInfo:                "Syntax information",
		SynExpected:            "Expected syntax",
		SynUnexpectedTokens:    "Unexpected tokens",
		SynCannotBePutOn:       "Misplaced modifier",
		SynDouble:              "Duplicated modifier",
		SemaInfo:               "Binding information",
		SemaDoesntExist:        "Unknown name",
		SemaAlreadyDefined:     "Name conflict",
		IOLoadFileError:        "I/O load file error",
	}

	// codeTemplate holds the message shapes; every "{}" takes the next Arg.
	codeTemplate = map[Code]string{
		TokUnknownToken:        "unknown token",
		TokUnclosed:            "unclosed {}",
		TokUnopened:            "unopened {}",
		TokUnterminatedString:  "unterminated string",
		TokUnterminatedChar:    "unterminated char",
		TokUnterminatedComment: "unterminated block comment",
		TokMalformedNumber:     "malformed number",
		SynExpected:            "expected {}",
		SynUnexpectedTokens:    "unexpected tokens",
		SynCannotBePutOn:       "{} cannot be put on {}",
		SynDouble:              "double {}",
		SemaDoesntExist:        "{} doesn't exist in this context",
		SemaAlreadyDefined:     "{} is already defined",
		IOLoadFileError:        "failed to load file: {}",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("TOK%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

// Template returns the message template, falling back to a single placeholder.
func (c Code) Template() string {
	if tpl, ok := codeTemplate[c]; ok {
		return tpl
	}
	return "{}"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
