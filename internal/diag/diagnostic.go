package diag

import (
	"fmt"
	"io"
	"strings"

	"oath/internal/source"
)

// Arg is one template argument: a static string or an interned identifier.
type Arg struct {
	text  string
	ident source.StrID
	isID  bool
}

// Str wraps a static string argument.
func Str(s string) Arg { return Arg{text: s} }

// Ident wraps an identifier argument; it is resolved through the interner on render.
func Ident(id source.StrID) Arg { return Arg{ident: id, isID: true} }

// IsIdent reports whether the argument is an interned identifier.
func (a Arg) IsIdent() bool { return a.isID }

// Text renders the argument the way it appears in a message.
func (a Arg) Text(in *source.Interner) string {
	var b strings.Builder
	_ = a.write(&b, in)
	return b.String()
}

func (a Arg) write(w io.Writer, in *source.Interner) error {
	if !a.isID {
		_, err := io.WriteString(w, a.text)
		return err
	}
	if in == nil {
		_, err := fmt.Fprintf(w, "#%x", uint64(a.ident))
		return err
	}
	if _, err := io.WriteString(w, "`"); err != nil {
		return err
	}
	if err := in.UninternFmt(w, a.ident); err != nil {
		return err
	}
	_, err := io.WriteString(w, "`")
	return err
}

type Note struct {
	Span source.Span
	Msg  string
}

type FixEdit struct {
	Span    source.Span
	NewText string
}

type Fix struct {
	Title string
	Edits []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Primary  source.Span
	Args     []Arg
	Notes    []Note
	Fixes    []Fix
}

// Render writes the message, substituting Args into the code template in order.
// Surplus placeholders render as "?"; surplus Args are ignored.
func (d Diagnostic) Render(w io.Writer, in *source.Interner) error {
	tpl := d.Code.Template()
	next := 0
	for {
		i := strings.Index(tpl, "{}")
		if i < 0 {
			break
		}
		if _, err := io.WriteString(w, tpl[:i]); err != nil {
			return err
		}
		if next < len(d.Args) {
			if err := d.Args[next].write(w, in); err != nil {
				return err
			}
			next++
		} else if _, err := io.WriteString(w, "?"); err != nil {
			return err
		}
		tpl = tpl[i+2:]
	}
	_, err := io.WriteString(w, tpl)
	return err
}

// Message renders the diagnostic into a string.
func (d Diagnostic) Message(in *source.Interner) string {
	var b strings.Builder
	// strings.Builder не возвращает ошибок
	_ = d.Render(&b, in)
	return b.String()
}
