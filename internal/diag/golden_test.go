package diag

import (
	"testing"

	"oath/internal/source"
)

func goldenFixture() (*source.FileSet, []Diagnostic) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")
	a := fs.Add("/workspace/testdata/golden/a.oath", []byte("a\nb\n"), source.Origin{})
	b := fs.Add("/workspace/testdata/b.oath", []byte("x\n"), source.Origin{})

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SemaDoesntExist,
			Args:     []Arg{Str("`b`")},
			Primary:  source.FromStartLen(a, source.Pos(1, 0), 1),
		},
		{
			Severity: SevError,
			Code:     SynExpected,
			Args:     []Arg{Str("`;`\nafter item")},
			Primary:  source.FromStartLen(a, source.Pos(0, 0), 1),
			Notes:    []Note{{Span: source.ZeroAt(b, source.Pos(0, 1)), Msg: "item\r\nstarts here"}},
		},
	}
	return fs, diags
}

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs, diags := goldenFixture()

	want := "note SYN2001 testdata/b.oath:1:2 item starts here\n" +
		"error SYN2001 testdata/golden/a.oath:1:1 expected `;` after item\n" +
		"warning SEM3001 testdata/golden/a.oath:2:1 `b` doesn't exist in this context"
	if got := FormatGoldenDiagnostics(diags, fs, nil, true); got != want {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestFormatShortKeepsOrder(t *testing.T) {
	fs, diags := goldenFixture()

	want := "warning SEM3001 testdata/golden/a.oath:2:1 `b` doesn't exist in this context\n" +
		"error SYN2001 testdata/golden/a.oath:1:1 expected `;` after item"
	if got := FormatShortDiagnostics(diags, fs, nil, false); got != want {
		t.Fatalf("short output:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
	if got := FormatShortDiagnostics(nil, fs, nil, true); got != "" {
		t.Fatalf("no diagnostics must render nothing, got %q", got)
	}
}

func TestSeverityNames(t *testing.T) {
	cases := []struct {
		sev         Severity
		name, label string
	}{
		{SevInfo, "INFO", "info"},
		{SevWarning, "WARNING", "warning"},
		{SevError, "ERROR", "error"},
		{Severity(9), "UNKNOWN", "unknown"},
	}
	for _, tc := range cases {
		if tc.sev.String() != tc.name || tc.sev.Label() != tc.label {
			t.Errorf("severity %d: got %s/%s, want %s/%s", tc.sev, tc.sev, tc.sev.Label(), tc.name, tc.label)
		}
	}
}
