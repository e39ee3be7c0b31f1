package diagfmt

import "oath/internal/source"

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color       bool
	Context     int8 // строки контекста вокруг основной
	Paths       source.PathStyle
	ShowNotes   bool
	ShowFixes   bool
	ShowPreview bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	Paths            source.PathStyle
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
	IncludeFixes     bool
	IncludePreviews  bool
}

// formatPath renders f in style; the empty style is source.PathAuto.
func formatPath(f *source.File, fs *source.FileSet, style source.PathStyle) string {
	switch style {
	case "":
		style = source.PathAuto
	case source.PathRelative:
		return f.FormatPath(style, fs.BaseDir())
	}
	return f.FormatPath(style, "")
}
