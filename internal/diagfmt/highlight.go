package diagfmt

import (
	"io"
	"slices"

	"github.com/fatih/color"

	"oath/internal/highlight"
	"oath/internal/source"
)

var highlightColors = map[highlight.Color]*color.Color{
	highlight.Green:  color.New(color.FgGreen),
	highlight.Blue:   color.New(color.FgBlue, color.Bold),
	highlight.Cyan:   color.New(color.FgCyan),
	highlight.Yellow: color.New(color.FgYellow),
}

// FormatHighlighted writes the file content with highlighted spans colored.
// Overlapping spans keep the one that starts first.
func FormatHighlighted(w io.Writer, file *source.File, items []highlight.Item, useColor bool) error {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b highlight.Item) int {
		return a.Span.Start.Compare(b.Span.Start)
	})

	var cursor uint32
	for _, it := range sorted {
		if it.Span.File != file.ID {
			continue
		}
		start, end := file.Offset(it.Span.Start), file.Offset(it.Span.End)
		if start < cursor || end <= start {
			continue
		}
		if _, err := w.Write(file.Content[cursor:start]); err != nil {
			return err
		}
		text := string(file.Content[start:end])
		if c, ok := highlightColors[it.Color]; ok && useColor {
			c.EnableColor()
			text = c.Sprint(text)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		cursor = end
	}
	_, err := w.Write(file.Content[cursor:])
	return err
}
