package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileID uniquely identifies a source file within a FileSet.
type FileID uint32

// Origin records where the bytes of a file came from and what Load normalized.
type Origin struct {
	Virtual bool // не с диска: тест, stdin, сгенерированный текст
	HadBOM  bool
	HadCRLF bool
}

// File is one loaded source text with its line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Origin  Origin
}

// LineCol is a human-readable position: both fields are 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}

// PathStyle selects how FormatPath renders a file path.
type PathStyle string

const (
	PathAbsolute PathStyle = "absolute"
	PathRelative PathStyle = "relative"
	PathBasename PathStyle = "basename"
	// PathAuto keeps short or relative paths and shortens long absolute ones.
	PathAuto PathStyle = "auto"
)

// autoPathLimit is the length above which PathAuto drops to the basename.
const autoPathLimit = 40

// LineCount returns the number of lines; an empty file has one.
func (f *File) LineCount() uint32 {
	return mustU32(len(f.LineIdx)) + 1
}

// LineStart returns the byte offset of the first byte of a 0-based line.
// Lines past the end start at the end of content.
func (f *File) LineStart(line uint32) uint32 {
	switch {
	case line == 0:
		return 0
	case int(line) > len(f.LineIdx):
		return f.size()
	default:
		return f.LineIdx[line-1] + 1
	}
}

// lineEnd returns the offset of the '\n' ending a 0-based line, or the content end.
func (f *File) lineEnd(line uint32) uint32 {
	if int(line) < len(f.LineIdx) {
		return f.LineIdx[line]
	}
	return f.size()
}

// Offset converts a position into a byte offset, clamped to the content length.
func (f *File) Offset(pos Position) uint32 {
	return min(f.LineStart(pos.Line)+pos.Col, f.size())
}

// PositionAt converts a byte offset into a 0-based position.
func (f *File) PositionAt(off uint32) Position {
	lc := toLineCol(f.LineIdx, off)
	return Position{Line: lc.Line - 1, Col: lc.Col - 1}
}

// Text returns the source covered by span.
func (f *File) Text(span Span) string {
	start, end := f.Offset(span.Start), f.Offset(span.End)
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// GetLine returns the 1-based line n without its newline, or "" when n is out of range.
func (f *File) GetLine(n uint32) string {
	if n == 0 || n > f.LineCount() {
		return ""
	}
	start, end := f.LineStart(n-1), f.lineEnd(n-1)
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders the path in the given style. baseDir only matters for
// PathRelative; an empty baseDir means the working directory.
func (f *File) FormatPath(style PathStyle, baseDir string) string {
	switch style {
	case PathAbsolute:
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
	case PathRelative:
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
	case PathBasename:
		return BaseName(f.Path)
	case PathAuto:
		if len(f.Path) >= autoPathLimit && filepath.IsAbs(f.Path) {
			return BaseName(f.Path)
		}
	}
	return f.Path
}

func (f *File) size() uint32 {
	return mustU32(len(f.Content))
}

// mustU32 converts a length; overflow means a file larger than 4 GiB.
func mustU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return v
}
