package source

import (
	"crypto/sha256"
	"os"
)

// FileSet owns every file of one compilation and hands out their IDs.
// Adding the same path twice yields two independent files.
type FileSet struct {
	files   []File
	baseDir string // базовая директория для относительных путей
}

// NewFileSet creates an empty FileSet relative to the working directory.
func NewFileSet() *FileSet {
	return &FileSet{}
}

// NewFileSetWithBase создаёт FileSet с заданной базовой директорией.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{baseDir: baseDir}
}

// SetBaseDir устанавливает базовую директорию для относительных путей.
func (fileSet *FileSet) SetBaseDir(dir string) {
	fileSet.baseDir = dir
}

// BaseDir returns the base directory, falling back to the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir != "" {
		return fileSet.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Add stores already normalized content and returns its new FileID.
func (fileSet *FileSet) Add(path string, content []byte, origin Origin) FileID {
	id := FileID(mustU32(len(fileSet.files)))
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Origin:  origin,
	})
	return id
}

// Load reads a file from disk, strips a BOM, folds CRLF and adds it.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, origin := normalizeContent(raw)
	return fileSet.Add(path, content, origin), nil
}

// AddVirtual adds in-memory content (stdin, tests, placeholders) as is.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, Origin{Virtual: true})
}

// Get returns the file for id, or nil when id is not from this set.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// Resolve converts a span into 1-based line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	return span.Start.LineCol(), span.End.LineCol()
}

// Len returns the number of files added so far.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// GetLatest returns the most recently added file with the given path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	want := normalizePath(path)
	for i := len(fileSet.files) - 1; i >= 0; i-- {
		if fileSet.files[i].Path == want {
			return fileSet.files[i].ID, true
		}
	}
	return 0, false
}
