package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"oath/internal/ast"
	"oath/internal/diag"
	"oath/internal/highlight"
	"oath/internal/observ"
	"oath/internal/source"
)

// ParseDirResult содержит результат парсинга одного файла
type ParseDirResult struct {
	Path       string        // Путь к файлу
	FileID     source.FileID // ID файла в FileSet
	Tree       *ast.SyntaxTree
	Bag        *diag.Bag
	Highlights []highlight.Item
	Timing     *observ.Report
}

// DiagnoseDirResult содержит диагностики одного файла
type DiagnoseDirResult struct {
	Path     string
	FileID   source.FileID
	Bag      *diag.Bag
	Cached   bool
	Timing   *observ.Report
	CacheErr error
}

type dirFile struct {
	path    string
	id      source.FileID
	loadErr error
}

// ListSourceFiles возвращает отсортированный список всех *.oath файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// loadDir предзагружает все файлы последовательно: FileSet не потокобезопасен
// на запись, а воркеры дальше только читают.
func loadDir(dir string, sink ProgressSink) (*source.FileSet, []dirFile, error) {
	paths, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	files := make([]dirFile, len(paths))
	for i, path := range paths {
		emit(sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			// пустой виртуальный файл, чтобы у диагностики I/O был путь
			id = fileSet.AddVirtual(path, nil)
		}
		files[i] = dirFile{path: path, id: id, loadErr: loadErr}
	}
	return fileSet, files, nil
}

func loadErrorBag(f dirFile, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	bag.PushError(diag.IOLoadFileError, source.ZeroAt(f.id, source.Position{}), diag.Str(f.loadErr.Error()))
	return bag
}

// forEachFile runs fn over files with at most opts.Jobs goroutines. Each call
// owns results[i], so no locking is needed.
func forEachFile(ctx context.Context, files []dirFile, opts Options, fn func(ctx context.Context, i int, f dirFile) error) error {
	if len(files) == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))
	for i, f := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(gctx, i, f)
		})
	}
	return g.Wait()
}

// ParseDir парсит все *.oath файлы в директории параллельно.
// Interner общий для всех файлов.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, *source.Interner, []ParseDirResult, error) {
	fileSet, files, err := loadDir(dir, opts.Progress)
	if err != nil {
		return nil, nil, nil, err
	}
	interner := source.NewInterner()
	results := make([]ParseDirResult, len(files))

	err = forEachFile(ctx, files, opts, func(_ context.Context, i int, f dirFile) error {
		if f.loadErr != nil {
			results[i] = ParseDirResult{Path: f.path, FileID: f.id, Bag: loadErrorBag(f, opts.MaxDiagnostics)}
			emit(opts.Progress, Event{File: f.path, Stage: StageLoad, Status: StatusError, Err: f.loadErr})
			return nil
		}
		emit(opts.Progress, Event{File: f.path, Stage: StageParse, Status: StatusWorking})
		res, err := parseFile(fileSet, fileSet.Get(f.id), interner, opts, newTimer(opts.Timings))
		if err != nil {
			return err
		}
		results[i] = ParseDirResult{
			Path:       f.path,
			FileID:     f.id,
			Tree:       res.Tree,
			Bag:        res.Bag,
			Highlights: res.Highlights,
			Timing:     res.Timing,
		}
		emit(opts.Progress, Event{File: f.path, Stage: StageParse, Status: StatusDone})
		return nil
	})
	return fileSet, interner, results, err
}

// DiagnoseDir diagnoses every *.oath file under dir in parallel.
func DiagnoseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, *source.Interner, []DiagnoseDirResult, error) {
	fileSet, files, err := loadDir(dir, opts.Progress)
	if err != nil {
		return nil, nil, nil, err
	}
	interner := source.NewInterner()
	results := make([]DiagnoseDirResult, len(files))

	err = forEachFile(ctx, files, opts, func(ctx context.Context, i int, f dirFile) error {
		if f.loadErr != nil {
			results[i] = DiagnoseDirResult{Path: f.path, FileID: f.id, Bag: loadErrorBag(f, opts.MaxDiagnostics)}
			emit(opts.Progress, Event{File: f.path, Stage: StageLoad, Status: StatusError, Err: f.loadErr})
			return nil
		}
		res, err := diagnoseFile(ctx, fileSet, fileSet.Get(f.id), interner, opts)
		if err != nil {
			return err
		}
		results[i] = DiagnoseDirResult{
			Path:     f.path,
			FileID:   f.id,
			Bag:      res.Bag,
			Cached:   res.Cached,
			Timing:   res.Timing,
			CacheErr: res.CacheErr,
		}
		return nil
	})
	return fileSet, interner, results, err
}

// MergeBags collects every file's diagnostics into one sorted bag.
func MergeBags(bags ...*diag.Bag) *diag.Bag {
	out := diag.NewBag(0)
	for _, b := range bags {
		if b != nil {
			out.Merge(b)
		}
	}
	out.Sort()
	return out
}
