package driver

import (
	"context"
	"fmt"
	"time"

	"oath/internal/ast"
	"oath/internal/diag"
	"oath/internal/observ"
	"oath/internal/source"
)

// DiagnoseResult holds the ordered diagnostics of one file.
type DiagnoseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *source.Interner
	Bag      *diag.Bag
	// Tree is nil when the result came from the disk cache.
	Tree   *ast.SyntaxTree
	Cached bool
	Timing *observ.Report
	// CacheErr is a failed cache read or write; the diagnostics are still valid.
	CacheErr error
}

// Diagnose loads path, parses it and returns sorted, deduplicated diagnostics.
func Diagnose(ctx context.Context, path string, opts Options) (*DiagnoseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return diagnoseFile(ctx, fs, fs.Get(fileID), source.NewInterner(), opts)
}

// DiagnoseSource diagnoses in-memory content registered under name.
func DiagnoseSource(ctx context.Context, name string, content []byte, opts Options) (*DiagnoseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return diagnoseFile(ctx, fs, fs.Get(fileID), source.NewInterner(), opts)
}

func diagnoseFile(ctx context.Context, fs *source.FileSet, file *source.File, in *source.Interner, opts Options) (*DiagnoseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := time.Now()
	key := cacheKey(file, opts.MaxDiagnostics)
	result := &DiagnoseResult{FileSet: fs, File: file, Interner: in}

	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			result.CacheErr = err
		case hit:
			bag := diag.NewBag(opts.MaxDiagnostics)
			for _, d := range payloadToDiagnostics(file.ID, &payload) {
				bag.Add(d)
			}
			result.Bag, result.Cached = bag, true
			emit(opts.Progress, Event{File: file.Path, Stage: StageDiagnose, Status: StatusCached, Elapsed: time.Since(started)})
			return result, nil
		}
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusWorking})
	timer := newTimer(opts.Timings)
	parsed, err := parseFile(fs, file, in, opts, timer)
	if err != nil {
		emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusError, Err: err})
		return nil, err
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageDiagnose, Status: StatusWorking})
	phase := timer.Begin("diagnose")
	parsed.Bag.Sort()
	parsed.Bag.Dedup()
	timer.End(phase, fmt.Sprintf("%d diagnostics", parsed.Bag.Len()))

	result.Bag = parsed.Bag
	result.Tree = parsed.Tree
	result.Timing = timingReport(timer)

	if opts.Cache != nil && result.CacheErr == nil {
		result.CacheErr = opts.Cache.Put(key, diagnosticsToPayload(file, parsed.Bag.Items(), in))
	}

	status := StatusDone
	if parsed.Bag.HasErrors() {
		status = StatusError
	}
	emit(opts.Progress, Event{File: file.Path, Stage: StageDiagnose, Status: status, Elapsed: time.Since(started)})
	return result, nil
}
