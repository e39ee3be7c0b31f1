package driver

import (
	"fmt"
	"runtime"

	"fortio.org/safecast"
)

// SourceExt is the file extension picked up by directory runs.
const SourceExt = ".oath"

// Options configures a driver run.
type Options struct {
	// MaxDiagnostics caps both the bag and the parser's error count; 0 means unlimited.
	MaxDiagnostics int
	// Jobs ограничивает число параллельных файлов; <= 0 значит GOMAXPROCS
	Jobs int
	// Cache, если не nil, хранит результаты diagnose по хешу содержимого.
	Cache *DiskCache
	// Timings collects per-phase durations into the result.
	Timings  bool
	Progress ProgressSink
}

func (o Options) jobs(files int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, files))
}

func (o Options) maxErrors() (uint, error) {
	if o.MaxDiagnostics <= 0 {
		return 0, nil
	}
	n, err := safecast.Conv[uint](o.MaxDiagnostics)
	if err != nil {
		return 0, fmt.Errorf("max diagnostics overflow: %w", err)
	}
	return n, nil
}
