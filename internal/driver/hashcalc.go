package driver

import (
	"fortio.org/safecast"

	"oath/internal/project"
	"oath/internal/source"
)

// cacheKey: H(content || schema || maxDiagnostics). Один и тот же файл с другим
// лимитом даёт другой набор диагностик, поэтому лимит входит в ключ.
func cacheKey(file *source.File, maxDiagnostics int) project.Digest {
	limit, err := safecast.Conv[uint64](max(maxDiagnostics, 0))
	if err != nil {
		limit = 0
	}
	return project.Combine(project.Digest(file.Hash),
		project.DigestUint(uint64(diskCacheSchemaVersion)),
		project.DigestUint(limit))
}
