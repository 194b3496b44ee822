package pipeline

import (
	"sync"

	"plantdash/internal/dataset"
	"plantdash/internal/logger"
)

// Loader memoizes the cleaned table across repeated loads. The cache key
// is the input file's path, size, and modification time; any change
// invalidates the cached result. Memoization is an optimization only:
// a cache miss just reruns the pipeline.
type Loader struct {
	pipeline *Pipeline
	log      *logger.Logger

	mu     sync.Mutex
	key    dataset.Fingerprint
	cached *Result
}

// NewLoader creates a memoizing loader around a pipeline.
func NewLoader(p *Pipeline, log *logger.Logger) *Loader {
	return &Loader{pipeline: p, log: log}
}

// Load returns the cleaned table for the file at path, reusing the cached
// result while the file is unchanged. A missing file surfaces as
// *dataset.MissingInputError with nothing cached.
func (l *Loader) Load(path string) (*Result, error) {
	fp, err := dataset.Stat(path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cached != nil && l.key == fp {
		if l.log != nil {
			l.log.Debug("using cached cleaned table", "path", path)
		}

		return l.cached, nil
	}

	raw, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}

	result := l.pipeline.Run(raw)
	l.key = fp
	l.cached = result

	return result, nil
}
