package manifest

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Candidate produces one candidate manifest path.
type Candidate func() string

// Resolver locates a manifest by probing an ordered list of candidate paths.
// The first candidate that exists on disk wins, which makes resolution
// deterministic: a manifest in the working directory always shadows one next
// to the installed binary.
type Resolver struct {
	candidates []Candidate
}

// NewResolver returns a [Resolver] that probes workDir/manifest.json first,
// then manifest.json in the parent of execDir. Both directories are passed
// explicitly so resolution never depends on ambient process state.
func NewResolver(workDir, execDir string) *Resolver {
	return &Resolver{
		candidates: []Candidate{
			func() string { return filepath.Join(workDir, FileName) },
			func() string { return filepath.Join(filepath.Dir(execDir), FileName) },
		},
	}
}

// Resolve returns the first candidate path that exists on disk, or
// [ErrNotFound] if none do.
func (r *Resolver) Resolve() (string, error) {
	for _, candidate := range r.candidates {
		path := candidate()

		_, err := os.Stat(path)
		if err != nil {
			slog.Debug("no manifest at candidate path", "path", path, "err", err)

			continue
		}

		return path, nil
	}

	return "", ErrNotFound
}
