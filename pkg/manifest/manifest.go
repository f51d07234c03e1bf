package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// FileName is the manifest file name probed by [Resolver].
const FileName = "manifest.json"

var (
	// ErrRead indicates the manifest file could not be opened or read.
	ErrRead = errors.New("read manifest")

	// ErrParse indicates the manifest contents are not valid JSON.
	ErrParse = errors.New("parse manifest")

	// ErrNotFound indicates no manifest exists at any candidate path.
	ErrNotFound = errors.New("manifest.json not found")
)

// Manifest is the subset of the manifest document that tagcheck inspects.
// The document is externally owned and never written back.
type Manifest struct {
	Version string `json:"version"`
}

// Load reads and decodes the manifest at path. The file handle is released
// whether or not decoding succeeds. A `version` value that is not a JSON
// string is a parse error.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	m := &Manifest{}

	err = json.Unmarshal(data, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return m, nil
}
