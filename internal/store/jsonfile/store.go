// Package jsonfile persists the task and category collections as two
// flat JSON files. Every save rewrites the full collection atomically
// by writing to a temp file and renaming it into place.
package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// CorruptError reports that a backing file's content could not be
// decoded into the expected schema. The affected collection cannot be
// loaded; callers should treat this as fatal rather than discard data.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt store file %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// WriteError reports that a durable write failed. The mutation that
// triggered it must be considered not committed.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write store file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// writeAtomic writes data to path via a temp file and rename, so a
// failure mid-write leaves the prior content unchanged.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmp, path); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
